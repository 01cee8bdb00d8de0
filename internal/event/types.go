// internal/event/types.go
package event

const (
	// Results / notifications.
	ElementSelected   EventType = "ElementSelected"   // Data: poster element id (string)
	BackgroundChanged EventType = "BackgroundChanged" // Data: source description (string)
	EnhanceFinished   EventType = "EnhanceFinished"   // Data: error, or nil on success
	ExportFinished    EventType = "ExportFinished"    // Data: saved path (string) or error

	// UI requests, handled by the editor.
	ExportRequested           EventType = "ExportRequested"
	EnhanceRequested          EventType = "EnhanceRequested"          // Data: poster element id (string)
	FamilyCycleRequested      EventType = "FamilyCycleRequested"      // Data: poster element id (string)
	FontSizeChangeRequested   EventType = "FontSizeChangeRequested"   // Data: delta (float64)
	ColorChangeRequested      EventType = "ColorChangeRequested"      // Data: color.RGBA
	BackgroundPasteRequested  EventType = "BackgroundPasteRequested"  // clipboard URL -> background
	LinkPasteRequested        EventType = "LinkPasteRequested"        // clipboard URL -> QR badge
)
