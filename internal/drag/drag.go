// internal/drag/drag.go

// Package drag translates device-space pointer movement into logical-canvas
// position updates for one poster element at a time. The canvas may be
// rendered at any uniform scale; positions stay in the fixed logical
// coordinate space.
package drag

// Host is the capability surface the controller drives. The controller never
// owns or mutates the poster itself; the host applies every request.
type Host interface {
	// SelectElement marks id as the currently selected element.
	SelectElement(id string)
	// ElementPosition reports the stored logical position of id, ok=false
	// when the id is unknown.
	ElementPosition(id string) (x, y float64, ok bool)
	// UpdateElementPosition requests that id move to a new logical position.
	UpdateElementPosition(id string, x, y float64)
}

// Surface reports the rendered size of the logical canvas in device pixels.
// A nil surface (not mounted yet) makes every move a no-op.
type Surface interface {
	RenderedSize() (w, h float64)
}

// Controller tracks a single active drag gesture. Only one drag can be active
// at a time; a new Begin simply replaces the previous gesture.
type Controller struct {
	host         Host
	surface      Surface
	logicalWidth float64

	active    bool
	elementID string
	anchorX   float64
	anchorY   float64
}

// NewController builds a controller mapping against a logical canvas of the
// given width. Height scaling is assumed proportional; the scale factor is
// derived from width only.
func NewController(host Host, surface Surface, logicalWidth float64) *Controller {
	return &Controller{host: host, surface: surface, logicalWidth: logicalWidth}
}

// Begin starts a drag of the element under the pointer. The element becomes
// the selected element immediately, and the device position is recorded as
// the anchor for the first move delta.
func (c *Controller) Begin(id string, deviceX, deviceY float64) {
	c.active = true
	c.elementID = id
	c.anchorX = deviceX
	c.anchorY = deviceY
	c.host.SelectElement(id)
}

// Move applies one pointer movement. The device delta since the anchor is
// divided by the current scale factor and added to the element's stored
// logical position, then the anchor resets to the current pointer so deltas
// stay incremental. Skipped silently when no drag is active, the surface is
// unavailable, the rendered width is not positive, or the element is unknown.
func (c *Controller) Move(deviceX, deviceY float64) {
	if !c.active || c.surface == nil {
		return
	}
	renderedWidth, _ := c.surface.RenderedSize()
	scale := renderedWidth / c.logicalWidth
	if !(scale > 0) {
		// A zero or collapsed surface would map to a non-finite
		// coordinate; skip the update instead.
		return
	}
	x, y, ok := c.host.ElementPosition(c.elementID)
	if !ok {
		return
	}
	dx := (deviceX - c.anchorX) / scale
	dy := (deviceY - c.anchorY) / scale
	c.host.UpdateElementPosition(c.elementID, x+dx, y+dy)
	c.anchorX = deviceX
	c.anchorY = deviceY
}

// End terminates the active drag, if any. Safe to call from a global
// pointer-up fallback regardless of where the release happened.
func (c *Controller) End() {
	c.active = false
	c.elementID = ""
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.active
}

// DraggedElement returns the id of the element being dragged.
func (c *Controller) DraggedElement() (string, bool) {
	if !c.active {
		return "", false
	}
	return c.elementID, true
}
