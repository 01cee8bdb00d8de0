// internal/defs/types.go
package defs

// FontFamilyDef describes one entry of the closed font-family set. Path points
// at a TTF relative to the working directory; a family whose file is missing
// still exists in the set and renders with the fallback face.
type FontFamilyDef struct {
	ID   string `json:"id"`
	Name string `json:"name"` // display name shown in the style panel
	Path string `json:"path"`
}

// PaletteDef is a named set of text colors offered as swatches.
type PaletteDef struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Colors []string `json:"colors"` // #rrggbb
}
