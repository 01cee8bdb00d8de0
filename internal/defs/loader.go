// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// FontLibrary is a map to hold all font-family definitions, keyed by their ID.
var FontLibrary map[string]FontFamilyDef

// FontOrder preserves the definition order for deterministic cycling in the UI.
var FontOrder []string

// PaletteLibrary is a map to hold all palette definitions, keyed by their ID.
var PaletteLibrary map[string]PaletteDef

// PaletteOrder preserves the definition order.
var PaletteOrder []string

// LoadFontDefinitions reads the font configuration file and populates the
// FontLibrary. When the file is absent the compiled-in defaults are used.
func LoadFontDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			useDefaultFonts()
			return nil
		}
		return fmt.Errorf("failed to read font definitions file: %w", err)
	}

	var fontDefs []FontFamilyDef
	if err := json.Unmarshal(file, &fontDefs); err != nil {
		return fmt.Errorf("failed to unmarshal font definitions: %w", err)
	}
	if len(fontDefs) == 0 {
		useDefaultFonts()
		return nil
	}

	FontLibrary = make(map[string]FontFamilyDef)
	FontOrder = FontOrder[:0]
	for _, def := range fontDefs {
		FontLibrary[def.ID] = def
		FontOrder = append(FontOrder, def.ID)
	}

	log.Printf("Loaded %d font definitions", len(FontLibrary))
	return nil
}

// LoadPaletteDefinitions reads the palette configuration file and populates
// the PaletteLibrary. When the file is absent the compiled-in defaults are used.
func LoadPaletteDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			useDefaultPalettes()
			return nil
		}
		return fmt.Errorf("failed to read palette definitions file: %w", err)
	}

	var paletteDefs []PaletteDef
	if err := json.Unmarshal(file, &paletteDefs); err != nil {
		return fmt.Errorf("failed to unmarshal palette definitions: %w", err)
	}
	if len(paletteDefs) == 0 {
		useDefaultPalettes()
		return nil
	}

	PaletteLibrary = make(map[string]PaletteDef)
	PaletteOrder = PaletteOrder[:0]
	for _, def := range paletteDefs {
		PaletteLibrary[def.ID] = def
		PaletteOrder = append(PaletteOrder, def.ID)
	}

	log.Printf("Loaded %d palette definitions", len(PaletteLibrary))
	return nil
}

// FontFamily resolves a family ID, falling back to the default family for
// unrecognized values.
func FontFamily(id string) FontFamilyDef {
	if def, ok := FontLibrary[id]; ok {
		return def
	}
	return FontLibrary[DefaultFontFamily]
}

// NextFontFamily returns the family after id in definition order, wrapping
// around. Unknown ids restart at the first family.
func NextFontFamily(id string) string {
	for i, fid := range FontOrder {
		if fid == id {
			return FontOrder[(i+1)%len(FontOrder)]
		}
	}
	if len(FontOrder) == 0 {
		return DefaultFontFamily
	}
	return FontOrder[0]
}
