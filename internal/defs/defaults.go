// internal/defs/defaults.go
package defs

// DefaultFontFamily is used for elements whose family is unset or unknown.
const DefaultFontFamily = "cairo"

func useDefaultFonts() {
	fontDefs := []FontFamilyDef{
		{ID: "cairo", Name: "القاهرة", Path: "assets/fonts/Cairo-Regular.ttf"},
		{ID: "amiri", Name: "أميري", Path: "assets/fonts/Amiri-Regular.ttf"},
		{ID: "tajawal", Name: "تجوال", Path: "assets/fonts/Tajawal-Regular.ttf"},
		{ID: "reem-kufi", Name: "ريم كوفي", Path: "assets/fonts/ReemKufi-Regular.ttf"},
	}
	FontLibrary = make(map[string]FontFamilyDef)
	FontOrder = FontOrder[:0]
	for _, def := range fontDefs {
		FontLibrary[def.ID] = def
		FontOrder = append(FontOrder, def.ID)
	}
}

func useDefaultPalettes() {
	paletteDefs := []PaletteDef{
		{ID: "classic", Name: "كلاسيكي", Colors: []string{
			"#ffffff", "#f5e9c9", "#ffc400", "#e0b354",
		}},
		{ID: "night", Name: "ليلي", Colors: []string{
			"#e8ecf5", "#9fd3ff", "#6bd6a8", "#d98fff",
		}},
	}
	PaletteLibrary = make(map[string]PaletteDef)
	PaletteOrder = PaletteOrder[:0]
	for _, def := range paletteDefs {
		PaletteLibrary[def.ID] = def
		PaletteOrder = append(PaletteOrder, def.ID)
	}
}
