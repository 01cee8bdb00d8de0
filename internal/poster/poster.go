// internal/poster/poster.go
package poster

import (
	"image"
	"image/color"

	"go-lecture-poster/internal/config"
	"go-lecture-poster/internal/defs"
	"go-lecture-poster/internal/utils"
)

// ElementID names one of the poster's fixed text elements.
type ElementID string

const (
	ElementTitle    ElementID = "title"
	ElementLecturer ElementID = "lecturer"
	ElementSchedule ElementID = "schedule"
	ElementVenue    ElementID = "venue"
)

// ElementOrder is the draw order, back to front. Hit-testing walks it in
// reverse so the frontmost element wins.
var ElementOrder = []ElementID{ElementVenue, ElementSchedule, ElementLecturer, ElementTitle}

// TextElement is one positioned, styled text item. X and Y are the top-left
// anchor in logical canvas coordinates (1280x720), never device pixels.
type TextElement struct {
	ID       ElementID
	Label    string
	Text     string
	X, Y     float64
	FontSize float64
	Family   string
	Color    color.RGBA
	Width    float64 // wrap constraint in logical units; 0 = unconstrained
}

// Poster is the in-memory composition: an optional background image, an
// optional lecture link (rendered as a QR badge), and the fixed element set.
// It is pure data; all mutation goes through its methods and nothing else.
type Poster struct {
	background image.Image
	linkURL    string
	elements   map[ElementID]*TextElement
}

// NewLecturePoster builds the initial composition: four elements laid out for
// an Arabic lecture announcement. Elements are never added or removed after
// this point; only their fields change.
func NewLecturePoster() *Poster {
	p := &Poster{elements: make(map[ElementID]*TextElement)}
	initial := []TextElement{
		{
			ID:       ElementTitle,
			Label:    "عنوان المحاضرة",
			Text:     "أساسيات الذكاء الاصطناعي",
			X:        180, Y: 90,
			FontSize: 72,
			Family:   defs.DefaultFontFamily,
			Color:    color.RGBA{255, 255, 255, 255},
			Width:    920,
		},
		{
			ID:       ElementLecturer,
			Label:    "المحاضر",
			Text:     "د. سارة الأحمد",
			X:        340, Y: 300,
			FontSize: config.DefaultFontSize,
			Family:   defs.DefaultFontFamily,
			Color:    color.RGBA{245, 233, 201, 255},
		},
		{
			ID:       ElementSchedule,
			Label:    "التاريخ والوقت",
			Text:     "الخميس ١٥ رمضان - الساعة ٨ مساءً",
			X:        300, Y: 440,
			FontSize: 40,
			Family:   defs.DefaultFontFamily,
			Color:    color.RGBA{255, 196, 0, 255},
		},
		{
			ID:       ElementVenue,
			Label:    "المكان",
			Text:     "قاعة المؤتمرات الكبرى",
			X:        380, Y: 560,
			FontSize: 36,
			Family:   defs.DefaultFontFamily,
			Color:    color.RGBA{232, 236, 245, 255},
		},
	}
	for i := range initial {
		el := initial[i]
		p.elements[el.ID] = &el
	}
	return p
}

// Element returns a copy of the element, so callers cannot mutate the poster
// behind its back.
func (p *Poster) Element(id ElementID) (TextElement, bool) {
	el, ok := p.elements[id]
	if !ok {
		return TextElement{}, false
	}
	return *el, true
}

// Elements returns copies of all elements in draw order.
func (p *Poster) Elements() []TextElement {
	out := make([]TextElement, 0, len(p.elements))
	for _, id := range ElementOrder {
		if el, ok := p.elements[id]; ok {
			out = append(out, *el)
		}
	}
	return out
}

// Position reports an element's logical coordinates.
func (p *Poster) Position(id ElementID) (x, y float64, ok bool) {
	el, found := p.elements[id]
	if !found {
		return 0, 0, false
	}
	return el.X, el.Y, true
}

// SetPosition moves an element, in logical canvas coordinates. Unknown ids
// are ignored.
func (p *Poster) SetPosition(id ElementID, x, y float64) {
	if el, ok := p.elements[id]; ok {
		el.X, el.Y = x, y
	}
}

// SetText replaces an element's content.
func (p *Poster) SetText(id ElementID, text string) {
	if el, ok := p.elements[id]; ok {
		el.Text = text
	}
}

// SetFontSize sets an element's size, clamped to the configured range.
func (p *Poster) SetFontSize(id ElementID, size float64) {
	if el, ok := p.elements[id]; ok {
		el.FontSize = utils.Clamp(size, config.MinFontSize, config.MaxFontSize)
	}
}

// SetFamily assigns a font family by id. Unknown families are stored as-is;
// resolution falls back to the default at render time.
func (p *Poster) SetFamily(id ElementID, family string) {
	if el, ok := p.elements[id]; ok {
		el.Family = family
	}
}

// SetColor assigns an element's text color.
func (p *Poster) SetColor(id ElementID, c color.RGBA) {
	if el, ok := p.elements[id]; ok {
		el.Color = c
	}
}

// SetWidth sets the wrap constraint; 0 removes it.
func (p *Poster) SetWidth(id ElementID, w float64) {
	if el, ok := p.elements[id]; ok {
		if w < 0 {
			w = 0
		}
		el.Width = w
	}
}

// Background returns the current background image, nil when unset.
func (p *Poster) Background() image.Image {
	return p.background
}

// SetBackground replaces the background image. Nil clears it.
func (p *Poster) SetBackground(img image.Image) {
	p.background = img
}

// LinkURL returns the lecture link, empty when unset.
func (p *Poster) LinkURL() string {
	return p.linkURL
}

// SetLinkURL sets the lecture link rendered as a QR badge.
func (p *Poster) SetLinkURL(url string) {
	p.linkURL = url
}
