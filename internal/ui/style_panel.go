// internal/ui/style_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lecture-poster/internal/config"
	"go-lecture-poster/internal/defs"
	"go-lecture-poster/internal/event"
	"go-lecture-poster/internal/poster"
)

const (
	panelPadding    = 14
	panelRowHeight  = 40
	panelButtonH    = 30
	sizeButtonW     = 36
	swatchSize      = 26
	swatchGap       = 8
)

// UIFontSize is the face size used for all editor chrome text.
const UIFontSize = 15.0

// PanelView is the per-frame snapshot the style panel renders from; the panel
// itself never reads the poster.
type PanelView struct {
	Element           poster.TextElement
	HasElement        bool
	FamilyName        string
	EnhanceBusy       bool
	EnhanceConfigured bool
}

// StylePanel is the right-hand column styling the selected element. Like the
// toolbar, it only dispatches request events.
type StylePanel struct {
	dispatcher *event.Dispatcher
	rect       image.Rectangle

	familyBtn  *Button
	sizeMinus  *Button
	sizePlus   *Button
	enhanceBtn *Button

	swatchRects  []image.Rectangle
	swatchColors []color.RGBA // parallel to swatchRects
}

func NewStylePanel(dispatcher *event.Dispatcher) *StylePanel {
	return &StylePanel{
		dispatcher: dispatcher,
		familyBtn:  NewButton(image.Rectangle{}, ""),
		sizeMinus:  NewButton(image.Rectangle{}, "-"),
		sizePlus:   NewButton(image.Rectangle{}, "+"),
		enhanceBtn: NewButton(image.Rectangle{}, "تحسين النص"),
	}
}

// Layout positions the panel column and its controls for the window size.
func (p *StylePanel) Layout(winW, winH int) {
	p.rect = image.Rect(winW-config.PanelWidth, config.ToolbarHeight, winW, winH-config.StatusHeight)

	x0 := p.rect.Min.X + panelPadding
	x1 := p.rect.Max.X - panelPadding
	y := p.rect.Min.Y + panelPadding + panelRowHeight // header row first

	p.familyBtn.Rect = image.Rect(x0, y, x1, y+panelButtonH)
	y += panelRowHeight

	p.sizeMinus.Rect = image.Rect(x0, y, x0+sizeButtonW, y+panelButtonH)
	p.sizePlus.Rect = image.Rect(x1-sizeButtonW, y, x1, y+panelButtonH)

	p.enhanceBtn.Rect = image.Rect(x0, p.rect.Max.Y-panelPadding-panelButtonH, x1, p.rect.Max.Y-panelPadding)
}

// Contains reports whether a device point falls on the panel column.
func (p *StylePanel) Contains(x, y int) bool {
	return image.Pt(x, y).In(p.rect)
}

// HandleClick routes a press inside the panel. Returns true when consumed.
func (p *StylePanel) HandleClick(x, y int, view PanelView) bool {
	if !p.Contains(x, y) {
		return false
	}
	if !view.HasElement {
		return true
	}
	id := string(view.Element.ID)

	p.enhanceBtn.Disabled = view.EnhanceBusy || !view.EnhanceConfigured
	switch {
	case p.familyBtn.TryClick(x, y):
		p.dispatcher.Dispatch(event.Event{Type: event.FamilyCycleRequested, Data: id})
	case p.sizeMinus.TryClick(x, y):
		p.dispatcher.Dispatch(event.Event{Type: event.FontSizeChangeRequested, Data: -config.FontSizeStep})
	case p.sizePlus.TryClick(x, y):
		p.dispatcher.Dispatch(event.Event{Type: event.FontSizeChangeRequested, Data: config.FontSizeStep})
	case p.enhanceBtn.TryClick(x, y):
		p.dispatcher.Dispatch(event.Event{Type: event.EnhanceRequested, Data: id})
	default:
		for i, rect := range p.swatchRects {
			if image.Pt(x, y).In(rect) {
				p.dispatcher.Dispatch(event.Event{Type: event.ColorChangeRequested, Data: p.swatchColors[i]})
				break
			}
		}
	}
	return true
}

func (p *StylePanel) Draw(screen *ebiten.Image, face text.Face, view PanelView) {
	vector.DrawFilledRect(screen,
		float32(p.rect.Min.X), float32(p.rect.Min.Y),
		float32(p.rect.Dx()), float32(p.rect.Dy()),
		config.PanelColor, false)

	header := "لا يوجد عنصر محدد"
	if view.HasElement {
		header = view.Element.Label
	}
	p.drawLabel(screen, face, header, p.rect.Min.Y+panelPadding+panelButtonH/2)

	if !view.HasElement {
		return
	}

	p.familyBtn.Label = view.FamilyName
	p.familyBtn.Draw(screen, face)

	p.sizeMinus.Draw(screen, face)
	p.sizePlus.Draw(screen, face)
	sizeY := p.sizeMinus.Rect.Min.Y + panelButtonH/2
	p.drawCentered(screen, face, fmt.Sprintf("%.0f", view.Element.FontSize), sizeY)

	p.drawSwatches(screen)

	p.enhanceBtn.Disabled = view.EnhanceBusy || !view.EnhanceConfigured
	p.enhanceBtn.Draw(screen, face)
}

// drawSwatches lays out and draws one row of color squares per palette,
// remembering the rectangles for hit-testing.
func (p *StylePanel) drawSwatches(screen *ebiten.Image) {
	p.swatchRects = p.swatchRects[:0]
	p.swatchColors = p.swatchColors[:0]

	y := p.sizeMinus.Rect.Max.Y + panelPadding
	for _, pid := range defs.PaletteOrder {
		def := defs.PaletteLibrary[pid]
		x := p.rect.Max.X - panelPadding - swatchSize
		for _, c := range defs.PaletteColors(def) {
			rect := image.Rect(x, y, x+swatchSize, y+swatchSize)
			p.swatchRects = append(p.swatchRects, rect)
			p.swatchColors = append(p.swatchColors, c)

			vector.DrawFilledRect(screen,
				float32(rect.Min.X), float32(rect.Min.Y),
				swatchSize, swatchSize, c, false)
			vector.StrokeRect(screen,
				float32(rect.Min.X), float32(rect.Min.Y),
				swatchSize, swatchSize, 1, config.SwatchStroke, false)
			x -= swatchSize + swatchGap
		}
		y += swatchSize + swatchGap
	}
}

func (p *StylePanel) drawLabel(screen *ebiten.Image, face text.Face, s string, centerY int) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(p.rect.Max.X-panelPadding), float64(centerY))
	op.ColorScale.ScaleWithColor(config.PanelHeaderColor)
	text.Draw(screen, s, face, op)
}

func (p *StylePanel) drawCentered(screen *ebiten.Image, face text.Face, s string, centerY int) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(p.rect.Min.X+p.rect.Dx()/2), float64(centerY))
	op.ColorScale.ScaleWithColor(config.ButtonTextColor)
	text.Draw(screen, s, face, op)
}
