// internal/ui/canvas_view.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"go-lecture-poster/internal/config"
)

// CanvasView places the fixed-size logical canvas inside the window,
// letterboxed between the toolbar, style panel and status bar, and maps
// between device and logical coordinates. It doubles as the drag surface.
type CanvasView struct {
	rect image.Rectangle
}

// Layout recomputes the device rectangle the canvas occupies for the current
// window size, preserving the logical aspect ratio.
func (v *CanvasView) Layout(winW, winH int) {
	x0 := config.CanvasMargin
	y0 := config.ToolbarHeight + config.CanvasMargin
	x1 := winW - config.PanelWidth - config.CanvasMargin
	y1 := winH - config.StatusHeight - config.CanvasMargin

	availW := x1 - x0
	availH := y1 - y0
	if availW < 1 || availH < 1 {
		v.rect = image.Rectangle{}
		return
	}

	scale := float64(availW) / config.CanvasWidth
	if s := float64(availH) / config.CanvasHeight; s < scale {
		scale = s
	}
	w := int(config.CanvasWidth * scale)
	h := int(config.CanvasHeight * scale)
	x := x0 + (availW-w)/2
	y := y0 + (availH-h)/2
	v.rect = image.Rect(x, y, x+w, y+h)
}

// Rect is the device-space rectangle currently covered by the canvas.
func (v *CanvasView) Rect() image.Rectangle {
	return v.rect
}

// RenderedSize implements drag.Surface: the canvas size in device pixels.
func (v *CanvasView) RenderedSize() (float64, float64) {
	return float64(v.rect.Dx()), float64(v.rect.Dy())
}

// Scale is the rendered-width / logical-width ratio.
func (v *CanvasView) Scale() float64 {
	return float64(v.rect.Dx()) / config.CanvasWidth
}

// Contains reports whether a device point falls on the canvas.
func (v *CanvasView) Contains(x, y int) bool {
	return image.Pt(x, y).In(v.rect)
}

// ToLogical converts a device point to logical canvas coordinates.
func (v *CanvasView) ToLogical(x, y int) (float64, float64) {
	scale := v.Scale()
	if !(scale > 0) {
		return 0, 0
	}
	return float64(x-v.rect.Min.X) / scale, float64(y-v.rect.Min.Y) / scale
}

// Draw blits the rendered logical canvas into its window rectangle.
func (v *CanvasView) Draw(screen, canvas *ebiten.Image) {
	if v.rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.Scale(), v.Scale())
	op.GeoM.Translate(float64(v.rect.Min.X), float64(v.rect.Min.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(canvas, op)
}
