// internal/render/renderer.go
package render

import (
	"image"
	"log"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	qrcode "github.com/skip2/go-qrcode"

	"go-lecture-poster/internal/config"
	"go-lecture-poster/internal/fonts"
	"go-lecture-poster/internal/poster"
)

// Renderer draws a poster onto a 1280x720 logical canvas. It caches the
// fitted background, the gradient backdrop and the QR badge between frames.
type Renderer struct {
	fonts *fonts.Registry

	bgSource image.Image
	bgScaled *ebiten.Image
	backdrop *ebiten.Image
	qrURL    string
	qrImage  *ebiten.Image
}

func NewRenderer(reg *fonts.Registry) *Renderer {
	return &Renderer{fonts: reg}
}

// Draw renders the full composition. selected gets an outline; pass an empty
// id for export renders.
func (r *Renderer) Draw(dst *ebiten.Image, p *poster.Poster, selected poster.ElementID) {
	dst.Fill(config.CanvasFallback)

	if bg := p.Background(); bg != nil {
		if bg != r.bgSource {
			fitted := fitBackground(bg)
			r.bgScaled = ebiten.NewImageFromImage(fitted)
			r.bgSource = bg
		}
		dst.DrawImage(r.bgScaled, nil)
	}

	if r.backdrop == nil {
		r.backdrop = ebiten.NewImageFromImage(backdropImage())
	}
	dst.DrawImage(r.backdrop, nil)

	for _, el := range p.Elements() {
		r.drawElement(dst, el)
	}

	if selected != "" {
		if el, ok := p.Element(selected); ok {
			x, y, w, h := r.ElementBounds(el)
			pad := config.SelectionPadding
			vector.StrokeRect(dst,
				float32(x-pad), float32(y-pad),
				float32(w+2*pad), float32(h+2*pad),
				config.SelectionStrokeWidth, config.SelectionColor, true)
		}
	}

	r.drawQRBadge(dst, p.LinkURL())
}

func (r *Renderer) drawElement(dst *ebiten.Image, el poster.TextElement) {
	face := r.fonts.Face(el.Family, el.FontSize)
	content := r.layoutText(el, face)
	lineSpacing := el.FontSize * config.LineSpacingFactor
	w, _ := text.Measure(content, face, lineSpacing)

	op := &text.DrawOptions{}
	op.LineSpacing = lineSpacing
	// AlignStart with an RTL face anchors each line's right edge at the
	// origin, so the block occupies [X, X+w] with lines flush right.
	op.PrimaryAlign = text.AlignStart
	op.GeoM.Translate(el.X+w, el.Y)
	op.ColorScale.ScaleWithColor(el.Color)
	text.Draw(dst, content, face, op)
}

// ElementBounds reports the rendered box of an element in logical
// coordinates, honoring its wrap constraint.
func (r *Renderer) ElementBounds(el poster.TextElement) (x, y, w, h float64) {
	face := r.fonts.Face(el.Family, el.FontSize)
	content := r.layoutText(el, face)
	w, h = text.Measure(content, face, el.FontSize*config.LineSpacingFactor)
	return el.X, el.Y, w, h
}

// HitTest finds the frontmost element whose box (with selection padding)
// contains the logical point.
func (r *Renderer) HitTest(p *poster.Poster, lx, ly float64) (poster.ElementID, bool) {
	els := p.Elements()
	for i := len(els) - 1; i >= 0; i-- {
		x, y, w, h := r.ElementBounds(els[i])
		pad := config.SelectionPadding
		if lx >= x-pad && lx <= x+w+pad && ly >= y-pad && ly <= y+h+pad {
			return els[i].ID, true
		}
	}
	return "", false
}

func (r *Renderer) layoutText(el poster.TextElement, face text.Face) string {
	lines := wrapToWidth(el.Text, el.Width, func(s string) float64 {
		return text.Advance(s, face)
	})
	return strings.Join(lines, "\n")
}

func (r *Renderer) drawQRBadge(dst *ebiten.Image, url string) {
	if url == "" {
		r.qrURL = ""
		r.qrImage = nil
		return
	}
	if url != r.qrURL {
		q, err := qrcode.New(url, qrcode.Medium)
		if err != nil {
			log.Printf("qr badge: %v", err)
			return
		}
		r.qrImage = ebiten.NewImageFromImage(q.Image(config.QRSize))
		r.qrURL = url
	}
	if r.qrImage == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.QRMargin, config.CanvasHeight-config.QRSize-config.QRMargin)
	dst.DrawImage(r.qrImage, op)
}

// fitBackground scales and center-crops a photo to fill the logical canvas.
func fitBackground(img image.Image) image.Image {
	return imaging.Fill(img, config.CanvasWidth, config.CanvasHeight, imaging.Center, imaging.Lanczos)
}
