// internal/ui/button.go
package ui

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lecture-poster/internal/config"
)

// Button is a clickable labeled rectangle.
type Button struct {
	Rect          image.Rectangle
	Label         string
	Disabled      bool
	LastClickTime time.Time
}

func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Label: label}
}

// TryClick accepts a press at (x, y) when it hits the button, the button is
// enabled and the click cooldown has passed.
func (b *Button) TryClick(x, y int) bool {
	if b.Disabled || !image.Pt(x, y).In(b.Rect) {
		return false
	}
	if time.Since(b.LastClickTime) < config.ClickCooldown*time.Millisecond {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

// Draw renders the button with hover and disabled states.
func (b *Button) Draw(screen *ebiten.Image, face text.Face) {
	bg := config.ButtonColor
	if b.Disabled {
		bg = config.ButtonDisabled
	} else {
		cx, cy := ebiten.CursorPosition()
		if image.Pt(cx, cy).In(b.Rect) {
			bg = config.ButtonHoverColor
		}
	}

	vector.DrawFilledRect(screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()),
		bg, false)

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(
		float64(b.Rect.Min.X+b.Rect.Dx()/2),
		float64(b.Rect.Min.Y+b.Rect.Dy()/2))
	op.ColorScale.ScaleWithColor(config.ButtonTextColor)
	text.Draw(screen, b.Label, face, op)
}
