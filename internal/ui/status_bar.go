// internal/ui/status_bar.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lecture-poster/internal/config"
	"go-lecture-poster/internal/utils"
)

// StatusBar shows the latest notification along the bottom edge plus a
// pulsing dot while an export or enhancement is in flight.
type StatusBar struct {
	message string
	isError bool
	busy    bool
	tick    int
}

func (s *StatusBar) SetInfo(msg string) {
	s.message = msg
	s.isError = false
}

func (s *StatusBar) SetError(msg string) {
	s.message = msg
	s.isError = true
}

func (s *StatusBar) SetBusy(busy bool) {
	s.busy = busy
}

func (s *StatusBar) Update() {
	s.tick++
}

func (s *StatusBar) Draw(screen *ebiten.Image, face text.Face, winW, winH int) {
	top := winH - config.StatusHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(winW), config.StatusHeight, config.ToolbarColor, false)

	if s.message != "" {
		clr := config.StatusTextColor
		if s.isError {
			clr = config.ErrorTextColor
		}
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignStart
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(float64(winW-12), float64(top+config.StatusHeight/2))
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, s.message, face, op)
	}

	if s.busy {
		pulse := utils.Lerp(0.35, 1.0, (math.Sin(float64(s.tick)*0.12)+1)/2)
		c := config.SelectionColor
		c.R = uint8(float64(c.R) * pulse)
		c.G = uint8(float64(c.G) * pulse)
		c.B = uint8(float64(c.B) * pulse)
		c.A = uint8(255 * pulse)
		vector.DrawFilledCircle(screen, 16, float32(top+config.StatusHeight/2), 6, c, true)
	}
}
