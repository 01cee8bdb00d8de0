// internal/render/backdrop.go
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"go-lecture-poster/internal/config"
)

// backdropImage draws the readability layer composited between the background
// photo and the text: transparent over the upper canvas, fading to dark
// toward the bottom where the schedule and venue usually sit.
func backdropImage() image.Image {
	ctx := gg.NewContext(config.CanvasWidth, config.CanvasHeight)

	grad := gg.NewLinearGradient(0, config.CanvasHeight*0.40, 0, config.CanvasHeight)
	grad.AddColorStop(0, color.RGBA{0, 0, 0, 0})
	grad.AddColorStop(1, color.RGBA{0, 0, 0, 175})

	ctx.SetFillStyle(grad)
	ctx.DrawRectangle(0, 0, config.CanvasWidth, config.CanvasHeight)
	ctx.Fill()

	return ctx.Image()
}
