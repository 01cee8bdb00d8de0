package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-lecture-poster/internal/config"
)

func TestFitBackgroundFillsCanvas(t *testing.T) {
	cases := []image.Rectangle{
		image.Rect(0, 0, 100, 50),    // wide
		image.Rect(0, 0, 300, 900),   // tall
		image.Rect(0, 0, 1280, 720),  // exact
		image.Rect(0, 0, 4000, 2250), // oversized
	}
	for _, rect := range cases {
		got := fitBackground(image.NewRGBA(rect))
		assert.Equal(t, config.CanvasWidth, got.Bounds().Dx())
		assert.Equal(t, config.CanvasHeight, got.Bounds().Dy())
	}
}
