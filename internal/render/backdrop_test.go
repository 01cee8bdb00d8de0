package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lecture-poster/internal/config"
)

func TestBackdropImage(t *testing.T) {
	img := backdropImage()

	b := img.Bounds()
	require.Equal(t, config.CanvasWidth, b.Dx())
	require.Equal(t, config.CanvasHeight, b.Dy())

	_, _, _, top := img.At(config.CanvasWidth/2, 10).RGBA()
	_, _, _, bottom := img.At(config.CanvasWidth/2, config.CanvasHeight-2).RGBA()

	assert.Zero(t, top, "upper canvas stays untouched")
	assert.Greater(t, bottom, uint32(100<<8), "bottom edge darkens the photo")
	assert.Less(t, bottom, uint32(220<<8), "backdrop must not go opaque")
}
