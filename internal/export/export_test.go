package export

import (
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lecture-poster/internal/config"
)

func TestSaveWritesTimestampedPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{200, 30, 40, 255})
		}
	}

	dir := filepath.Join(t.TempDir(), "exports")
	path, err := Save(img, dir)
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, config.ExportFilePrefix+"_"))
	assert.True(t, strings.HasSuffix(base, ".png"))

	loaded, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 16, loaded.Bounds().Dx())
	r, g, b, _ := loaded.At(3, 3).RGBA()
	assert.Equal(t, uint32(200<<8|200), r)
	assert.Equal(t, uint32(30<<8|30), g)
	assert.Equal(t, uint32(40<<8|40), b)
}

func TestSaveIntoMissingDirCreatesIt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	_, err := Save(image.NewRGBA(image.Rect(0, 0, 2, 2)), dir)
	assert.NoError(t, err)
}
