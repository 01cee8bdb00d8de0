// internal/export/export.go
package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"

	"go-lecture-poster/internal/config"
)

// Snapshot copies a rendered canvas into a CPU-side image so encoding can
// happen off the game loop.
func Snapshot(canvas *ebiten.Image) *image.RGBA {
	b := canvas.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	canvas.ReadPixels(img.Pix)
	return img
}

// Save writes the image as a timestamped PNG under dir (working directory
// when dir is empty) and returns the path.
func Save(img image.Image, dir string) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	name := fmt.Sprintf("%s_%s.png", config.ExportFilePrefix, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("failed to save poster: %w", err)
	}
	return path, nil
}
