package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 7), uint8(y * 11), 90, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 8, 6), 0o644))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	_, err = LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestLoadImageFS(t *testing.T) {
	fsys := fstest.MapFS{
		"photo.png": &fstest.MapFile{Data: pngBytes(t, 5, 4)},
		"notes.txt": &fstest.MapFile{Data: []byte("not an image")},
	}

	img, err := LoadImageFS(fsys, "photo.png")
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())

	_, err = LoadImageFS(fsys, "notes.txt")
	assert.Error(t, err)
	_, err = LoadImageFS(fsys, "absent.png")
	assert.Error(t, err)
}

func TestDownloadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngBytes(t, 10, 10))
	}))
	defer srv.Close()

	img, err := DownloadImage(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
}

func TestDownloadImageNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := DownloadImage(srv.URL)
	assert.Error(t, err)
}
