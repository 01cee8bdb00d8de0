// internal/assets/images.go
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"go-lecture-poster/internal/config"
)

// LoadImage decodes an image from disk.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	return img, nil
}

// LoadImageFS decodes the named image from an fs.FS (used for files dropped
// onto the window).
func LoadImageFS(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open dropped file %s: %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dropped file %s: %w", name, err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode dropped file %s: %w", name, err)
	}
	return img, nil
}

// DownloadImage fetches and decodes an image over HTTP. One shot, bounded by
// a timeout, no retries.
func DownloadImage(url string) (image.Image, error) {
	client := http.Client{Timeout: config.FetchTimeoutSeconds * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("non-200 response for " + url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image from %s: %w", url, err)
	}
	return img, nil
}
