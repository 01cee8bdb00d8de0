// internal/fonts/fonts.go
package fonts

import (
	"bytes"
	"fmt"
	"log"
	"os"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"go-lecture-poster/internal/defs"
)

// Registry caches one text face source per font family. Faces come out
// shaped for Arabic, right-to-left.
type Registry struct {
	sources  map[string]*text.GoTextFaceSource
	fallback *text.GoTextFaceSource
}

// NewRegistry builds a registry with the embedded Go Regular fallback so a
// face is always available even with no font assets on disk.
func NewRegistry() (*Registry, error) {
	fallback, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded fallback font: %w", err)
	}
	return &Registry{
		sources:  make(map[string]*text.GoTextFaceSource),
		fallback: fallback,
	}, nil
}

// LoadFamilies loads the TTF of every family in the font library. Families
// whose file is missing or corrupt keep rendering with the fallback face.
func (r *Registry) LoadFamilies() {
	for id, def := range defs.FontLibrary {
		data, err := os.ReadFile(def.Path)
		if err != nil {
			log.Printf("font %s: %v (using fallback face)", id, err)
			continue
		}
		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			log.Printf("font %s: parse %s: %v (using fallback face)", id, def.Path, err)
			continue
		}
		r.sources[id] = src
	}
	log.Printf("Loaded %d of %d font families", len(r.sources), len(defs.FontLibrary))
}

// Face returns a right-to-left Arabic face for the family at the given size.
// Unknown families resolve through the definition fallback, then to the
// embedded face.
func (r *Registry) Face(family string, size float64) text.Face {
	src, ok := r.sources[family]
	if !ok {
		src, ok = r.sources[defs.FontFamily(family).ID]
	}
	if !ok {
		src = r.fallback
	}
	return &text.GoTextFace{
		Source:    src,
		Direction: text.DirectionRightToLeft,
		Size:      size,
		Language:  language.Arabic,
	}
}

// UIFace returns a face for editor chrome (buttons, status bar) at the given
// size, using the default family when loaded.
func (r *Registry) UIFace(size float64) text.Face {
	return r.Face(defs.DefaultFontFamily, size)
}
