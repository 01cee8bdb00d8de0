package poster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lecture-poster/internal/config"
)

func TestNewLecturePosterHasFixedElementSet(t *testing.T) {
	p := NewLecturePoster()

	els := p.Elements()
	require.Len(t, els, 4)
	for _, id := range ElementOrder {
		el, ok := p.Element(id)
		require.True(t, ok, "element %s must exist", id)
		assert.NotEmpty(t, el.Label)
		assert.NotEmpty(t, el.Text)
		assert.Greater(t, el.FontSize, 0.0)
	}
}

func TestElementReturnsCopy(t *testing.T) {
	p := NewLecturePoster()

	el, ok := p.Element(ElementTitle)
	require.True(t, ok)
	el.X = -999
	el.Text = "mutated"

	again, _ := p.Element(ElementTitle)
	assert.NotEqual(t, -999.0, again.X)
	assert.NotEqual(t, "mutated", again.Text)
}

func TestSetPosition(t *testing.T) {
	p := NewLecturePoster()

	p.SetPosition(ElementLecturer, 412.5, 133.25)
	x, y, ok := p.Position(ElementLecturer)
	require.True(t, ok)
	assert.Equal(t, 412.5, x)
	assert.Equal(t, 133.25, y)

	// Unknown ids are a no-op, not a panic.
	p.SetPosition(ElementID("ghost"), 1, 2)
	_, _, ok = p.Position(ElementID("ghost"))
	assert.False(t, ok)
}

func TestSetFontSizeClamped(t *testing.T) {
	p := NewLecturePoster()

	p.SetFontSize(ElementTitle, 5000)
	el, _ := p.Element(ElementTitle)
	assert.Equal(t, float64(config.MaxFontSize), el.FontSize)

	p.SetFontSize(ElementTitle, 1)
	el, _ = p.Element(ElementTitle)
	assert.Equal(t, float64(config.MinFontSize), el.FontSize)
}

func TestStyleMutators(t *testing.T) {
	p := NewLecturePoster()

	p.SetText(ElementVenue, "مدرج كلية الحاسبات")
	p.SetFamily(ElementVenue, "amiri")
	p.SetColor(ElementVenue, color.RGBA{1, 2, 3, 255})
	p.SetWidth(ElementVenue, 400)

	el, _ := p.Element(ElementVenue)
	assert.Equal(t, "مدرج كلية الحاسبات", el.Text)
	assert.Equal(t, "amiri", el.Family)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, el.Color)
	assert.Equal(t, 400.0, el.Width)

	p.SetWidth(ElementVenue, -10)
	el, _ = p.Element(ElementVenue)
	assert.Equal(t, 0.0, el.Width)
}

func TestBackgroundAndLink(t *testing.T) {
	p := NewLecturePoster()
	assert.Nil(t, p.Background())
	assert.Empty(t, p.LinkURL())

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	p.SetBackground(img)
	assert.Equal(t, image.Image(img), p.Background())

	p.SetLinkURL("https://example.org/lecture")
	assert.Equal(t, "https://example.org/lecture", p.LinkURL())

	p.SetBackground(nil)
	assert.Nil(t, p.Background())
}
