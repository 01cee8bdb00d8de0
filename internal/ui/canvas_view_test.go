package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lecture-poster/internal/config"
)

func TestLayoutPreservesAspectRatio(t *testing.T) {
	v := &CanvasView{}
	v.Layout(config.WindowWidth, config.WindowHeight)

	r := v.Rect()
	require.False(t, r.Empty())
	assert.InDelta(t, 16.0/9.0, float64(r.Dx())/float64(r.Dy()), 0.01)
	assert.GreaterOrEqual(t, r.Min.Y, config.ToolbarHeight)
}

func TestLayoutTinyWindowCollapses(t *testing.T) {
	v := &CanvasView{}
	v.Layout(10, 10)
	assert.True(t, v.Rect().Empty())

	w, _ := v.RenderedSize()
	assert.Zero(t, w, "collapsed view reports zero rendered width so drags skip")
}

func TestToLogicalRoundTrip(t *testing.T) {
	v := &CanvasView{}
	v.Layout(config.WindowWidth, config.WindowHeight)
	r := v.Rect()

	// Canvas origin maps to logical origin.
	lx, ly := v.ToLogical(r.Min.X, r.Min.Y)
	assert.InDelta(t, 0, lx, 1e-9)
	assert.InDelta(t, 0, ly, 1e-9)

	// Far corner maps to the logical extent.
	lx, ly = v.ToLogical(r.Max.X, r.Max.Y)
	assert.InDelta(t, config.CanvasWidth, lx, 1.0/v.Scale()+1e-9)
	assert.InDelta(t, config.CanvasHeight, ly, 1.0/v.Scale()+1e-9)
}

func TestScaleMatchesRenderedWidth(t *testing.T) {
	v := &CanvasView{}
	v.Layout(config.WindowWidth, config.WindowHeight)

	w, _ := v.RenderedSize()
	assert.InDelta(t, w/config.CanvasWidth, v.Scale(), 1e-9)
}

func TestContains(t *testing.T) {
	v := &CanvasView{}
	v.Layout(config.WindowWidth, config.WindowHeight)
	r := v.Rect()

	assert.True(t, v.Contains(r.Min.X+1, r.Min.Y+1))
	assert.False(t, v.Contains(r.Min.X-5, r.Min.Y))
	assert.False(t, v.Contains(0, 0), "toolbar corner is not canvas")
}
