package app

import (
	"encoding/json"
	"image/color"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lecture-poster/internal/config"
	"go-lecture-poster/internal/defs"
	"go-lecture-poster/internal/event"
	"go-lecture-poster/internal/poster"
)

func newTestEditor(t *testing.T, rc *config.RC) (*Editor, *event.Dispatcher) {
	t.Helper()
	require.NoError(t, defs.LoadFontDefinitions("definitely-missing.json"))
	require.NoError(t, defs.LoadPaletteDefinitions("definitely-missing.json"))
	if rc == nil {
		rc = &config.RC{}
	}
	d := event.NewDispatcher()
	e, err := NewEditor(d, rc)
	require.NoError(t, err)
	return e, d
}

type recordingListener struct {
	events []event.Event
}

func (l *recordingListener) OnEvent(ev event.Event) {
	l.events = append(l.events, ev)
}

func TestSelectElementDispatchesEvent(t *testing.T) {
	e, d := newTestEditor(t, nil)
	rec := &recordingListener{}
	d.Subscribe(event.ElementSelected, rec)

	e.SelectElement("lecturer")

	el, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, poster.ElementLecturer, el.ID)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "lecturer", rec.events[0].Data)
}

func TestDragHostRoundTrip(t *testing.T) {
	e, _ := newTestEditor(t, nil)

	x0, y0, ok := e.ElementPosition("title")
	require.True(t, ok)

	e.UpdateElementPosition("title", x0+25, y0-10)
	x1, y1, _ := e.ElementPosition("title")
	assert.Equal(t, x0+25, x1)
	assert.Equal(t, y0-10, y1)

	_, _, ok = e.ElementPosition("nope")
	assert.False(t, ok)
}

func TestStyleRequestEvents(t *testing.T) {
	e, d := newTestEditor(t, nil)
	e.SelectElement("title")
	before, _ := e.Selected()

	d.Dispatch(event.Event{Type: event.FontSizeChangeRequested, Data: config.FontSizeStep})
	after, _ := e.Selected()
	assert.Equal(t, before.FontSize+config.FontSizeStep, after.FontSize)

	d.Dispatch(event.Event{Type: event.ColorChangeRequested, Data: color.RGBA{9, 8, 7, 255}})
	after, _ = e.Selected()
	assert.Equal(t, color.RGBA{9, 8, 7, 255}, after.Color)

	d.Dispatch(event.Event{Type: event.FamilyCycleRequested, Data: "title"})
	after, _ = e.Selected()
	assert.Equal(t, defs.NextFontFamily(before.Family), after.Family)
}

func TestKeyboardEditing(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.SelectElement("venue")
	e.Poster.SetText(poster.ElementVenue, "قاعة")

	e.AppendRunes([]rune(" ١"))
	el, _ := e.Selected()
	assert.Equal(t, "قاعة ١", el.Text)

	e.Backspace()
	e.Backspace()
	el, _ = e.Selected()
	assert.Equal(t, "قاعة", el.Text)

	e.InsertNewline()
	e.AppendRunes([]rune("الدور الثاني"))
	el, _ = e.Selected()
	assert.Equal(t, "قاعة\nالدور الثاني", el.Text)
}

func TestKeyboardEditingNoSelection(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	before, _ := e.Poster.Element(poster.ElementTitle)

	e.AppendRunes([]rune("x"))
	e.Backspace()
	e.Nudge(5, 5)

	after, _ := e.Poster.Element(poster.ElementTitle)
	assert.Equal(t, before, after)
}

func TestNudgeMovesSelection(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	e.SelectElement("schedule")
	before, _ := e.Selected()

	e.Nudge(config.NudgeStepFast, -config.NudgeStep)
	after, _ := e.Selected()
	assert.Equal(t, before.X+config.NudgeStepFast, after.X)
	assert.Equal(t, before.Y-config.NudgeStep, after.Y)
}

func TestEnhanceFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "نص محسّن"})
	}))
	defer srv.Close()

	e, d := newTestEditor(t, &config.RC{EnhanceEndpoint: srv.URL})
	rec := &recordingListener{}
	d.Subscribe(event.EnhanceFinished, rec)

	require.True(t, e.EnhanceConfigured())
	e.StartEnhance(poster.ElementTitle)
	assert.True(t, e.EnhanceBusy(), "busy flag gates a second request")

	// A second start while busy is ignored.
	e.StartEnhance(poster.ElementTitle)

	require.Eventually(t, func() bool {
		e.Update()
		el, _ := e.Poster.Element(poster.ElementTitle)
		return el.Text == "نص محسّن"
	}, 3*time.Second, 10*time.Millisecond)

	assert.False(t, e.EnhanceBusy())
	require.Len(t, rec.events, 1)
	assert.Nil(t, rec.events[0].Data)
}

func TestEnhanceFailureSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e, _ := newTestEditor(t, &config.RC{EnhanceEndpoint: srv.URL})
	before, _ := e.Poster.Element(poster.ElementTitle)
	e.StartEnhance(poster.ElementTitle)

	require.Eventually(t, func() bool {
		e.Update()
		return !e.EnhanceBusy()
	}, 3*time.Second, 10*time.Millisecond)

	after, _ := e.Poster.Element(poster.ElementTitle)
	assert.Equal(t, before.Text, after.Text, "failed enhancement leaves the text alone")
}

func TestEnhanceUnconfiguredKeepsButtonDisabled(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	assert.False(t, e.EnhanceConfigured())

	view := e.PanelView()
	assert.False(t, view.EnhanceConfigured)
}

func TestPanelViewSnapshot(t *testing.T) {
	e, _ := newTestEditor(t, nil)

	view := e.PanelView()
	assert.False(t, view.HasElement)

	e.SelectElement("lecturer")
	view = e.PanelView()
	require.True(t, view.HasElement)
	assert.Equal(t, poster.ElementLecturer, view.Element.ID)
	assert.NotEmpty(t, view.FamilyName)
}
