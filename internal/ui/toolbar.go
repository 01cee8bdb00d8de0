// internal/ui/toolbar.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lecture-poster/internal/config"
	"go-lecture-poster/internal/event"
)

const (
	toolbarButtonWidth  = 150
	toolbarButtonHeight = 32
	toolbarButtonGap    = 10
)

// Toolbar holds the top row of editor actions. Actions are dispatched as
// events; the editor is the listener that carries them out.
type Toolbar struct {
	dispatcher *event.Dispatcher
	width      int

	exportBtn *Button
	bgBtn     *Button
	linkBtn   *Button
}

func NewToolbar(dispatcher *event.Dispatcher) *Toolbar {
	return &Toolbar{
		dispatcher: dispatcher,
		exportBtn:  NewButton(image.Rectangle{}, "تصدير الملصق"),
		bgBtn:      NewButton(image.Rectangle{}, "خلفية من الرابط"),
		linkBtn:    NewButton(image.Rectangle{}, "رمز QR من الرابط"),
	}
}

// Layout positions the buttons, right to left, for the window width.
func (t *Toolbar) Layout(winW int) {
	t.width = winW
	y := (config.ToolbarHeight - toolbarButtonHeight) / 2
	x := winW - toolbarButtonGap
	for _, b := range []*Button{t.exportBtn, t.bgBtn, t.linkBtn} {
		b.Rect = image.Rect(x-toolbarButtonWidth, y, x, y+toolbarButtonHeight)
		x -= toolbarButtonWidth + toolbarButtonGap
	}
}

// Contains reports whether a device point falls on the toolbar strip.
func (t *Toolbar) Contains(x, y int) bool {
	return y < config.ToolbarHeight
}

// HandleClick routes a press to the toolbar buttons. Returns true when the
// click was consumed.
func (t *Toolbar) HandleClick(x, y int, exportBusy bool) bool {
	t.exportBtn.Disabled = exportBusy
	switch {
	case t.exportBtn.TryClick(x, y):
		t.dispatcher.Dispatch(event.Event{Type: event.ExportRequested})
	case t.bgBtn.TryClick(x, y):
		t.dispatcher.Dispatch(event.Event{Type: event.BackgroundPasteRequested})
	case t.linkBtn.TryClick(x, y):
		t.dispatcher.Dispatch(event.Event{Type: event.LinkPasteRequested})
	default:
		return t.Contains(x, y)
	}
	return true
}

func (t *Toolbar) Draw(screen *ebiten.Image, face text.Face, exportBusy bool) {
	vector.DrawFilledRect(screen, 0, 0, float32(t.width), config.ToolbarHeight, config.ToolbarColor, false)
	t.exportBtn.Disabled = exportBusy
	t.exportBtn.Draw(screen, face)
	t.bgBtn.Draw(screen, face)
	t.linkBtn.Draw(screen, face)
}
