// internal/state/editor_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"go-lecture-poster/internal/app"
	"go-lecture-poster/internal/config"
	"go-lecture-poster/internal/event"
	"go-lecture-poster/internal/ui"
)

// EditorState is the main screen: canvas in the middle, toolbar on top,
// style panel on the right, status bar at the bottom. It routes raw input to
// the editor; UI elements get first claim on every click.
type EditorState struct {
	sm      *StateMachine
	editor  *app.Editor
	toolbar *ui.Toolbar
	panel   *ui.StylePanel
	uiFace  text.Face

	winW, winH int
}

func NewEditorState(sm *StateMachine, editor *app.Editor, dispatcher *event.Dispatcher) *EditorState {
	return &EditorState{
		sm:      sm,
		editor:  editor,
		toolbar: ui.NewToolbar(dispatcher),
		panel:   ui.NewStylePanel(dispatcher),
		uiFace:  editor.Fonts.UIFace(ui.UIFontSize),
	}
}

func (s *EditorState) Enter() {
	s.editor.Status.SetInfo("انقر عنصرًا لتحريكه أو تعديله")
}

func (s *EditorState) Update(deltaTime float64) {
	s.winW, s.winH = ebiten.WindowSize()
	s.editor.View.Layout(s.winW, s.winH)
	s.toolbar.Layout(s.winW)
	s.panel.Layout(s.winW, s.winH)

	if files := ebiten.DroppedFiles(); files != nil {
		s.editor.SetBackgroundFromFS(files)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// UI first; a press that no widget consumes goes to the canvas.
		if !s.toolbar.HandleClick(x, y, s.editor.ExportBusy()) &&
			!s.panel.HandleClick(x, y, s.editor.PanelView()) {
			s.editor.HandleCanvasPress(x, y)
		}
	}

	if s.editor.Dragging() {
		x, y := ebiten.CursorPosition()
		s.editor.HandlePointerMove(x, y)
		// Release is polled globally, so the drag ends no matter where the
		// pointer is when the button comes up.
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
			!ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			s.editor.HandlePointerRelease()
		}
	}

	s.handleKeyboard()
	s.editor.Update()
	s.editor.Status.Update()
}

func (s *EditorState) handleKeyboard() {
	s.editor.AppendRunes(ebiten.AppendInputChars(nil))

	if repeatingKeyPressed(ebiten.KeyBackspace) {
		s.editor.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.editor.InsertNewline()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.editor.Deselect()
	}

	step := float64(config.NudgeStep)
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = config.NudgeStepFast
	}
	if repeatingKeyPressed(ebiten.KeyArrowLeft) {
		s.editor.Nudge(-step, 0)
	}
	if repeatingKeyPressed(ebiten.KeyArrowRight) {
		s.editor.Nudge(step, 0)
	}
	if repeatingKeyPressed(ebiten.KeyArrowUp) {
		s.editor.Nudge(0, -step)
	}
	if repeatingKeyPressed(ebiten.KeyArrowDown) {
		s.editor.Nudge(0, step)
	}
}

// repeatingKeyPressed fires on the initial press and then repeats while the
// key stays held.
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= config.KeyRepeatDelay && (d-config.KeyRepeatDelay)%config.KeyRepeatInterval == 0
}

func (s *EditorState) Draw(screen *ebiten.Image) {
	screen.Fill(config.WindowBackground)

	canvas := s.editor.Canvas()
	sel, _ := s.editor.SelectedID()
	s.editor.Renderer.Draw(canvas, s.editor.Poster, sel)
	s.editor.View.Draw(screen, canvas)

	s.toolbar.Draw(screen, s.uiFace, s.editor.ExportBusy())
	s.panel.Draw(screen, s.uiFace, s.editor.PanelView())
	s.editor.Status.Draw(screen, s.uiFace, s.winW, s.winH)
}

func (s *EditorState) Exit() {}
