// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"go-lecture-poster/internal/app"
	"go-lecture-poster/internal/config"
	"go-lecture-poster/internal/event"
)

// MenuState is the title screen shown before the editor opens.
type MenuState struct {
	sm         *StateMachine
	editor     *app.Editor
	dispatcher *event.Dispatcher
	titleFace  text.Face
	hintFace   text.Face
}

func NewMenuState(sm *StateMachine, editor *app.Editor, dispatcher *event.Dispatcher) *MenuState {
	return &MenuState{
		sm:         sm,
		editor:     editor,
		dispatcher: dispatcher,
		titleFace:  editor.Fonts.UIFace(44),
		hintFace:   editor.Fonts.UIFace(18),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewEditorState(m.sm, m.editor, m.dispatcher))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.WindowBackground)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawCenteredLine(screen, m.titleFace, "ملصق المحاضرة", w/2, h/2-60, config.MenuTitleColor)
	drawCenteredLine(screen, m.hintFace, "اضغط أي زر للبدء", w/2, h/2+10, config.MenuHintColor)
	drawCenteredLine(screen, m.hintFace, "اسحب صورة إلى النافذة لتعيين الخلفية", w/2, h/2+44, config.MenuHintColor)
}

func (m *MenuState) Exit() {}

func drawCenteredLine(screen *ebiten.Image, face text.Face, s string, cx, cy int, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(cx), float64(cy))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
