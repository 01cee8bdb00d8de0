// cmd/poster/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-lecture-poster/internal/app"
	"go-lecture-poster/internal/config"
	"go-lecture-poster/internal/defs"
	"go-lecture-poster/internal/event"
	"go-lecture-poster/internal/state"
)

type App struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout passes the window size through: the logical canvas is scaled inside
// the window by the canvas view, so cursor coordinates stay in device pixels
// and the drag controller does the device-to-logical mapping itself.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	bgPath := flag.String("bg", "", "background image to load at startup")
	linkURL := flag.String("link", "", "lecture link rendered as a QR badge")
	skipMenu := flag.Bool("edit", false, "open the editor directly, skipping the menu")
	flag.Parse()

	if err := defs.LoadFontDefinitions("assets/defs/fonts.json"); err != nil {
		log.Fatal(err)
	}
	if err := defs.LoadPaletteDefinitions("assets/defs/palettes.json"); err != nil {
		log.Fatal(err)
	}

	rc := config.LoadRC()
	dispatcher := event.NewDispatcher()
	editor, err := app.NewEditor(dispatcher, rc)
	if err != nil {
		log.Fatal(err)
	}
	if *bgPath != "" {
		if err := editor.SetBackgroundFromPath(*bgPath); err != nil {
			log.Printf("background %s: %v", *bgPath, err)
		}
	}
	if *linkURL != "" {
		editor.Poster.SetLinkURL(*linkURL)
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewEditorState(sm, editor, dispatcher))
	} else {
		sm.SetState(state.NewMenuState(sm, editor, dispatcher))
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(&App{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		log.Fatal(err)
	}
}
