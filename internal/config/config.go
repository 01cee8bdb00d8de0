// internal/config/config.go
package config

import "image/color"

const (
	// CanvasWidth/CanvasHeight define the logical canvas. Every element
	// position is stored in this coordinate space, no matter what size the
	// canvas is actually rendered at on screen.
	CanvasWidth  = 1280
	CanvasHeight = 720

	WindowWidth  = 1120
	WindowHeight = 760
	WindowTitle  = "Lecture Poster Studio"

	ToolbarHeight = 48
	PanelWidth    = 264
	StatusHeight  = 30
	CanvasMargin  = 14

	ClickCooldown = 250 // ms between accepted clicks on the same control
	MaxDeltaTime  = 0.06

	DefaultFontSize = 48.0
	MinFontSize     = 14.0
	MaxFontSize     = 160.0
	FontSizeStep    = 4.0

	LineSpacingFactor = 1.3

	SelectionPadding     = 6.0
	SelectionStrokeWidth = 2.0

	NudgeStep     = 1.0  // arrow-key move, logical units
	NudgeStepFast = 10.0 // with shift held

	KeyRepeatDelay    = 24 // ticks a key must be held before repeating
	KeyRepeatInterval = 3  // ticks between repeats while held

	QRSize   = 120
	QRMargin = 32

	ExportFilePrefix = "poster"

	EnhanceTimeoutSeconds = 20
	FetchTimeoutSeconds   = 12
)

var (
	WindowBackground = color.RGBA{24, 26, 32, 255}
	CanvasFallback   = color.RGBA{38, 41, 52, 255} // shown until a background image is set
	ToolbarColor     = color.RGBA{30, 33, 41, 255}
	PanelColor       = color.RGBA{30, 33, 41, 255}
	PanelHeaderColor = color.RGBA{200, 203, 210, 255}
	ButtonColor      = color.RGBA{58, 63, 78, 255}
	ButtonHoverColor = color.RGBA{76, 82, 100, 255}
	ButtonDisabled   = color.RGBA{44, 47, 56, 255}
	ButtonTextColor  = color.RGBA{235, 236, 240, 255}
	SwatchStroke     = color.RGBA{235, 236, 240, 255}
	SelectionColor   = color.RGBA{255, 196, 0, 255}
	StatusTextColor  = color.RGBA{200, 203, 210, 255}
	ErrorTextColor   = color.RGBA{235, 100, 90, 255}
	MenuTitleColor   = color.RGBA{240, 240, 244, 255}
	MenuHintColor    = color.RGBA{150, 154, 165, 255}
)
