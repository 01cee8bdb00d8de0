// internal/app/editor.go
package app

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"go-lecture-poster/internal/assets"
	"go-lecture-poster/internal/config"
	"go-lecture-poster/internal/defs"
	"go-lecture-poster/internal/drag"
	"go-lecture-poster/internal/enhance"
	"go-lecture-poster/internal/event"
	"go-lecture-poster/internal/export"
	"go-lecture-poster/internal/fonts"
	"go-lecture-poster/internal/poster"
	"go-lecture-poster/internal/render"
	"go-lecture-poster/internal/ui"
)

type exportResult struct {
	path string
	err  error
}

type enhanceResult struct {
	element poster.ElementID
	text    string
	err     error
}

type backgroundResult struct {
	img    image.Image
	source string
	err    error
}

// Editor owns the poster and everything that mutates it: it is the single
// writer behind the drag controller's Host interface and the handler for
// every UI request event. The async export/enhance/fetch operations are
// single in-flight, gated by busy flags, with results delivered back onto
// the update loop through channels.
type Editor struct {
	Poster   *poster.Poster
	Renderer *render.Renderer
	Fonts    *fonts.Registry
	Status   *ui.StatusBar
	View     *ui.CanvasView

	dispatcher *event.Dispatcher
	dragger    *drag.Controller
	enhancer   *enhance.Client
	rc         *config.RC

	canvas   *ebiten.Image
	selected poster.ElementID

	exportBusy  bool
	enhanceBusy bool
	fetchBusy   bool
	exportDone  chan exportResult
	enhanceDone chan enhanceResult
	fetchDone   chan backgroundResult
}

// NewEditor wires the poster, renderer and drag controller together.
func NewEditor(dispatcher *event.Dispatcher, rc *config.RC) (*Editor, error) {
	reg, err := fonts.NewRegistry()
	if err != nil {
		return nil, err
	}
	reg.LoadFamilies()

	e := &Editor{
		Poster:      poster.NewLecturePoster(),
		Renderer:    render.NewRenderer(reg),
		Fonts:       reg,
		Status:      &ui.StatusBar{},
		View:        &ui.CanvasView{},
		dispatcher:  dispatcher,
		enhancer:    enhance.NewClient(rc.EnhanceEndpoint, rc.EnhanceAPIKey),
		rc:          rc,
		exportDone:  make(chan exportResult, 1),
		enhanceDone: make(chan enhanceResult, 1),
		fetchDone:   make(chan backgroundResult, 1),
	}
	e.dragger = drag.NewController(e, e.View, config.CanvasWidth)

	for _, t := range []event.EventType{
		event.ExportRequested,
		event.EnhanceRequested,
		event.FamilyCycleRequested,
		event.FontSizeChangeRequested,
		event.ColorChangeRequested,
		event.BackgroundPasteRequested,
		event.LinkPasteRequested,
	} {
		dispatcher.Subscribe(t, e)
	}
	return e, nil
}

// SelectElement implements drag.Host.
func (e *Editor) SelectElement(id string) {
	e.selected = poster.ElementID(id)
	e.dispatcher.Dispatch(event.Event{Type: event.ElementSelected, Data: id})
}

// ElementPosition implements drag.Host.
func (e *Editor) ElementPosition(id string) (float64, float64, bool) {
	return e.Poster.Position(poster.ElementID(id))
}

// UpdateElementPosition implements drag.Host.
func (e *Editor) UpdateElementPosition(id string, x, y float64) {
	e.Poster.SetPosition(poster.ElementID(id), x, y)
}

// OnEvent implements event.Listener for the UI request events.
func (e *Editor) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.ExportRequested:
		e.StartExport()
	case event.EnhanceRequested:
		if id, ok := ev.Data.(string); ok {
			e.StartEnhance(poster.ElementID(id))
		}
	case event.FamilyCycleRequested:
		if id, ok := ev.Data.(string); ok {
			e.CycleFamily(poster.ElementID(id))
		}
	case event.FontSizeChangeRequested:
		if delta, ok := ev.Data.(float64); ok {
			e.AdjustFontSize(delta)
		}
	case event.ColorChangeRequested:
		if c, ok := ev.Data.(color.RGBA); ok {
			e.ApplyColor(c)
		}
	case event.BackgroundPasteRequested:
		e.FetchBackgroundFromClipboard()
	case event.LinkPasteRequested:
		e.PasteLink()
	}
}

// Update drains async results and keeps the busy indicator honest. Called
// once per tick by the editor state.
func (e *Editor) Update() {
	select {
	case res := <-e.exportDone:
		e.exportBusy = false
		if res.err != nil {
			e.Status.SetError(res.err.Error())
			e.dispatcher.Dispatch(event.Event{Type: event.ExportFinished, Data: res.err})
		} else {
			e.Status.SetInfo("تم حفظ الملصق: " + res.path)
			e.dispatcher.Dispatch(event.Event{Type: event.ExportFinished, Data: res.path})
		}
	default:
	}

	select {
	case res := <-e.enhanceDone:
		e.enhanceBusy = false
		if res.err != nil {
			e.Status.SetError(res.err.Error())
		} else {
			e.Poster.SetText(res.element, res.text)
			e.Status.SetInfo("تم تحسين النص")
		}
		e.dispatcher.Dispatch(event.Event{Type: event.EnhanceFinished, Data: res.err})
	default:
	}

	select {
	case res := <-e.fetchDone:
		e.fetchBusy = false
		if res.err != nil {
			e.Status.SetError(res.err.Error())
		} else {
			e.Poster.SetBackground(res.img)
			e.Status.SetInfo("تم تحديث الخلفية")
			e.dispatcher.Dispatch(event.Event{Type: event.BackgroundChanged, Data: res.source})
		}
	default:
	}

	e.Status.SetBusy(e.exportBusy || e.enhanceBusy || e.fetchBusy)
}

// --- pointer input, forwarded by the editor state ---

// HandleCanvasPress starts a drag when the press lands on an element, and
// clears the selection when it lands on empty canvas.
func (e *Editor) HandleCanvasPress(x, y int) {
	if !e.View.Contains(x, y) {
		return
	}
	lx, ly := e.View.ToLogical(x, y)
	if id, ok := e.Renderer.HitTest(e.Poster, lx, ly); ok {
		e.dragger.Begin(string(id), float64(x), float64(y))
		return
	}
	e.selected = ""
}

// HandlePointerMove feeds the active drag; a no-op while idle.
func (e *Editor) HandlePointerMove(x, y int) {
	e.dragger.Move(float64(x), float64(y))
}

// HandlePointerRelease ends any active drag, wherever the release happened.
func (e *Editor) HandlePointerRelease() {
	e.dragger.End()
}

// Dragging reports whether a drag gesture is active.
func (e *Editor) Dragging() bool {
	return e.dragger.Dragging()
}

// --- selection and styling ---

// Selected returns the currently selected element.
func (e *Editor) Selected() (poster.TextElement, bool) {
	if e.selected == "" {
		return poster.TextElement{}, false
	}
	return e.Poster.Element(e.selected)
}

// SelectedID returns the selected element's id.
func (e *Editor) SelectedID() (poster.ElementID, bool) {
	return e.selected, e.selected != ""
}

// Deselect clears the selection.
func (e *Editor) Deselect() {
	e.selected = ""
}

func (e *Editor) CycleFamily(id poster.ElementID) {
	if el, ok := e.Poster.Element(id); ok {
		e.Poster.SetFamily(id, defs.NextFontFamily(el.Family))
	}
}

func (e *Editor) AdjustFontSize(delta float64) {
	if el, ok := e.Selected(); ok {
		e.Poster.SetFontSize(el.ID, el.FontSize+delta)
	}
}

func (e *Editor) ApplyColor(c color.RGBA) {
	if el, ok := e.Selected(); ok {
		e.Poster.SetColor(el.ID, c)
	}
}

// --- keyboard text editing ---

func (e *Editor) AppendRunes(rs []rune) {
	if el, ok := e.Selected(); ok && len(rs) > 0 {
		e.Poster.SetText(el.ID, el.Text+string(rs))
	}
}

func (e *Editor) Backspace() {
	if el, ok := e.Selected(); ok {
		if runes := []rune(el.Text); len(runes) > 0 {
			e.Poster.SetText(el.ID, string(runes[:len(runes)-1]))
		}
	}
}

func (e *Editor) InsertNewline() {
	if el, ok := e.Selected(); ok {
		e.Poster.SetText(el.ID, el.Text+"\n")
	}
}

func (e *Editor) Nudge(dx, dy float64) {
	if el, ok := e.Selected(); ok {
		e.Poster.SetPosition(el.ID, el.X+dx, el.Y+dy)
	}
}

// --- async operations: single in-flight, busy-gated, no retries ---

// StartExport renders a clean frame (no selection outline) and hands the
// pixels to a goroutine for encoding.
func (e *Editor) StartExport() {
	if e.exportBusy {
		return
	}
	e.exportBusy = true
	e.Status.SetInfo("جارٍ تصدير الملصق…")

	target := ebiten.NewImage(config.CanvasWidth, config.CanvasHeight)
	e.Renderer.Draw(target, e.Poster, "")
	snapshot := export.Snapshot(target)
	target.Deallocate()

	dir := e.rc.ExportDirectory
	go func() {
		path, err := export.Save(snapshot, dir)
		e.exportDone <- exportResult{path: path, err: err}
	}()
}

// ExportBusy reports whether an export is in flight.
func (e *Editor) ExportBusy() bool {
	return e.exportBusy
}

// StartEnhance sends an element's text to the enhancement service.
func (e *Editor) StartEnhance(id poster.ElementID) {
	if e.enhanceBusy {
		return
	}
	el, ok := e.Poster.Element(id)
	if !ok {
		return
	}
	e.enhanceBusy = true
	e.Status.SetInfo("جارٍ تحسين النص…")

	go func() {
		enhanced, err := e.enhancer.Enhance(string(id), el.Text)
		e.enhanceDone <- enhanceResult{element: id, text: enhanced, err: err}
	}()
}

// EnhanceBusy reports whether an enhancement is in flight.
func (e *Editor) EnhanceBusy() bool {
	return e.enhanceBusy
}

// EnhanceConfigured reports whether the enhance endpoint is set.
func (e *Editor) EnhanceConfigured() bool {
	return e.enhancer.Configured()
}

// --- background & link ---

// SetBackgroundFromPath loads a background image synchronously; used for the
// -bg startup flag.
func (e *Editor) SetBackgroundFromPath(path string) error {
	img, err := assets.LoadImage(path)
	if err != nil {
		return err
	}
	e.Poster.SetBackground(img)
	e.dispatcher.Dispatch(event.Event{Type: event.BackgroundChanged, Data: path})
	return nil
}

// SetBackgroundFromFS loads the first decodable image from a dropped-file
// filesystem.
func (e *Editor) SetBackgroundFromFS(fsys fs.FS) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		e.Status.SetError(err.Error())
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		img, err := assets.LoadImageFS(fsys, entry.Name())
		if err != nil {
			continue
		}
		e.Poster.SetBackground(img)
		e.Status.SetInfo("تم تحديث الخلفية: " + entry.Name())
		e.dispatcher.Dispatch(event.Event{Type: event.BackgroundChanged, Data: entry.Name()})
		return
	}
	e.Status.SetError("الملف المسحوب ليس صورة")
}

// FetchBackgroundFromClipboard downloads the image URL currently on the
// clipboard and installs it as the background.
func (e *Editor) FetchBackgroundFromClipboard() {
	if e.fetchBusy {
		return
	}
	url, err := clipboard.ReadAll()
	if err != nil {
		e.Status.SetError(fmt.Sprintf("تعذر قراءة الحافظة: %v", err))
		return
	}
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		e.Status.SetError("لا يوجد رابط صورة في الحافظة")
		return
	}
	e.fetchBusy = true
	e.Status.SetInfo("جارٍ تنزيل الخلفية…")

	go func() {
		img, err := assets.DownloadImage(url)
		if err != nil {
			e.fetchDone <- backgroundResult{err: err}
			return
		}
		e.fetchDone <- backgroundResult{img: img, source: url}
	}()
}

// PasteLink takes the URL on the clipboard as the lecture link for the QR
// badge.
func (e *Editor) PasteLink() {
	url, err := clipboard.ReadAll()
	if err != nil {
		e.Status.SetError(fmt.Sprintf("تعذر قراءة الحافظة: %v", err))
		return
	}
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		e.Status.SetError("لا يوجد رابط في الحافظة")
		return
	}
	e.Poster.SetLinkURL(url)
	e.Status.SetInfo("تمت إضافة رمز QR للرابط")
}

// Canvas returns the offscreen logical canvas, created on first use.
func (e *Editor) Canvas() *ebiten.Image {
	if e.canvas == nil {
		e.canvas = ebiten.NewImage(config.CanvasWidth, config.CanvasHeight)
	}
	return e.canvas
}

// PanelView snapshots what the style panel needs this frame.
func (e *Editor) PanelView() ui.PanelView {
	el, ok := e.Selected()
	view := ui.PanelView{
		Element:           el,
		HasElement:        ok,
		EnhanceBusy:       e.enhanceBusy,
		EnhanceConfigured: e.enhancer.Configured(),
	}
	if ok {
		view.FamilyName = defs.FontFamily(el.Family).Name
	}
	return view
}
