package ui

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"

	"PixelLab/internal/config"
	"PixelLab/internal/export"
	"PixelLab/internal/importer"
	"PixelLab/internal/raster"
	"PixelLab/internal/state"
	"PixelLab/internal/tools"
	"PixelLab/internal/viewport"
)

// ProjectExt is the extension given to saved projects.
const ProjectExt = ".plb"

// Editor is one editing session: the document, its undo history, the view
// onto it and the tools acting on it. It has no widgets of its own, so every
// action the window offers can be driven directly.
type Editor struct {
	Doc      *state.Manager
	History  *state.History
	View     *viewport.Viewport
	Renderer *viewport.Renderer
	Tools    *tools.Set
	Labels   state.Labeler

	// OnStatus receives a one-line description after each action.
	OnStatus func(string)
	// OnColor is called when the drawing color changes outside the palette,
	// such as from the eyedropper.
	OnColor func(color.NRGBA)

	conf     *config.Config
	project  string
	modified bool
	drawing  bool
	edited   bool
}

// NewEditor starts an empty session sized and tuned by conf.
func NewEditor(conf *config.Config) *Editor {
	palette := state.NewPalette()
	palette.SetHex(conf.Palette)
	if palette.Len() == 0 {
		palette = state.DefaultPalette()
	}

	e := &Editor{
		Doc:     state.NewManager(state.WithPalette(palette)),
		History: state.NewHistory(conf.HistorySize),
		View:    viewport.New(conf.CanvasWidth, conf.CanvasHeight),
		Labels:  state.EnglishLabels,
		conf:    conf,
	}
	e.View.SetZoom(conf.ZoomLevel)
	e.View.ShowGrid = conf.ShowGrid
	e.View.GridMinZoom = conf.GridMinZoom
	e.Renderer = viewport.NewRenderer(e.Doc, e.View)

	first, _ := palette.At(0)
	e.Tools = tools.NewSet(first, e.sample, e.pick)
	e.Tools.SetBrushSize(conf.BrushSize)
	e.Tools.SetEraserSize(conf.EraserSize)
	e.Tools.SetActive(tools.Pencil)

	e.History.Push(e.Doc.Snapshot())
	return e
}

func (e *Editor) sample(x, y int) color.NRGBA {
	return raster.Sample(e.Renderer.Composite(), x, y)
}

func (e *Editor) pick(c color.NRGBA) {
	e.Tools.SetColor(c)
	if e.OnColor != nil {
		e.OnColor(c)
	}
}

func (e *Editor) status(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if e.OnStatus != nil {
		e.OnStatus(msg)
	}
}

// Project returns the path of the open project, or "" when unsaved.
func (e *Editor) Project() string { return e.project }

// Modified reports whether there are unsaved changes.
func (e *Editor) Modified() bool { return e.modified }

// Title is the window title for the session.
func (e *Editor) Title() string {
	name := "Untitled"
	if e.project != "" {
		name = filepath.Base(e.project)
	}
	if e.modified {
		name += "*"
	}
	return "PixelLab - " + name
}

// LastEvent returns the newest activity log entry as text.
func (e *Editor) LastEvent() string {
	ev, ok := e.Doc.Log().Last()
	if !ok {
		return ""
	}
	return e.Labels.Label(ev)
}

// commit records the document as a new undo step.
func (e *Editor) commit() {
	e.History.Push(e.Doc.Snapshot())
	e.modified = true
	e.Renderer.Invalidate()
}

// apply commits when an action reports that it changed the document.
func (e *Editor) apply(changed bool) bool {
	if !changed {
		e.status("Nothing to change")
		return false
	}
	e.commit()
	e.status("%s", e.LastEvent())
	return true
}

func (e *Editor) afterEvent(changed bool) {
	if changed {
		e.edited = true
		e.Renderer.Invalidate()
	}
	e.Renderer.SetPreview(e.Tools.Active().Preview())
}

// Press starts a gesture at screen position (sx, sy). Presses outside the
// canvas are ignored.
func (e *Editor) Press(sx, sy float64) bool {
	x, y := e.View.ScreenToCanvas(sx, sy)
	w, h := e.View.CanvasSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	e.drawing, e.edited = true, false
	e.afterEvent(e.Tools.Active().Press(x, y, e.Doc))
	return true
}

// Drag continues the gesture started by Press.
func (e *Editor) Drag(sx, sy float64) {
	if !e.drawing {
		return
	}
	x, y := e.View.ScreenToCanvas(sx, sy)
	e.afterEvent(e.Tools.Active().Drag(x, y, e.Doc))
}

// Release ends the gesture. A gesture that changed the document becomes one
// undo step.
func (e *Editor) Release(sx, sy float64) {
	if !e.drawing {
		return
	}
	x, y := e.View.ScreenToCanvas(sx, sy)
	e.afterEvent(e.Tools.Active().Release(x, y, e.Doc))
	e.drawing = false
	// Selection changes still need their outlines redrawn.
	e.Renderer.Invalidate()
	if e.edited {
		e.commit()
		e.status("%s", e.LastEvent())
	}
}

// Drawing reports whether a gesture is in progress.
func (e *Editor) Drawing() bool { return e.drawing }

// SelectTool switches the active tool.
func (e *Editor) SelectTool(k tools.Kind) {
	if e.drawing || !e.Tools.SetActive(k) {
		return
	}
	e.Renderer.SetPreview(nil)
	e.status("Tool: %s", k)
}

// SetColor sets the drawing color.
func (e *Editor) SetColor(c color.NRGBA) { e.Tools.SetColor(c) }

// SetToolSize sets the brush and eraser sizes.
func (e *Editor) SetToolSize(n int) {
	e.Tools.SetBrushSize(n)
	e.Tools.SetEraserSize(n)
	e.conf.BrushSize = e.Tools.Get(tools.Brush).(*tools.BrushTool).Size
	e.conf.EraserSize = e.Tools.Get(tools.Eraser).(*tools.EraserTool).Size
}

// SetFilled toggles filled rectangles and circles.
func (e *Editor) SetFilled(filled bool) { e.Tools.SetFilled(filled) }

// Undo steps back one snapshot.
func (e *Editor) Undo() bool {
	s, ok := e.History.Undo()
	if !ok {
		return false
	}
	e.Doc.Restore(s)
	e.modified = true
	e.Renderer.Invalidate()
	e.status("Undo")
	return true
}

// Redo steps forward one snapshot.
func (e *Editor) Redo() bool {
	s, ok := e.History.Redo()
	if !ok {
		return false
	}
	e.Doc.Restore(s)
	e.modified = true
	e.Renderer.Invalidate()
	e.status("Redo")
	return true
}

func (e *Editor) DeleteSelected() bool  { return e.apply(e.Doc.DeleteSelected() > 0) }
func (e *Editor) GroupSelected() bool   { return e.apply(e.Doc.GroupSelected() != nil) }
func (e *Editor) UngroupSelected() bool { return e.apply(e.Doc.UngroupSelected() > 0) }

// RecolorSelected paints the selection in the drawing color.
func (e *Editor) RecolorSelected() bool {
	return e.apply(e.Doc.ChangeSelectedColor(e.Tools.Color()) > 0)
}

func (e *Editor) BringForward() bool { return e.apply(e.Doc.MoveSelectedUp()) }
func (e *Editor) SendBackward() bool { return e.apply(e.Doc.MoveSelectedDown()) }
func (e *Editor) BringToFront() bool { return e.apply(e.Doc.MoveSelectedToFront()) }
func (e *Editor) SendToBack() bool   { return e.apply(e.Doc.MoveSelectedToBack()) }

func (e *Editor) AddLayer() bool { return e.apply(e.Doc.AddLayer("") != nil) }

func (e *Editor) RemoveLayer(i int) bool { return e.apply(e.Doc.RemoveLayer(i)) }

func (e *Editor) RenameLayer(i int, name string) bool {
	return e.apply(e.Doc.RenameLayer(i, name))
}

func (e *Editor) MoveLayer(from, to int) bool { return e.apply(e.Doc.MoveLayer(from, to)) }

func (e *Editor) SetLayerVisible(i int, visible bool) bool {
	if !e.Doc.SetLayerVisible(i, visible) {
		return false
	}
	e.commit()
	if visible {
		e.status("Layer %s shown", e.Doc.Layer(i).Name)
	} else {
		e.status("Layer %s hidden", e.Doc.Layer(i).Name)
	}
	return true
}

func (e *Editor) SetLayerLocked(i int, locked bool) bool {
	if !e.Doc.SetLayerLocked(i, locked) {
		return false
	}
	e.commit()
	if locked {
		e.status("Layer %s locked", e.Doc.Layer(i).Name)
	} else {
		e.status("Layer %s unlocked", e.Doc.Layer(i).Name)
	}
	return true
}

// SetCurrentLayer makes layer i the one new objects go to. It is not an
// undo step.
func (e *Editor) SetCurrentLayer(i int) bool {
	if !e.Doc.SetCurrentLayer(i) {
		return false
	}
	e.status("Layer: %s", e.Doc.CurrentLayer().Name)
	return true
}

// Clear empties the document, keeping the canvas size.
func (e *Editor) Clear() {
	e.Doc.Clear()
	e.apply(true)
}

// ToggleGrid shows or hides the cell grid.
func (e *Editor) ToggleGrid() {
	e.View.ShowGrid = !e.View.ShowGrid
	e.conf.ShowGrid = e.View.ShowGrid
	e.Renderer.Invalidate()
	if e.View.ShowGrid {
		e.status("Grid shown")
	} else {
		e.status("Grid hidden")
	}
}

// ZoomAt zooms by one wheel step about a screen position. A positive delta
// zooms in.
func (e *Editor) ZoomAt(delta, sx, sy float64) bool {
	factor := viewport.ZoomStep
	if delta < 0 {
		factor = viewport.ZoomOutStep
	}
	if !e.View.ZoomAt(factor, sx, sy) {
		return false
	}
	e.conf.ZoomLevel = e.View.Zoom()
	return true
}

func (e *Editor) ZoomIn() bool {
	ok := e.View.ZoomIn()
	e.conf.ZoomLevel = e.View.Zoom()
	return ok
}

func (e *Editor) ZoomOut() bool {
	ok := e.View.ZoomOut()
	e.conf.ZoomLevel = e.View.Zoom()
	return ok
}

func (e *Editor) ResetZoom() {
	e.View.ResetZoom()
	e.conf.ZoomLevel = e.View.Zoom()
}

// New replaces the session with an empty canvas of w by h cells.
func (e *Editor) New(w, h int) error {
	if w < 1 || h < 1 || w > config.MaxCanvasSize || h > config.MaxCanvasSize {
		return fmt.Errorf("canvas size %dx%d out of range 1..%d", w, h, config.MaxCanvasSize)
	}
	e.Doc.Clear()
	e.View.SetCanvasSize(w, h)
	e.conf.CanvasWidth, e.conf.CanvasHeight = w, h
	e.reset("")
	e.status("New canvas created: %dx%d", w, h)
	return nil
}

func (e *Editor) reset(project string) {
	e.History.Reset()
	e.History.Push(e.Doc.Snapshot())
	e.project = project
	e.modified = false
	e.drawing = false
	e.Renderer.SetPreview(nil)
	e.Renderer.Invalidate()
}

// Open loads a project from r. name is remembered as the project path.
func (e *Editor) Open(r io.Reader, name string) error {
	d, err := state.DecodeDocument(r)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filepath.Base(name), err)
	}
	if err := e.Doc.Load(d); err != nil {
		return fmt.Errorf("failed to open %s: %w", filepath.Base(name), err)
	}
	e.View.SetCanvasSize(d.Width, d.Height)
	e.reset(name)
	e.conf.LastProject = name
	e.status("Opened: %s", name)
	return nil
}

// OpenFile loads the project stored at path.
func (e *Editor) OpenFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open project: %w", err)
	}
	defer f.Close()
	return e.Open(f, path)
}

// Save writes the project to w and remembers name as its path.
func (e *Editor) Save(w io.Writer, name string) error {
	cw, ch := e.View.CanvasSize()
	if err := e.Doc.Document(cw, ch).Encode(w); err != nil {
		return fmt.Errorf("failed to save %s: %w", filepath.Base(name), err)
	}
	e.project = name
	e.modified = false
	e.conf.LastProject = name
	e.status("Saved: %s", name)
	log.Printf("[UI] saved %s", name)
	return nil
}

// SaveFile writes the project to path.
func (e *Editor) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to save project: %w", cerr)
		}
	}()
	return e.Save(f, path)
}

// ExportPNG writes the canvas to w, each cell scale pixels wide.
func (e *Editor) ExportPNG(w io.Writer, scale int) error {
	return export.PNG(w, e.Renderer.Composite(), scale)
}

func (e *Editor) ExportSVG(w io.Writer) error {
	return export.SVG(w, e.Renderer.Composite())
}

func (e *Editor) ExportPDF(w io.Writer) error {
	return export.PDF(w, e.Renderer.Composite())
}

// StartImport traces the image at path in the background, fitted to the
// canvas. The result must be handed to FinishImport on the UI goroutine.
func (e *Editor) StartImport(path string, progress importer.Progress) <-chan importer.Result {
	w, h := e.View.CanvasSize()
	return importer.Start(path, w, h, progress)
}

// FinishImport adds a traced image to the current layer.
func (e *Editor) FinishImport(res importer.Result, path string) error {
	if res.Err != nil {
		return fmt.Errorf("failed to import %s: %w", filepath.Base(path), res.Err)
	}
	if !e.apply(e.Doc.AddImported(res.Group, filepath.Base(path))) {
		return fmt.Errorf("failed to import %s: layer %q is locked", filepath.Base(path), e.Doc.CurrentLayer().Name)
	}
	return nil
}
