package ui

import (
	"image/color"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PixelLab/internal/tools"
)

// colorSwatch is a tappable palette entry.
type colorSwatch struct {
	widget.BaseWidget
	Color             color.NRGBA
	OnTapped          func(color.NRGBA)
	OnTappedSecondary func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// TappedSecondary removes the swatch from the palette.
func (s *colorSwatch) TappedSecondary(_ *fyne.PointEvent) {
	if s.OnTappedSecondary != nil {
		s.OnTappedSecondary(s.Color)
	}
}

// toolbar is the strip above the board: file and view actions, the tool
// picker with its options, the palette and the selection actions.
type toolbar struct {
	mw      *mainWindow
	content fyne.CanvasObject

	tool     *widget.Select
	size     *widget.Slider
	filled   *widget.Check
	current  *canvas.Rectangle
	swatches *fyne.Container
	shown    []string
}

func toolNames() []string {
	names := make([]string, len(tools.Kinds))
	for i, k := range tools.Kinds {
		names[i] = k.String()
	}
	return names
}

func newToolbar(mw *mainWindow) *toolbar {
	ed := mw.editor
	tb := &toolbar{mw: mw, swatches: container.NewHBox()}

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), mw.newProject),
		widget.NewToolbarAction(theme.FolderOpenIcon(), mw.openProject),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), mw.saveProject),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FileImageIcon(), mw.importImage),
		widget.NewToolbarAction(theme.DownloadIcon(), mw.exportImage),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), mw.run(func() { ed.Undo() })),
		widget.NewToolbarAction(theme.ContentRedoIcon(), mw.run(func() { ed.Redo() })),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomInIcon(), mw.run(func() { ed.ZoomIn() })),
		widget.NewToolbarAction(theme.ZoomOutIcon(), mw.run(func() { ed.ZoomOut() })),
		widget.NewToolbarAction(theme.ZoomFitIcon(), mw.run(ed.ResetZoom)),
		widget.NewToolbarAction(theme.GridIcon(), mw.run(ed.ToggleGrid)),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), mw.clearCanvas),
	)

	tb.tool = widget.NewSelect(toolNames(), func(name string) {
		if k, ok := tools.ParseKind(name); ok && k != ed.Tools.ActiveKind() {
			mw.run(func() { ed.SelectTool(k) })()
		}
	})
	tb.tool.SetSelected(ed.Tools.ActiveKind().String())

	brush := ed.Tools.Get(tools.Brush).(*tools.BrushTool)
	tb.size = widget.NewSlider(tools.MinBrushSize, tools.MaxBrushSize)
	tb.size.Step = 1
	tb.size.SetValue(float64(brush.Size))
	tb.size.OnChanged = func(val float64) {
		ed.SetToolSize(int(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), tb.size)

	tb.filled = widget.NewCheck("Filled", ed.SetFilled)

	tb.current = canvas.NewRectangle(ed.Tools.Color())
	tb.current.SetMinSize(fyne.NewSize(32, 32))
	tb.current.StrokeColor = color.Gray{Y: 150}
	tb.current.StrokeWidth = 1
	addColor := widget.NewButtonWithIcon("", theme.ContentAddIcon(), mw.run(func() {
		ed.Doc.Palette().Add(ed.Tools.Color())
	}))

	edit := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), mw.run(func() { ed.DeleteSelected() })),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), mw.run(func() { ed.RecolorSelected() })),
		widget.NewToolbarAction(theme.MoveUpIcon(), mw.run(func() { ed.BringForward() })),
		widget.NewToolbarAction(theme.MoveDownIcon(), mw.run(func() { ed.SendBackward() })),
	)
	group := widget.NewButton("Group", mw.run(func() { ed.GroupSelected() }))
	ungroup := widget.NewButton("Ungroup", mw.run(func() { ed.UngroupSelected() }))
	front := widget.NewButton("Front", mw.run(func() { ed.BringToFront() }))
	back := widget.NewButton("Back", mw.run(func() { ed.SendToBack() }))

	top := container.NewHBox(
		actions,
		widget.NewSeparator(),
		widget.NewLabel("Tool:"),
		tb.tool,
		widget.NewLabel("Size:"),
		sliderContainer,
		tb.filled,
		layout.NewSpacer(),
	)
	bottom := container.NewHBox(
		widget.NewLabel("Color:"),
		tb.current,
		tb.swatches,
		addColor,
		layout.NewSpacer(),
		widget.NewLabel("Selection:"),
		edit,
		group,
		ungroup,
		front,
		back,
	)
	tb.content = container.NewVBox(top, bottom)
	tb.refresh()
	return tb
}

// refresh rebuilds the swatches when the palette changed and shows the
// active tool and color.
func (tb *toolbar) refresh() {
	ed := tb.mw.editor
	tb.tool.SetSelected(ed.Tools.ActiveKind().String())
	tb.showColor(ed.Tools.Color())

	palette := ed.Doc.Palette()
	if hex := palette.Hex(); !slices.Equal(hex, tb.shown) {
		tb.shown = hex
		tb.swatches.RemoveAll()
		for i, c := range palette.Colors() {
			i := i
			s := newColorSwatch(c, tb.pickColor)
			s.OnTappedSecondary = func(color.NRGBA) {
				tb.mw.run(func() { ed.Doc.Palette().Remove(i) })()
			}
			tb.swatches.Add(s)
		}
	}
}

func (tb *toolbar) pickColor(c color.NRGBA) {
	tb.mw.editor.SetColor(c)
	tb.showColor(c)
}

func (tb *toolbar) showColor(c color.NRGBA) {
	if tb.current.FillColor == color.Color(c) {
		return
	}
	tb.current.FillColor = c
	tb.current.Refresh()
}
