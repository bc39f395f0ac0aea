package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"PixelLab/internal/config"
	"PixelLab/internal/tools"
)

// mainWindow wires an Editor to its window: board, toolbar, layer panel
// and status bar.
type mainWindow struct {
	win      fyne.Window
	editor   *Editor
	board    *BoardWidget
	toolbar  *toolbar
	layers   *layerPanel
	status   *widget.Label
	position *widget.Label

	conf     *config.Config
	confPath string
}

func newMainWindow(a fyne.App, conf *config.Config, confPath string) *mainWindow {
	mw := &mainWindow{
		win:      a.NewWindow("PixelLab"),
		editor:   NewEditor(conf),
		status:   widget.NewLabel("Ready"),
		position: widget.NewLabel(""),
		conf:     conf,
		confPath: confPath,
	}
	mw.win.Resize(fyne.NewSize(1280, 800))

	mw.board = NewBoardWidget(mw.editor)
	mw.board.OnChanged = func() {
		// Mid-gesture only the board changes.
		if !mw.editor.Drawing() {
			mw.refresh()
		}
	}
	mw.board.OnHover = func(x, y int, ok bool) {
		if ok {
			mw.position.SetText(fmt.Sprintf("(%d, %d)", x, y))
		} else {
			mw.position.SetText("")
		}
	}
	mw.editor.OnStatus = mw.status.SetText
	mw.editor.OnColor = func(c color.NRGBA) { mw.toolbar.showColor(c) }

	mw.toolbar = newToolbar(mw)
	mw.layers = newLayerPanel(mw)

	statusBar := container.NewHBox(mw.status, layout.NewSpacer(), mw.position)
	split := container.NewHSplit(mw.board, mw.layers.content)
	split.Offset = 0.8
	mw.win.SetContent(container.NewBorder(mw.toolbar.content, statusBar, nil, nil, split))

	mw.bindKeys()
	mw.win.SetCloseIntercept(mw.quit)
	mw.refresh()
	return mw
}

// refresh brings every view in line with the editor.
func (mw *mainWindow) refresh() {
	mw.win.SetTitle(mw.editor.Title())
	mw.board.raster.Refresh()
	mw.layers.refresh()
	mw.toolbar.refresh()
}

// run performs an editor action from a key or button and refreshes.
func (mw *mainWindow) run(action func()) func() {
	return func() {
		if mw.editor.Drawing() {
			return
		}
		action()
		mw.refresh()
	}
}

func (mw *mainWindow) showError(err error) {
	log.Printf("[UI] %v", err)
	mw.status.SetText(err.Error())
	dialog.ShowError(err, mw.win)
}

var toolKeys = map[rune]tools.Kind{
	's': tools.Select,
	'p': tools.Pencil,
	'b': tools.Brush,
	'e': tools.Eraser,
	'l': tools.Line,
	'r': tools.Rectangle,
	'c': tools.Circle,
	'f': tools.Fill,
	'i': tools.Eyedropper,
}

func (mw *mainWindow) bindKeys() {
	c := mw.win.Canvas()
	shortcut := func(key fyne.KeyName, mod fyne.KeyModifier, action func()) {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: mod}, func(fyne.Shortcut) { action() })
	}
	ctrl := fyne.KeyModifierShortcutDefault
	shortcut(fyne.KeyN, ctrl, mw.newProject)
	shortcut(fyne.KeyO, ctrl, mw.openProject)
	shortcut(fyne.KeyS, ctrl, mw.saveProject)
	shortcut(fyne.KeyS, ctrl|fyne.KeyModifierShift, mw.saveProjectAs)
	shortcut(fyne.KeyZ, ctrl, mw.run(func() { mw.editor.Undo() }))
	shortcut(fyne.KeyY, ctrl, mw.run(func() { mw.editor.Redo() }))
	shortcut(fyne.KeyG, ctrl, mw.run(func() { mw.editor.GroupSelected() }))
	shortcut(fyne.KeyG, ctrl|fyne.KeyModifierShift, mw.run(func() { mw.editor.UngroupSelected() }))
	shortcut(fyne.KeyEqual, ctrl, mw.run(func() { mw.editor.ZoomIn() }))
	shortcut(fyne.KeyMinus, ctrl, mw.run(func() { mw.editor.ZoomOut() }))
	shortcut(fyne.Key0, ctrl, mw.run(mw.editor.ResetZoom))

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			mw.run(func() { mw.editor.DeleteSelected() })()
		case fyne.KeyPageUp:
			mw.run(func() { mw.editor.BringForward() })()
		case fyne.KeyPageDown:
			mw.run(func() { mw.editor.SendBackward() })()
		case fyne.KeyHome:
			mw.run(func() { mw.editor.BringToFront() })()
		case fyne.KeyEnd:
			mw.run(func() { mw.editor.SendToBack() })()
		}
	})
	c.SetOnTypedRune(func(r rune) {
		if k, ok := toolKeys[r]; ok {
			mw.run(func() { mw.editor.SelectTool(k) })()
			return
		}
		if r == 'g' {
			mw.run(mw.editor.ToggleGrid)()
		}
	})
}

func (mw *mainWindow) quit() {
	if !mw.editor.Modified() {
		mw.close()
		return
	}
	dialog.ShowConfirm("Unsaved changes", "Quit without saving?", func(ok bool) {
		if ok {
			mw.close()
		}
	}, mw.win)
}

func (mw *mainWindow) close() {
	mw.conf.Palette = mw.editor.Doc.Palette().Hex()
	if err := config.Save(mw.confPath, mw.conf); err != nil {
		log.Printf("[UI] %v", err)
	}
	mw.win.Close()
}

// RunApp opens the editor window and blocks until it is closed. The last
// project named in conf is reopened when it still loads.
func RunApp(conf *config.Config, confPath string) {
	a := app.New()
	mw := newMainWindow(a, conf, confPath)
	if conf.LastProject != "" {
		if err := mw.editor.OpenFile(conf.LastProject); err != nil {
			log.Printf("[UI] not reopening last project: %v", err)
			conf.LastProject = ""
		}
		mw.refresh()
	}
	mw.win.ShowAndRun()
}
