package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"PixelLab/internal/config"
	"PixelLab/internal/export"
	"PixelLab/internal/importer"
)

var projectFilter = storage.NewExtensionFileFilter([]string{ProjectExt, ".json"})

// confirmDiscard runs next straight away, or after the user agrees to drop
// unsaved changes.
func (mw *mainWindow) confirmDiscard(next func()) {
	if !mw.editor.Modified() {
		next()
		return
	}
	dialog.ShowConfirm("Unsaved changes", "Discard the changes to "+mw.editor.Title()+"?", func(ok bool) {
		if ok {
			next()
		}
	}, mw.win)
}

func sizeEntry(v int) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.Itoa(v))
	e.Validator = func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > config.MaxCanvasSize {
			return fmt.Errorf("enter a size from 1 to %d", config.MaxCanvasSize)
		}
		return nil
	}
	return e
}

func (mw *mainWindow) newProject() {
	mw.confirmDiscard(func() {
		cw, ch := mw.editor.View.CanvasSize()
		width, height := sizeEntry(cw), sizeEntry(ch)
		items := []*widget.FormItem{
			widget.NewFormItem("Width", width),
			widget.NewFormItem("Height", height),
		}
		dialog.ShowForm("New canvas", "Create", "Cancel", items, func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.Atoi(width.Text)
			h, _ := strconv.Atoi(height.Text)
			if err := mw.editor.New(w, h); err != nil {
				mw.showError(err)
			}
			mw.refresh()
		}, mw.win)
	})
}

func (mw *mainWindow) openProject() {
	mw.confirmDiscard(func() {
		d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil {
				mw.showError(err)
				return
			}
			if r == nil {
				return
			}
			defer r.Close()
			if err := mw.editor.Open(r, r.URI().Path()); err != nil {
				mw.showError(err)
			}
			mw.refresh()
		}, mw.win)
		d.SetFilter(projectFilter)
		d.Show()
	})
}

func (mw *mainWindow) saveProject() {
	if mw.editor.Project() == "" {
		mw.saveProjectAs()
		return
	}
	if err := mw.editor.SaveFile(mw.editor.Project()); err != nil {
		mw.showError(err)
	}
	mw.refresh()
}

func (mw *mainWindow) saveProjectAs() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			mw.showError(err)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()
		if err := mw.editor.Save(w, w.URI().Path()); err != nil {
			mw.showError(err)
		}
		mw.refresh()
	}, mw.win)
	d.SetFileName("untitled" + ProjectExt)
	d.SetFilter(projectFilter)
	d.Show()
}

func (mw *mainWindow) clearCanvas() {
	dialog.ShowConfirm("Clear canvas", "Remove every layer and object?", func(ok bool) {
		if ok {
			mw.run(mw.editor.Clear)()
		}
	}, mw.win)
}

var exportFormats = []string{"PNG", "SVG", "PDF"}

var exportScales = []string{"1", "2", "4", "8", "16", "32", "64"}

func (mw *mainWindow) exportImage() {
	format := widget.NewSelect(exportFormats, nil)
	format.SetSelected(exportFormats[0])
	scale := widget.NewSelect(exportScales, nil)
	scale.SetSelected(exportScales[0])
	items := []*widget.FormItem{
		widget.NewFormItem("Format", format),
		widget.NewFormItem("Scale (PNG)", scale),
	}
	dialog.ShowForm("Export", "Export", "Cancel", items, func(ok bool) {
		if ok {
			n, _ := strconv.Atoi(scale.Selected)
			mw.exportTo(format.Selected, min(max(n, 1), export.MaxScale))
		}
	}, mw.win)
}

func (mw *mainWindow) exportTo(format string, scale int) {
	ext := map[string]string{"PNG": ".png", "SVG": ".svg", "PDF": ".pdf"}[format]
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			mw.showError(err)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()
		switch format {
		case "SVG":
			err = mw.editor.ExportSVG(w)
		case "PDF":
			err = mw.editor.ExportPDF(w)
		default:
			err = mw.editor.ExportPNG(w, scale)
		}
		if err != nil {
			mw.showError(fmt.Errorf("failed to export %s: %w", format, err))
			return
		}
		mw.status.SetText("Exported " + format + ": " + w.URI().Path())
	}, mw.win)
	d.SetFileName("untitled" + ext)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

// importImage traces a bitmap into a group on the current layer. The window
// is held behind a progress dialog until tracing finishes.
func (mw *mainWindow) importImage() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			mw.showError(err)
			return
		}
		if r == nil {
			return
		}
		path := r.URI().Path()
		r.Close()
		mw.trace(path)
	}, mw.win)
	d.SetFilter(storage.NewExtensionFileFilter(importer.Extensions))
	d.Show()
}

func (mw *mainWindow) trace(path string) {
	bar := widget.NewProgressBar()
	wait := dialog.NewCustomWithoutButtons("Importing "+path, bar, mw.win)
	wait.Show()

	done := mw.editor.StartImport(path, func(percent int) {
		fyne.Do(func() { bar.SetValue(float64(percent) / 100) })
	})
	go func() {
		res := <-done
		fyne.Do(func() {
			wait.Hide()
			if err := mw.editor.FinishImport(res, path); err != nil {
				mw.showError(err)
			}
			mw.refresh()
		})
	}()
}
