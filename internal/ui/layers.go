package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// layerRow is one line of the layer list.
type layerRow struct {
	widget.BaseWidget
	name    *widget.Label
	visible *widget.Check
	locked  *widget.Check
}

func newLayerRow() *layerRow {
	r := &layerRow{
		name:    widget.NewLabel(""),
		visible: widget.NewCheck("Show", nil),
		locked:  widget.NewCheck("Lock", nil),
	}
	r.ExtendBaseWidget(r)
	return r
}

func (r *layerRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, container.NewHBox(r.visible, r.locked), r.name))
}

// set shows a layer without firing the check callbacks.
func (r *layerRow) set(name string, visible, locked bool, onVisible, onLocked func(bool)) {
	r.name.SetText(name)
	r.visible.OnChanged = nil
	r.visible.SetChecked(visible)
	r.visible.OnChanged = onVisible
	r.locked.OnChanged = nil
	r.locked.SetChecked(locked)
	r.locked.OnChanged = onLocked
}

// layerPanel lists the layers top first, with the activity log below.
type layerPanel struct {
	mw      *mainWindow
	list    *widget.List
	events  *widget.List
	content fyne.CanvasObject
}

func newLayerPanel(mw *mainWindow) *layerPanel {
	p := &layerPanel{mw: mw}
	ed := mw.editor

	p.list = widget.NewList(
		func() int { return ed.Doc.LayerCount() },
		func() fyne.CanvasObject { return newLayerRow() },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			i := p.layerIndex(id)
			l := ed.Doc.Layer(i)
			if l == nil {
				return
			}
			o.(*layerRow).set(l.Name, l.Visible, l.Locked,
				func(on bool) { mw.run(func() { ed.SetLayerVisible(i, on) })() },
				func(on bool) { mw.run(func() { ed.SetLayerLocked(i, on) })() },
			)
		},
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		if i := p.layerIndex(id); i != ed.Doc.CurrentLayerIndex() {
			ed.SetCurrentLayer(i)
		}
	}

	p.events = widget.NewList(
		func() int { return ed.Doc.Log().Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			entries := ed.Doc.Log().Entries()
			if id < len(entries) {
				e := entries[id]
				o.(*widget.Label).SetText(e.Time.Format("15:04:05") + "  " + ed.Labels.Label(e))
			}
		},
	)

	buttons := container.NewHBox(
		widget.NewButtonWithIcon("", theme.ContentAddIcon(), mw.run(func() { ed.AddLayer() })),
		widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), mw.run(func() {
			ed.RemoveLayer(ed.Doc.CurrentLayerIndex())
		})),
		widget.NewButtonWithIcon("", theme.MoveUpIcon(), mw.run(func() {
			cur := ed.Doc.CurrentLayerIndex()
			ed.MoveLayer(cur, cur+1)
		})),
		widget.NewButtonWithIcon("", theme.MoveDownIcon(), mw.run(func() {
			cur := ed.Doc.CurrentLayerIndex()
			ed.MoveLayer(cur, cur-1)
		})),
		widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), p.rename),
	)

	layers := container.NewBorder(container.NewVBox(widget.NewLabel("Layers"), buttons), nil, nil, nil, p.list)
	activity := container.NewBorder(widget.NewLabel("Activity"), nil, nil, nil, p.events)
	split := container.NewVSplit(layers, activity)
	split.Offset = 0.6
	p.content = split
	return p
}

// layerIndex maps a list row to a layer index; the top layer is row 0.
func (p *layerPanel) layerIndex(id widget.ListItemID) int {
	return p.mw.editor.Doc.LayerCount() - 1 - id
}

func (p *layerPanel) refresh() {
	p.list.Refresh()
	p.list.Select(p.layerIndex(p.mw.editor.Doc.CurrentLayerIndex()))
	p.events.Refresh()
	p.events.ScrollToBottom()
}

func (p *layerPanel) rename() {
	ed := p.mw.editor
	i := ed.Doc.CurrentLayerIndex()
	entry := widget.NewEntry()
	entry.SetText(ed.Doc.CurrentLayer().Name)
	items := []*widget.FormItem{widget.NewFormItem("Name", entry)}
	dialog.ShowForm("Rename layer", "Rename", "Cancel", items, func(ok bool) {
		if ok {
			p.mw.run(func() { ed.RenameLayer(i, entry.Text) })()
		}
	}, p.mw.win)
}
