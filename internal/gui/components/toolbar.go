package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type Toolbar struct {
	container    *fyne.Container
	SaveButton   *widget.Button
	NewButton    *widget.Button
	ExportButton *widget.Button
	DeleteButton *widget.Button

	saveHandler   func()
	newHandler    func()
	exportHandler func()
	deleteHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	t.SaveButton = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), t.onSave)
	t.SaveButton.Importance = widget.HighImportance
	t.NewButton = widget.NewButtonWithIcon("New", theme.ContentAddIcon(), t.onNew)
	t.ExportButton = widget.NewButtonWithIcon("Export CSV", theme.DownloadIcon(), t.onExport)
	t.DeleteButton = widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), t.onDelete)
	t.DeleteButton.Importance = widget.DangerImportance

	t.container = container.NewHBox(
		t.SaveButton,
		t.NewButton,
		widget.NewSeparator(),
		t.ExportButton,
		layout.NewSpacer(),
		t.DeleteButton,
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

func (t *Toolbar) SetNewHandler(handler func()) {
	t.newHandler = handler
}

func (t *Toolbar) SetExportHandler(handler func()) {
	t.exportHandler = handler
}

func (t *Toolbar) SetDeleteHandler(handler func()) {
	t.deleteHandler = handler
}

func (t *Toolbar) onSave() {
	if t.saveHandler != nil {
		t.saveHandler()
	}
}

func (t *Toolbar) onNew() {
	if t.newHandler != nil {
		t.newHandler()
	}
}

func (t *Toolbar) onExport() {
	if t.exportHandler != nil {
		t.exportHandler()
	}
}

func (t *Toolbar) onDelete() {
	if t.deleteHandler != nil {
		t.deleteHandler()
	}
}
