package gui

import (
	"film-catalog/internal/gui/components"
	"film-catalog/internal/logger"
	"film-catalog/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

const (
	ExportFileName = "film.csv"
	helpPanelShare = 0.72
)

// Manager owns the widgets of the main window and exposes them to the
// application handlers through setters and small update methods.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	form      *components.FilmForm
	toolbar   *components.Toolbar
	search    *components.SearchBar
	grid      *components.FilmGrid
	help      *components.HelpPanel
	statusBar *components.StatusBar
}

func NewManager(window fyne.Window, rows components.RowSource, log logger.Logger) *Manager {
	m := &Manager{
		window:    window,
		logger:    log,
		form:      components.NewFilmForm(),
		toolbar:   components.NewToolbar(),
		search:    components.NewSearchBar(),
		grid:      components.NewFilmGrid(rows),
		help:      components.NewHelpPanel(),
		statusBar: components.NewStatusBar(),
	}

	log.Info("GUIManager", "initialized", nil)
	return m
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	top := container.NewVBox(
		m.form.GetContainer(),
		m.toolbar.GetContainer(),
		m.search.GetContainer(),
	)

	split := container.NewHSplit(m.grid.Widget(), m.help.GetContainer())
	split.Offset = helpPanelShare

	return container.NewBorder(top, m.statusBar.GetContainer(), nil, nil, split)
}

func (m *Manager) SetSaveHandler(handler func()) {
	m.toolbar.SetSaveHandler(handler)
	m.form.SetSubmitHandler(handler)
}

func (m *Manager) SetNewHandler(handler func()) {
	m.toolbar.SetNewHandler(handler)
}

func (m *Manager) SetExportHandler(handler func()) {
	m.toolbar.SetExportHandler(handler)
}

func (m *Manager) SetDeleteHandler(handler func()) {
	m.toolbar.SetDeleteHandler(handler)
}

func (m *Manager) SetPasteHandler(handler func()) {
	m.form.SetPasteHandler(handler)
}

func (m *Manager) SetSearchHandler(handler func(string)) {
	m.search.SetQueryHandler(func(query string) {
		m.logger.Debug("GUIManager", "search changed", map[string]interface{}{
			"query": query,
		})
		handler(query)
	})
}

func (m *Manager) SetCellCommitHandler(handler func(row, col int, text string)) {
	m.grid.SetCommitHandler(handler)
}

func (m *Manager) SetRowSelectedHandler(handler func(row int)) {
	m.grid.SetRowSelectedHandler(handler)
}

func (m *Manager) FormInput() models.FilmInput {
	title, director, year := m.form.Values()
	return models.FilmInput{Title: title, Director: director, Year: year}
}

// SetFormInput replaces the field values without changing the edit mode.
func (m *Manager) SetFormInput(input models.FilmInput) {
	m.form.SetValues(input.Title, input.Director, input.Year)
}

// LoadRecord fills the form with record and marks it as being edited.
func (m *Manager) LoadRecord(record models.FilmRecord) {
	m.SetFormInput(record.Input())
	m.form.SetEditing(record.ID, true)
}

func (m *Manager) ClearForm() {
	m.form.Clear()
}

func (m *Manager) SetFormEditing(id int64, editing bool) {
	m.form.SetEditing(id, editing)
}

func (m *Manager) SetFormTitle(title string) {
	m.form.SetTitle(title)
}

func (m *Manager) RefreshGrid() {
	m.grid.Refresh()
}

func (m *Manager) SelectedRow() (int, bool) {
	return m.grid.SelectedRow()
}

func (m *Manager) ClearSelection() {
	m.grid.ClearSelection()
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) StatusText() string {
	return m.statusBar.Status()
}

func (m *Manager) UpdateCounts(shown, total int) {
	m.statusBar.SetCounts(shown, total)
}

// ClipboardText returns the current clipboard content, empty if unavailable.
func (m *Manager) ClipboardText() string {
	cb := m.window.Clipboard()
	if cb == nil {
		return ""
	}
	return cb.Content()
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, m.window)
}

func (m *Manager) ShowWarning(title, message string) {
	m.logger.Warning("GUIManager", message, map[string]interface{}{
		"title": title,
	})
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) Confirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, m.window)
}

func (m *Manager) ShowExportDialog(callback func(fyne.URIWriteCloser, error)) {
	d := dialog.NewFileSave(callback, m.window)
	d.SetFileName(ExportFileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	d.Show()
}

func (m *Manager) SetupMenus(onExport, onQuit, onAbout func()) {
	quit := fyne.NewMenuItem("Quit", onQuit)
	quit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export CSV...", onExport),
		fyne.NewMenuItemSeparator(),
		quit,
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", onAbout),
	)
	m.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
