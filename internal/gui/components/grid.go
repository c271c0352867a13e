package components

import (
	"film-catalog/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// RowSource is the text the grid displays.
type RowSource interface {
	RowCount() int
	Cell(row, col int) (string, bool)
}

var gridColumnWidths = []float32{60, 260, 200, 90}

// FilmGrid is the editable table of displayed records. The id column is
// read-only; other cells commit on Enter or when they lose focus.
type FilmGrid struct {
	table  *widget.Table
	source RowSource

	selectedRow int
	hasSelected bool

	commitHandler   func(row, col int, text string)
	selectedHandler func(row int)
}

func NewFilmGrid(source RowSource) *FilmGrid {
	g := &FilmGrid{source: source}

	g.table = widget.NewTableWithHeaders(g.size, g.createCell, g.updateCell)
	g.table.ShowHeaderColumn = false
	g.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabel("Director")
	}
	g.table.UpdateHeader = func(id widget.TableCellID, template fyne.CanvasObject) {
		label := template.(*widget.Label)
		if id.Col >= 0 && id.Col < len(models.ColumnHeaders) {
			label.TextStyle = fyne.TextStyle{Bold: true}
			label.SetText(models.ColumnHeaders[id.Col])
		}
	}
	g.table.OnSelected = g.onSelected

	for col, w := range gridColumnWidths {
		g.table.SetColumnWidth(col, w)
	}
	return g
}

func (g *FilmGrid) Widget() *widget.Table {
	return g.table
}

func (g *FilmGrid) SetCommitHandler(handler func(row, col int, text string)) {
	g.commitHandler = handler
}

func (g *FilmGrid) SetRowSelectedHandler(handler func(row int)) {
	g.selectedHandler = handler
}

// SelectedRow returns the row of the last selected cell.
func (g *FilmGrid) SelectedRow() (int, bool) {
	if !g.hasSelected || g.selectedRow >= g.source.RowCount() {
		return 0, false
	}
	return g.selectedRow, true
}

func (g *FilmGrid) ClearSelection() {
	g.hasSelected = false
	g.table.UnselectAll()
}

func (g *FilmGrid) Refresh() {
	g.table.Refresh()
}

func (g *FilmGrid) size() (int, int) {
	return g.source.RowCount(), models.ColumnCount
}

func (g *FilmGrid) createCell() fyne.CanvasObject {
	return newCellEntry(g.commit, g.selectCell)
}

func (g *FilmGrid) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	cell := obj.(*cellEntry)
	text, _ := g.source.Cell(id.Row, id.Col)
	cell.bind(id.Row, id.Col, text)
	if id.Col == models.ColumnID {
		cell.Disable()
	} else {
		cell.Enable()
	}
}

func (g *FilmGrid) commit(row, col int, text string) {
	if g.commitHandler != nil {
		g.commitHandler(row, col, text)
	}
}

// selectCell routes clicks and focus on a cell entry into the table
// selection, since the entry receives the tap instead of the table.
func (g *FilmGrid) selectCell(row, col int) {
	if g.hasSelected && g.selectedRow == row {
		return
	}
	g.table.Select(widget.TableCellID{Row: row, Col: col})
}

func (g *FilmGrid) onSelected(id widget.TableCellID) {
	g.selectedRow = id.Row
	g.hasSelected = true
	if g.selectedHandler != nil {
		g.selectedHandler(id.Row)
	}
}

// cellEntry is a recycled table cell; bind points it at a new cell.
type cellEntry struct {
	widget.Entry

	row, col int
	shown    string
	onCommit func(row, col int, text string)
	onSelect func(row, col int)
}

func newCellEntry(onCommit func(row, col int, text string), onSelect func(row, col int)) *cellEntry {
	e := &cellEntry{onCommit: onCommit, onSelect: onSelect}
	e.ExtendBaseWidget(e)
	e.OnSubmitted = func(string) { e.commit() }
	return e
}

func (e *cellEntry) bind(row, col int, text string) {
	e.row, e.col = row, col
	e.shown = text
	e.SetText(text)
}

// Tapped also covers the disabled id cell, which never takes focus.
func (e *cellEntry) Tapped(ev *fyne.PointEvent) {
	e.Entry.Tapped(ev)
	e.selected()
}

func (e *cellEntry) FocusGained() {
	e.Entry.FocusGained()
	e.selected()
}

func (e *cellEntry) selected() {
	if e.onSelect != nil {
		e.onSelect(e.row, e.col)
	}
}

func (e *cellEntry) FocusLost() {
	e.Entry.FocusLost()
	e.commit()
}

// commit reports the text only when it differs from what was bound.
func (e *cellEntry) commit() {
	if e.Disabled() || e.Text == e.shown {
		return
	}
	e.shown = e.Text
	if e.onCommit != nil {
		e.onCommit(e.row, e.col, e.Text)
	}
}
