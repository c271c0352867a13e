package models

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"film-catalog/internal/logger"
)

// TableMode says whether rows are being replaced programmatically.
type TableMode int

const (
	ModeIdle TableMode = iota
	ModeRepopulating
)

func (m TableMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeRepopulating:
		return "repopulating"
	default:
		return fmt.Sprintf("TableMode(%d)", int(m))
	}
}

// RecordUpdater is the store call a committed cell edit turns into.
type RecordUpdater interface {
	Update(ctx context.Context, id int64, input FilmInput) error
}

// TableModel is the text projection of the records currently shown in the
// grid. Cell edits coming from the grid are written back through the
// updater unless the model is repopulating.
type TableModel struct {
	mu        sync.RWMutex
	rows      [][]string
	committed [][]string
	mode      TableMode

	updater       RecordUpdater
	logger        logger.Logger
	onRepopulated func()
}

func NewTableModel(updater RecordUpdater, log logger.Logger) *TableModel {
	return &TableModel{
		updater: updater,
		logger:  log,
		mode:    ModeIdle,
	}
}

// SetRepopulatedHandler registers the redraw hook. It runs while the model
// is still repopulating so redraw-triggered cell callbacks are ignored.
func (m *TableModel) SetRepopulatedHandler(handler func()) {
	m.onRepopulated = handler
}

func (m *TableModel) Mode() TableMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// enterMode switches mode and returns the func that restores the previous one.
func (m *TableModel) enterMode(mode TableMode) func() {
	m.mu.Lock()
	prev := m.mode
	m.mode = mode
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		m.mode = prev
		m.mu.Unlock()
	}
}

// Refresh replaces every displayed row with the given records.
func (m *TableModel) Refresh(records []FilmRecord) {
	release := m.enterMode(ModeRepopulating)
	defer release()

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Cells())
	}

	m.mu.Lock()
	m.rows = rows
	m.committed = cloneRows(rows)
	m.mu.Unlock()

	m.logger.Debug("TableModel", "rows repopulated", map[string]interface{}{
		"rows": len(rows),
	})

	if m.onRepopulated != nil {
		m.onRepopulated()
	}
}

func (m *TableModel) RowCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows)
}

// Cell returns the displayed text; ok is false for cells that do not exist.
func (m *TableModel) Cell(row, col int) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.rows[row]) {
		return "", false
	}
	return m.rows[row][col], true
}

// Rows returns a copy of the displayed rows in display order.
func (m *TableModel) Rows() [][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneRows(m.rows)
}

func (m *TableModel) IDAt(row int) (int64, error) {
	text, ok := m.Cell(row, ColumnID)
	if !ok {
		return 0, fmt.Errorf("row %d: %w", row, ErrCellOutOfRange)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, ParseError{Value: text, Err: err}
	}
	return id, nil
}

// SetCell changes displayed text only; OnCellEdited decides whether it is
// written to the store.
func (m *TableModel) SetCell(row, col int, text string) error {
	if col == ColumnID {
		return ErrReadOnlyColumn
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.rows[row]) {
		return fmt.Errorf("cell %d,%d: %w", row, col, ErrCellOutOfRange)
	}
	m.rows[row][col] = text
	return nil
}

// OnCellEdited writes the whole row containing the edited cell back to the
// store. A failed edit restores the row to its last committed values.
func (m *TableModel) OnCellEdited(ctx context.Context, row, col int) error {
	m.mu.RLock()
	if m.mode == ModeRepopulating {
		m.mu.RUnlock()
		return nil
	}
	if row < 0 || row >= len(m.rows) || len(m.rows[row]) < ColumnCount {
		m.mu.RUnlock()
		return nil
	}
	cells := append([]string(nil), m.rows[row]...)
	m.mu.RUnlock()

	id, err := strconv.ParseInt(strings.TrimSpace(cells[ColumnID]), 10, 64)
	if err != nil {
		m.revert(row)
		return UpdateError{Row: row, Err: ParseError{Value: cells[ColumnID], Err: err}}
	}

	input := FilmInput{
		Title:    cells[ColumnTitle],
		Director: cells[ColumnDirector],
		Year:     cells[ColumnYear],
	}.Normalize()
	if err := input.Validate(); err != nil {
		m.revert(row)
		m.logger.Debug("TableModel", "cell edit rejected", map[string]interface{}{
			"row":    row,
			"column": col,
			"reason": err.Error(),
		})
		return err
	}

	if err := m.updater.Update(ctx, id, input); err != nil {
		m.revert(row)
		return UpdateError{Row: row, Err: err}
	}

	m.commit(row, FilmRecord{ID: id, Title: input.Title, Director: input.Director, Year: input.Year})
	m.logger.Info("TableModel", "row written back", map[string]interface{}{
		"id":     id,
		"column": ColumnHeaders[col],
	})
	return nil
}

// EditCell is the grid's commit path: display the new text, then write back.
func (m *TableModel) EditCell(ctx context.Context, row, col int, text string) error {
	if err := m.SetCell(row, col, text); err != nil {
		return err
	}
	return m.OnCellEdited(ctx, row, col)
}

func (m *TableModel) revert(row int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row < len(m.committed) && row < len(m.rows) {
		m.rows[row] = append([]string(nil), m.committed[row]...)
	}
}

func (m *TableModel) commit(row int, record FilmRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row < len(m.rows) {
		m.rows[row] = record.Cells()
	}
	if row < len(m.committed) {
		m.committed[row] = record.Cells()
	}
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}
