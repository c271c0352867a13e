package app

import (
	"context"
	"errors"
	"fmt"

	"film-catalog/internal/controllers"
	"film-catalog/internal/gui"
	"film-catalog/internal/logger"
	"film-catalog/internal/models"
	"film-catalog/internal/services"

	"fyne.io/fyne/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type RecordCounter interface {
	Count(ctx context.Context) (int, error)
}

// Handlers turn window events into controller calls. Every error stops
// here: it is logged and shown, never propagated.
type Handlers struct {
	ctx      context.Context
	form     *controllers.FormController
	search   *controllers.SearchController
	table    *models.TableModel
	exporter *services.ExportService
	counter  RecordCounter
	gui      *gui.Manager
	logger   logger.Logger
}

func NewHandlers(
	ctx context.Context,
	form *controllers.FormController,
	search *controllers.SearchController,
	table *models.TableModel,
	exporter *services.ExportService,
	counter RecordCounter,
	gm *gui.Manager,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		ctx:      ctx,
		form:     form,
		search:   search,
		table:    table,
		exporter: exporter,
		counter:  counter,
		gui:      gm,
		logger:   log,
	}
}

// LoadInitial fills the grid at start-up.
func (h *Handlers) LoadInitial() error {
	if err := h.search.Refresh(h.ctx); err != nil {
		return err
	}
	h.updateCounts()
	return nil
}

func (h *Handlers) HandleSave() {
	res, err := h.form.Submit(h.ctx, h.gui.FormInput())
	if err != nil {
		var nf models.NotFoundError
		if errors.As(err, &nf) {
			h.gui.SetFormEditing(0, false)
			h.gui.ClearSelection()
			h.gui.UpdateStatus(fmt.Sprintf("Film #%d no longer exists; save again to add it as new", nf.ID))
			h.updateCounts()
			return
		}
		h.showFailure("Save", err)
		return
	}

	h.gui.ClearForm()
	h.gui.ClearSelection()
	h.gui.UpdateStatus(fmt.Sprintf("Film #%d %s", res.ID, res.Action))
	h.updateCounts()
}

func (h *Handlers) HandleNew() {
	h.form.CancelEdit()
	h.gui.ClearForm()
	h.gui.ClearSelection()
	h.gui.UpdateStatus("Ready for a new film")
}

func (h *Handlers) HandlePaste() {
	h.gui.SetFormTitle(h.gui.ClipboardText())
}

func (h *Handlers) HandleSearch(query string) {
	if err := h.search.OnQueryChanged(h.ctx, query); err != nil {
		h.showFailure("Search", err)
		return
	}
	h.gui.ClearSelection()
	h.updateCounts()
}

func (h *Handlers) HandleRowSelected(row int) {
	id, err := h.table.IDAt(row)
	if err != nil {
		h.showFailure("Edit", err)
		return
	}

	record, err := h.form.BeginEdit(h.ctx, id)
	if err != nil {
		h.showFailure("Edit", err)
		return
	}

	h.gui.LoadRecord(record)
	h.gui.UpdateStatus(fmt.Sprintf("Editing film #%d", id))
}

func (h *Handlers) HandleCellCommit(row, col int, text string) {
	err := h.table.EditCell(h.ctx, row, col, text)
	if err == nil {
		if id, idErr := h.table.IDAt(row); idErr == nil {
			h.gui.UpdateStatus(fmt.Sprintf("Film #%d updated", id))
		}
		return
	}

	// The model reverted the row; redraw so the grid shows it again.
	h.gui.RefreshGrid()
	if errors.Is(err, models.ErrReadOnlyColumn) {
		h.gui.UpdateStatus("The ID column cannot be edited")
		return
	}
	h.showFailure("Update", err)
}

func (h *Handlers) HandleDelete() {
	row, ok := h.gui.SelectedRow()
	if !ok {
		h.gui.ShowWarning("Delete", "Select the row to delete.")
		return
	}

	id, err := h.table.IDAt(row)
	if err != nil {
		h.showFailure("Delete", err)
		return
	}

	h.gui.Confirm("Confirm Delete",
		fmt.Sprintf("Delete film #%d? This cannot be undone.", id),
		func(confirmed bool) {
			if confirmed {
				h.deleteRecord(id)
			}
		})
}

func (h *Handlers) deleteRecord(id int64) {
	editingID, editing := h.form.EditingID()

	if err := h.form.Delete(h.ctx, id); err != nil {
		h.showFailure("Delete", err)
		return
	}

	if editing && editingID == id {
		h.gui.ClearForm()
	}
	h.gui.ClearSelection()
	h.gui.UpdateStatus(fmt.Sprintf("Film #%d deleted", id))
	h.updateCounts()
}

func (h *Handlers) HandleExport() {
	h.gui.ShowExportDialog(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.showFailure("Export", err)
			return
		}
		if writer == nil {
			return
		}
		h.exportTo(writer)
	})
}

func (h *Handlers) exportTo(writer fyne.URIWriteCloser) {
	name := writer.URI().String()
	rows := h.table.Rows()

	err := h.exporter.ExportTo(writer, name, rows)
	if closeErr := writer.Close(); err == nil && closeErr != nil {
		err = models.IOError{Path: name, Err: closeErr}
	}
	if err != nil {
		h.showFailure("Export", err)
		return
	}

	h.gui.UpdateStatus(fmt.Sprintf("Exported %d films to %s", len(rows), writer.URI().Name()))
}

func (h *Handlers) updateCounts() {
	total, err := h.counter.Count(h.ctx)
	if err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{"stage": "count"})
		return
	}
	h.gui.UpdateCounts(h.table.RowCount(), total)
}

// showFailure maps an error to the right kind of message.
func (h *Handlers) showFailure(action string, err error) {
	var verr models.ValidationError
	if errors.As(err, &verr) {
		h.gui.ShowWarning("Input Error", validationMessage(verr))
		return
	}

	h.logger.Error("Handlers", err, map[string]interface{}{"action": action})
	h.gui.ShowError(action+" failed", err)
}

var fieldTitle = cases.Title(language.Und)

// validationMessage is the sentence shown to the user, e.g. "Year must
// contain only digits".
func validationMessage(err models.ValidationError) string {
	return fieldTitle.String(err.Field) + " " + err.Reason
}
