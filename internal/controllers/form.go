package controllers

import (
	"context"
	"errors"

	"film-catalog/internal/logger"
	"film-catalog/internal/models"
)

type RecordWriter interface {
	Insert(ctx context.Context, input models.FilmInput) (int64, error)
	Update(ctx context.Context, id int64, input models.FilmInput) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (models.FilmRecord, error)
}

// Refresher redraws the grid after a mutation.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type SubmitAction int

const (
	ActionCreated SubmitAction = iota
	ActionUpdated
)

func (a SubmitAction) String() string {
	if a == ActionUpdated {
		return "updated"
	}
	return "created"
}

type SubmitResult struct {
	ID     int64
	Action SubmitAction
}

// FormController owns the create/edit mode of the entry form. At most one
// record is targeted for editing at a time.
type FormController struct {
	store     RecordWriter
	refresher Refresher
	logger    logger.Logger

	editingID int64
	editing   bool
}

func NewFormController(store RecordWriter, refresher Refresher, log logger.Logger) *FormController {
	return &FormController{
		store:     store,
		refresher: refresher,
		logger:    log,
	}
}

// Submit validates the form and creates or overwrites a record. Validation
// failures leave both the store and the edit mode untouched.
func (c *FormController) Submit(ctx context.Context, input models.FilmInput) (SubmitResult, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return SubmitResult{}, err
	}

	var result SubmitResult
	if id, ok := c.EditingID(); ok {
		if err := c.store.Update(ctx, id, input); err != nil {
			var nf models.NotFoundError
			if errors.As(err, &nf) {
				c.logger.Warning("FormController", "edited film vanished", map[string]interface{}{"id": id})
				c.CancelEdit()
				c.refresh(ctx)
			}
			return SubmitResult{}, err
		}
		result = SubmitResult{ID: id, Action: ActionUpdated}
	} else {
		id, err := c.store.Insert(ctx, input)
		if err != nil {
			return SubmitResult{}, err
		}
		result = SubmitResult{ID: id, Action: ActionCreated}
	}

	c.CancelEdit()
	c.logger.Info("FormController", "film saved", map[string]interface{}{
		"id":     result.ID,
		"action": result.Action.String(),
	})

	return result, c.refresher.Refresh(ctx)
}

// BeginEdit loads a record into edit mode, replacing any earlier target.
func (c *FormController) BeginEdit(ctx context.Context, id int64) (models.FilmRecord, error) {
	record, err := c.store.Get(ctx, id)
	if err != nil {
		return models.FilmRecord{}, err
	}
	c.editingID = id
	c.editing = true

	c.logger.Debug("FormController", "edit started", map[string]interface{}{"id": id})
	return record, nil
}

func (c *FormController) CancelEdit() {
	c.editingID = 0
	c.editing = false
}

func (c *FormController) EditingID() (int64, bool) {
	return c.editingID, c.editing
}

// Delete removes a record. Deleting an id that is already gone is not an
// error.
func (c *FormController) Delete(ctx context.Context, id int64) error {
	if err := c.store.Delete(ctx, id); err != nil {
		var nf models.NotFoundError
		if !errors.As(err, &nf) {
			return err
		}
		c.logger.Warning("FormController", "film already deleted", map[string]interface{}{"id": id})
	} else {
		c.logger.Info("FormController", "film deleted", map[string]interface{}{"id": id})
	}

	if editing, ok := c.EditingID(); ok && editing == id {
		c.CancelEdit()
	}
	return c.refresher.Refresh(ctx)
}

func (c *FormController) refresh(ctx context.Context) {
	if err := c.refresher.Refresh(ctx); err != nil {
		c.logger.Error("FormController", err, map[string]interface{}{"stage": "refresh"})
	}
}
