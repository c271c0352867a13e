package controllers

import (
	"context"
	"fmt"
	"strings"

	"film-catalog/internal/logger"
	"film-catalog/internal/models"
)

type RecordFinder interface {
	ListAll(ctx context.Context) ([]models.FilmRecord, error)
	SearchByTitle(ctx context.Context, fragment string) ([]models.FilmRecord, error)
}

// TableRefresher receives the record set to display.
type TableRefresher interface {
	Refresh(records []models.FilmRecord)
}

// SearchController keeps the grid in sync with the live title query.
type SearchController struct {
	finder RecordFinder
	table  TableRefresher
	logger logger.Logger
	query  string
}

func NewSearchController(finder RecordFinder, table TableRefresher, log logger.Logger) *SearchController {
	return &SearchController{
		finder: finder,
		table:  table,
		logger: log,
	}
}

// OnQueryChanged runs on every keystroke in the search box.
func (c *SearchController) OnQueryChanged(ctx context.Context, text string) error {
	c.query = strings.ToLower(strings.TrimSpace(text))
	return c.Refresh(ctx)
}

// Refresh redisplays the records matching the active query; with no query
// that is every record.
func (c *SearchController) Refresh(ctx context.Context) error {
	var (
		records []models.FilmRecord
		err     error
	)
	if c.query == "" {
		records, err = c.finder.ListAll(ctx)
	} else {
		records, err = c.finder.SearchByTitle(ctx, c.query)
	}
	if err != nil {
		return fmt.Errorf("load films: %w", err)
	}

	c.table.Refresh(records)
	c.logger.Debug("SearchController", "table refreshed", map[string]interface{}{
		"query":   c.query,
		"matches": len(records),
	})
	return nil
}

func (c *SearchController) Query() string {
	return c.query
}
