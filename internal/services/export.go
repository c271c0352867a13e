package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"film-catalog/internal/logger"
	"film-catalog/internal/models"
)

// ExportService writes the rows currently shown in the grid as CSV.
type ExportService struct {
	logger logger.Logger
}

func NewExportService(log logger.Logger) *ExportService {
	return &ExportService{logger: log}
}

// Export replaces whatever is at path with the header followed by rows.
func (es *ExportService) Export(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return models.IOError{Path: path, Err: err}
	}

	if err := es.write(f, rows); err != nil {
		_ = f.Close()
		return models.IOError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return models.IOError{Path: path, Err: err}
	}

	es.logger.Info("ExportService", "csv exported", map[string]interface{}{
		"path": path,
		"rows": len(rows),
	})
	return nil
}

// ExportTo writes to an already opened destination; name only labels errors
// and log lines. Closing w is left to the caller.
func (es *ExportService) ExportTo(w io.Writer, name string, rows [][]string) error {
	if err := es.write(w, rows); err != nil {
		return models.IOError{Path: name, Err: err}
	}

	es.logger.Info("ExportService", "csv exported", map[string]interface{}{
		"path": name,
		"rows": len(rows),
	})
	return nil
}

func (es *ExportService) write(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.ColumnHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, models.ColumnCount)
	for i, row := range rows {
		for col := range record {
			record[col] = ""
			if col < len(row) {
				record[col] = row[col]
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
