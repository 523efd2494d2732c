// Package export mirrors successfully submitted summary rows into a local
// spreadsheet file, an audit copy of the remote sheet.
package export

import (
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tarekzhran/inspection-reports/internal/models"
)

const sheetName = "Sheet1"

// Header row matching the remote spreadsheet's columns.
var headers = []string{"Date", "Time", "Inspector", "Location", "Count absence"}

// WorkbookWriter appends summary rows to a local xlsx workbook.
type WorkbookWriter struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewWorkbookWriter creates a writer for the workbook at path. The file is
// created with a header row on first append.
func NewWorkbookWriter(path string, logger *zap.Logger) *WorkbookWriter {
	return &WorkbookWriter{
		path:   path,
		logger: logger,
	}
}

// Append adds one summary row to the workbook.
func (w *WorkbookWriter) Append(entry models.SheetEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, fresh, err := w.open()
	if err != nil {
		return err
	}
	defer f.Close()

	if fresh {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(sheetName, cell, h); err != nil {
				return fmt.Errorf("failed to write workbook header: %w", err)
			}
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("failed to read workbook rows: %w", err)
	}
	next := len(rows) + 1

	values := []interface{}{entry.Date, entry.Time, entry.Inspector, entry.Location, entry.CountAbsence}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, next)
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("failed to write workbook cell: %w", err)
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		w.logger.Error("Failed to save workbook", zap.String("path", w.path), zap.Error(err))
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("Appended summary row to workbook",
		zap.String("path", w.path), zap.Int("row", next))
	return nil
}

func (w *WorkbookWriter) open() (*excelize.File, bool, error) {
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		return excelize.NewFile(), true, nil
	}
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open workbook: %w", err)
	}
	return f, false, nil
}
