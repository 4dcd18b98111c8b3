package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/solarcodion/code-challenge/internal/domain"
)

const catalogSheet = "CATALOG"

// XLSXWriter writes the catalog report to a local .xlsx file.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter creates a writer targeting the given file path.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Write renders the catalog rows into a single-sheet workbook.
func (w *XLSXWriter) Write(ctx context.Context, tokens []domain.Token) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", catalogSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for i, row := range buildCatalogRows(tokens) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("computing cell for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(catalogSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving report to %s: %w", w.path, err)
	}
	return nil
}
