package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sahilparmar-7/ams/internal/store"
	"github.com/sahilparmar-7/ams/pkg/tabular"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// buildWorkbook renders every exportable collection into one workbook, one
// sheet per collection, reusing the CSV column schemas as the sheet layout.
func buildWorkbook(ctx context.Context, f store.Fetcher, academyID string) (*bytes.Buffer, error) {
	datasets, names, err := collectAll(ctx, f, academyID, CollectionAll)
	if err != nil {
		return nil, err
	}

	wb := excelize.NewFile()
	defer wb.Close()

	for i, name := range names {
		if i == 0 {
			// Reuse the default sheet for the first collection.
			if err := wb.SetSheetName(wb.GetSheetName(0), name); err != nil {
				return nil, fmt.Errorf("rename sheet %s: %w", name, err)
			}
		} else {
			if _, err := wb.NewSheet(name); err != nil {
				return nil, fmt.Errorf("create sheet %s: %w", name, err)
			}
		}
		if err := writeSheet(wb, name, datasets[name]); err != nil {
			return nil, err
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}

func writeSheet(wb *excelize.File, name string, docs []store.Document) error {
	cols := workbookColumns[name]

	if err := setRow(wb, name, 1, tabular.Headers(cols)); err != nil {
		return err
	}
	for i, cells := range tabular.Cells(cols, docs) {
		if err := setRow(wb, name, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func setRow(wb *excelize.File, sheet string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, rowNum, err)
	}
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("write sheet %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
