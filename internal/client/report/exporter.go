// Package report turns a fetched record set into a downloadable
// spreadsheet: one row per record in input order, a fixed ordered column
// mapping, and stable column alignment (missing fields render as a
// placeholder, the note history is flattened to one display string).
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column maps one spreadsheet column: header text, column width, and the
// accessor producing the cell value for a record.
type Column[R any] struct {
	Header string
	Width  float64
	Value  func(record R) string
}

const headerFill = "E0E0E0"

// Build renders the workbook in memory. No server round trip happens here;
// the caller hands the buffer to whatever download mechanism applies.
func Build[R any](sheet string, records []R, columns []Column[R]) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	for i, col := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
			return nil, err
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return nil, err
		}
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
	})
	if err != nil {
		return nil, fmt.Errorf("building header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, styleID); err != nil {
		return nil, err
	}

	for r, record := range records {
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, col.Value(record)); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

// FileName builds the dated download name, e.g. "Report_2025-01-31.xlsx".
func FileName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, now.Format("2006-01-02"))
}
