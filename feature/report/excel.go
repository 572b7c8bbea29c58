package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"data-reconciler/core/table"
)

// Row fill colors keyed by missing side: reviewers scan the report by color
// before reading a single cell.
const (
	fillMissingInA = "FFC7CE" // light red: the authoritative side lacks it
	fillMissingInB = "C6EFCE" // light green: the derived side lacks it
)

// ExcelOptions configures the rendered workbook.
type ExcelOptions struct {
	// Sheet is the worksheet name. Defaults to "Reconciliation".
	Sheet string

	// SideAName and SideBName are the display names the report's
	// "Missing In" column carries; they select the row fill.
	SideAName string
	SideBName string
}

// WriteExcelFile renders the report table as an Excel workbook with one row
// per discrepancy, colored by the "Missing In" column.
func WriteExcelFile(path string, tbl *table.Table, opts ExcelOptions) error {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = "Reconciliation"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	styleA, err := fillStyle(f, fillMissingInA)
	if err != nil {
		return err
	}
	styleB, err := fillStyle(f, fillMissingInB)
	if err != nil {
		return err
	}

	header := make([]any, len(tbl.Columns))
	for i, col := range tbl.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	endCol, _ := excelize.ColumnNumberToName(len(tbl.Columns))
	if err := f.SetCellStyle(sheet, "A1", endCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	missingInCol := tbl.ColumnIndex("Missing In")

	for i, row := range tbl.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		anchor := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, anchor, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}

		style := 0
		switch tbl.Cell(i, missingInCol) {
		case opts.SideAName:
			style = styleA
		case opts.SideBName:
			style = styleB
		}
		if style != 0 {
			end := fmt.Sprintf("%s%d", endCol, i+2)
			if err := f.SetCellStyle(sheet, anchor, end, style); err != nil {
				return fmt.Errorf("failed to style row %d: %w", i, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}
	return nil
}

func fillStyle(f *excelize.File, color string) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create fill style: %w", err)
	}
	return style, nil
}
