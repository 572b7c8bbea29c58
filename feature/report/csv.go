package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"data-reconciler/core/table"
)

// WriteCSV renders the report table as CSV, header first.
func WriteCSV(w io.Writer, tbl *table.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(tbl.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range tbl.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile renders the report table to a CSV file. A failure here is
// fatal to the run; no partial report is left behind.
func WriteCSVFile(path string, tbl *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if err := WriteCSV(f, tbl); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
