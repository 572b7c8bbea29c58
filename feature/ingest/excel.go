package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"data-reconciler/core/recon"
	"data-reconciler/core/table"
)

// ReadExcelFile reads one worksheet of an Excel workbook into a wide table.
// An empty sheet name picks the first worksheet. The first row is the
// header. A missing file or sheet is a recoverable SourceUnavailableError.
func ReadExcelFile(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &recon.SourceUnavailableError{Source: path, Err: err}
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &recon.SourceUnavailableError{
			Source: path,
			Err:    fmt.Errorf("failed to read sheet %q: %w", sheet, err),
		}
	}
	if len(rows) == 0 {
		return table.New(nil, nil), nil
	}

	return table.New(rows[0], rows[1:]), nil
}
