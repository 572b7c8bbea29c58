package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"data-reconciler/core/recon"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "source.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadExcelFile(t *testing.T) {
	path := buildWorkbook(t, "Sheet1", [][]string{
		{"Code", "Status"},
		{"X001", "Active"},
	})

	tbl, err := ReadExcelFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Code", "Status"}, tbl.Columns)
	require.Equal(t, 1, tbl.NumRows())
	assert.Equal(t, "Active", tbl.Cell(0, 1))
}

func TestReadExcelFile_NamedSheet(t *testing.T) {
	path := buildWorkbook(t, "Accounts", [][]string{
		{"Code", "Owner"},
		{"X002", "Alice"},
	})

	tbl, err := ReadExcelFile(path, "Accounts")
	require.NoError(t, err)
	assert.Equal(t, "Alice", tbl.Cell(0, 1))
}

func TestReadExcelFile_MissingSheet(t *testing.T) {
	path := buildWorkbook(t, "Sheet1", [][]string{{"Code"}})

	_, err := ReadExcelFile(path, "Ghost")
	var unavailable *recon.SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestReadExcelFile_MissingFile(t *testing.T) {
	_, err := ReadExcelFile(filepath.Join(t.TempDir(), "nope.xlsx"), "")
	var unavailable *recon.SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
}
