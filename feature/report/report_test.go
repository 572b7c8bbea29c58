package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"data-reconciler/core/recon"
	"data-reconciler/core/storage/mocks"
	"data-reconciler/core/table"
)

func sampleReport() *table.Table {
	items := []recon.DiffItem{
		{Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active", MissingIn: recon.SideB},
		{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Inactive", MissingIn: recon.SideA},
	}
	return recon.Assemble(items, recon.ReportOptions{SideAName: "Alfa", SideBName: "Gamma"})
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Dimension,Identity,Attribute,Value,Comments_1,Comments_2,Action Item,Missing In")
	assert.Contains(t, out, "Region,X001,Status,Active,,,,Gamma")
	assert.Contains(t, out, "Region,X002,Status,Inactive,,,,Alfa")
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, WriteCSVFile(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Missing In")
}

func TestWriteExcelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteExcelFile(path, sampleReport(), ExcelOptions{
		SideAName: "Alfa",
		SideBName: "Gamma",
	}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reconciliation")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Dimension", rows[0][0])
	assert.Equal(t, "Gamma", rows[1][7])
	assert.Equal(t, "Alfa", rows[2][7])

	// The two rows carry different fills, keyed by the Missing In value.
	styleRow1, err := f.GetCellStyle("Reconciliation", "A2")
	require.NoError(t, err)
	styleRow2, err := f.GetCellStyle("Reconciliation", "A3")
	require.NoError(t, err)
	assert.NotEqual(t, styleRow1, styleRow2)
}

func TestWriteExcelFile_EmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	empty := recon.Assemble(nil, recon.ReportOptions{})
	require.NoError(t, WriteExcelFile(path, empty, ExcelOptions{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reconciliation")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, WriteCSVFile(path, sampleReport()))

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "reconciliation", "reports/report.csv",
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	require.NoError(t, Upload(context.Background(), client, "reconciliation", "reports/report.csv", path))
	client.AssertExpectations(t)
}

func TestUpload_MissingFile(t *testing.T) {
	client := new(mocks.Client)
	err := Upload(context.Background(), client, "reconciliation", "reports/x.csv",
		filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
