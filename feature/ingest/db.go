package ingest

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"data-reconciler/core/recon"
	"data-reconciler/core/table"
)

// ReadDatabaseTable loads all rows of a source table into a wide table. The
// result-set column names become the table header. A nil connection is a
// recoverable SourceUnavailableError, matching the file readers.
func ReadDatabaseTable(ctx context.Context, db *gorm.DB, tableName string) (*table.Table, error) {
	if db == nil {
		return nil, &recon.SourceUnavailableError{Source: tableName, Err: fmt.Errorf("no database connection")}
	}

	query := fmt.Sprintf("SELECT * FROM `%s`", tableName)
	dbRows, err := db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, &recon.SourceUnavailableError{Source: tableName, Err: err}
	}
	defer dbRows.Close()

	columns, err := dbRows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns of %s: %w", tableName, err)
	}

	rows := make([][]string, 0)
	for dbRows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := dbRows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", tableName, err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = cellString(v)
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows of %s: %w", tableName, err)
	}

	return table.New(columns, rows), nil
}

// cellString converts a scanned database value into its string cell form.
// NULL becomes a blank cell.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
