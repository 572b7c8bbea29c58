package table

import "strings"

// Table is a rectangular wide table: ordered column names plus string rows.
// It is the exchange format between boundary readers and the reconciliation
// engine. Cell values are kept as raw strings; interpretation is left to the
// consumer.
type Table struct {
	// Columns holds the column names in their original order.
	Columns []string

	// Rows holds the data rows. Rows may be ragged; Cell pads with "".
	Rows [][]string
}

// New creates a table from column names and rows.
func New(columns []string, rows [][]string) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// ColumnIndex returns the index of the named column, matching on trimmed
// names. Returns -1 if the column does not exist.
func (t *Table) ColumnIndex(name string) int {
	want := strings.TrimSpace(name)
	for i, col := range t.Columns {
		if strings.TrimSpace(col) == want {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col). Out-of-range coordinates and ragged
// rows yield "" rather than a panic, so callers can treat absent cells as
// blank values.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// IsEmpty reports whether the table has no columns or no rows.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Columns) == 0 || len(t.Rows) == 0
}
