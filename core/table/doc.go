// Package table provides the wide rectangular table type exchanged between
// boundary readers (CSV, ZIP-packaged CSV, Excel, database) and the
// reconciliation engine. It is a plain value type with tolerant cell access:
// ragged rows and out-of-range lookups read as blank cells.
package table
