// Package report renders the assembled diff report for human review: plain
// CSV, or an Excel workbook with rows colored by which side the fact is
// missing in. It can also upload the rendered file to object storage.
//
// Coloring is driven purely by the "Missing In" column value, as the engine
// requires of its external renderer; the package never re-derives
// discrepancy semantics.
package report
