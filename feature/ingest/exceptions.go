package ingest

import (
	"strings"

	"data-reconciler/core/config"
	"data-reconciler/core/recon"
	"data-reconciler/core/table"
)

// Exception table column headers. "Key" must equal a full key string
// produced by the engine; the flag column's "yes"/"no" literal is the only
// case-insensitive match in the whole pipeline.
const (
	exceptionKeyColumn      = "Key"
	exceptionComment1Column = "Comment1"
	exceptionComment2Column = "Comment2"
	exceptionFlagColumn     = "hide exception"
)

// ParseExceptionTable converts a suppression table into a rule set. A table
// without the required Key and flag columns yields an empty set: a
// malformed exception table means "no exceptions", never a failed run. Rows
// with a blank key are skipped; on duplicate keys the last row wins.
func ParseExceptionTable(tbl *table.Table) recon.RuleSet {
	rules := recon.RuleSet{}
	if tbl.IsEmpty() {
		return rules
	}

	keyCol := tbl.ColumnIndex(exceptionKeyColumn)
	flagCol := tbl.ColumnIndex(exceptionFlagColumn)
	if keyCol < 0 || flagCol < 0 {
		return rules
	}
	comment1Col := tbl.ColumnIndex(exceptionComment1Column)
	comment2Col := tbl.ColumnIndex(exceptionComment2Column)

	for row := 0; row < tbl.NumRows(); row++ {
		key := strings.TrimSpace(tbl.Cell(row, keyCol))
		if key == "" {
			continue
		}
		rules[key] = recon.ExceptionRule{
			Key:      key,
			Comment1: tbl.Cell(row, comment1Col),
			Comment2: tbl.Cell(row, comment2Col),
			Suppress: recon.ParseSuppressFlag(tbl.Cell(row, flagCol)),
		}
	}

	return rules
}

// LoadExceptionRules reads the configured suppression table. Any problem —
// missing file, unreadable sheet, missing columns — results in an empty rule
// set.
func LoadExceptionRules(cfg config.ExceptionsConfig) recon.RuleSet {
	if cfg.Path == "" {
		return recon.RuleSet{}
	}

	var tbl *table.Table
	var err error
	switch cfg.Kind {
	case config.SourceKindExcel:
		tbl, err = ReadExcelFile(cfg.Path, cfg.Sheet)
	default:
		tbl, err = ReadCSVFile(cfg.Path, 0)
	}
	if err != nil {
		return recon.RuleSet{}
	}

	return ParseExceptionTable(tbl)
}
