package recon

import "data-reconciler/core/table"

// Report column headers, in the fixed order the rendered workbook expects.
// "Action Item" is reserved for human annotation and is always emitted
// blank. "Missing In" carries the side's display name and is what external
// renderers key their row coloring off.
var ReportColumns = []string{
	"Dimension",
	"Identity",
	"Attribute",
	"Value",
	"Comments_1",
	"Comments_2",
	"Action Item",
	"Missing In",
}

// ReportOptions names the two reconciled systems in the rendered output.
type ReportOptions struct {
	// SideAName labels facts missing in side A. Defaults to "SideA".
	SideAName string

	// SideBName labels facts missing in side B. Defaults to "SideB".
	SideBName string
}

// SideName returns the configured display name for a side.
func (o ReportOptions) SideName(s Side) string {
	switch {
	case s == SideA && o.SideAName != "":
		return o.SideAName
	case s == SideB && o.SideBName != "":
		return o.SideBName
	}
	return s.String()
}

// Assemble shapes filtered diff items into the final report table, one row
// per item. No sorting is imposed here; ordering is a rendering concern.
func Assemble(items []DiffItem, opts ReportOptions) *table.Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Dimension,
			item.Identity,
			item.Attribute,
			item.Value,
			item.Comment1,
			item.Comment2,
			"", // Action Item, filled in by reviewers
			opts.SideName(item.MissingIn),
		})
	}

	columns := make([]string, len(ReportColumns))
	copy(columns, ReportColumns)
	return table.New(columns, rows)
}
