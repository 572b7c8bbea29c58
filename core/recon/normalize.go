package recon

import (
	"fmt"
	"strings"

	"data-reconciler/core/table"
)

// UnknownIdentity is substituted for blank or absent identity values so that
// later grouping keeps referential integrity instead of dropping the row.
const UnknownIdentity = "Unknown"

// PreFilterRule drops whole rows of the wide table before melting. A row
// matching any rule (logical OR across rules) is excluded. Because the rule
// runs on the wide representation it may reference columns that vanish after
// melting.
type PreFilterRule struct {
	// Column is the wide-table column the rule inspects.
	Column string

	// Forbidden lists the values that exclude the row.
	Forbidden []string
}

// DimensionSource selects where a row's dimension comes from: a column of
// the wide table, or a constant supplied per source file. Column takes
// precedence when both are set.
type DimensionSource struct {
	Column   string
	Constant string
}

// NormalizeOptions is the caller-supplied column-to-role mapping and
// vocabulary alignment for one wide table. The core never infers roles.
type NormalizeOptions struct {
	// Source names the input for error reporting and logging.
	Source string

	// IdentityColumn is the column holding the entity identity.
	IdentityColumn string

	// Dimension selects the dimension column or constant.
	Dimension DimensionSource

	// RenameDimensions and RenameAttributes substitute dimension and
	// attribute values after melting, aligning heterogeneous vocabularies.
	RenameDimensions map[string]string
	RenameAttributes map[string]string

	// PreFilters are row-level exclusions applied on the wide table.
	PreFilters []PreFilterRule

	// ExcludeDimensions and ExcludeAttributes drop records after melt and
	// rename, so exclusion matches the canonical vocabulary.
	ExcludeDimensions []string
	ExcludeAttributes []string
}

// NormalizeResult carries the melted records plus the per-rule
// configuration errors that were absorbed along the way. Warnings never
// abort normalization; they exist so the caller can log them.
type NormalizeResult struct {
	Records  []Record
	Warnings []error
}

// Normalize converts one wide table into canonical long-form records: one
// record per (row, attribute column) pair. Pure function over its inputs.
//
// A table missing the identity or dimension column yields an empty result
// and a *SchemaError; the caller is expected to skip the source.
func Normalize(tbl *table.Table, opts NormalizeOptions) (*NormalizeResult, error) {
	result := &NormalizeResult{Records: []Record{}}

	if tbl == nil || tbl.NumColumns() == 0 {
		return result, &SchemaError{Source: opts.Source, Reason: "table has no columns"}
	}

	idCol := tbl.ColumnIndex(opts.IdentityColumn)
	if idCol < 0 {
		return result, &SchemaError{
			Source: opts.Source,
			Reason: fmt.Sprintf("identity column %q not found", opts.IdentityColumn),
		}
	}

	dimCol := -1
	if opts.Dimension.Column != "" {
		dimCol = tbl.ColumnIndex(opts.Dimension.Column)
		if dimCol < 0 {
			return result, &SchemaError{
				Source: opts.Source,
				Reason: fmt.Sprintf("dimension column %q not found", opts.Dimension.Column),
			}
		}
	}

	// Resolve pre-filter rules against the wide schema. Rules naming a
	// nonexistent column are skipped, not fatal.
	filters := make([]boundFilter, 0, len(opts.PreFilters))
	for _, rule := range opts.PreFilters {
		col := tbl.ColumnIndex(rule.Column)
		if col < 0 {
			result.Warnings = append(result.Warnings, &ConfigurationError{
				Rule:   fmt.Sprintf("pre-filter on %q", rule.Column),
				Reason: "column not found, rule skipped",
			})
			continue
		}
		forbidden := make(map[string]struct{}, len(rule.Forbidden))
		for _, v := range rule.Forbidden {
			forbidden[strings.TrimSpace(v)] = struct{}{}
		}
		filters = append(filters, boundFilter{col: col, forbidden: forbidden})
	}

	excludeDims := toSet(opts.ExcludeDimensions)
	excludeAttrs := toSet(opts.ExcludeAttributes)

	// Attribute columns are everything except the designated identity and
	// dimension columns.
	attrCols := make([]int, 0, tbl.NumColumns())
	for col := range tbl.Columns {
		if col == idCol || col == dimCol {
			continue
		}
		attrCols = append(attrCols, col)
	}

	for row := 0; row < tbl.NumRows(); row++ {
		if rowExcluded(tbl, row, filters) {
			continue
		}

		identity := strings.TrimSpace(tbl.Cell(row, idCol))
		if identity == "" {
			identity = UnknownIdentity
		}

		dimension := strings.TrimSpace(opts.Dimension.Constant)
		if dimCol >= 0 {
			dimension = strings.TrimSpace(tbl.Cell(row, dimCol))
		}
		if mapped, ok := opts.RenameDimensions[dimension]; ok {
			dimension = strings.TrimSpace(mapped)
		}
		if _, bad := excludeDims[dimension]; bad {
			continue
		}

		for _, col := range attrCols {
			attribute := strings.TrimSpace(tbl.Columns[col])
			if mapped, ok := opts.RenameAttributes[attribute]; ok {
				attribute = strings.TrimSpace(mapped)
			}
			if _, bad := excludeAttrs[attribute]; bad {
				continue
			}

			result.Records = append(result.Records, Record{
				Dimension: dimension,
				Identity:  identity,
				Attribute: attribute,
				Value:     strings.TrimSpace(tbl.Cell(row, col)),
			})
		}
	}

	return result, nil
}

// boundFilter is a pre-filter rule resolved to a concrete column index.
type boundFilter struct {
	col       int
	forbidden map[string]struct{}
}

func rowExcluded(tbl *table.Table, row int, filters []boundFilter) bool {
	for _, f := range filters {
		value := strings.TrimSpace(tbl.Cell(row, f.col))
		if _, hit := f.forbidden[value]; hit {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.TrimSpace(v)] = struct{}{}
	}
	return set
}
