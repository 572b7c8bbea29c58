package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-reconciler/core/table"
)

func wideTable() *table.Table {
	return table.New(
		[]string{"Dimension", "Code", "Status", "Owner"},
		[][]string{
			{"Region", "X001", "Active", "Alice"},
			{"Region", "X002", "Inactive", "Bob"},
		},
	)
}

func TestNormalize_MeltCompleteness(t *testing.T) {
	// N attribute columns x M rows with no filters yields exactly N*M records.
	result, err := Normalize(wideTable(), NormalizeOptions{
		IdentityColumn: "Code",
		Dimension:      DimensionSource{Column: "Dimension"},
	})
	require.NoError(t, err)
	assert.Len(t, result.Records, 4) // 2 attribute columns x 2 rows

	assert.Contains(t, result.Records, Record{
		Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active",
	})
	assert.Contains(t, result.Records, Record{
		Dimension: "Region", Identity: "X002", Attribute: "Owner", Value: "Bob",
	})
}

func TestNormalize_ConstantDimension(t *testing.T) {
	tbl := table.New(
		[]string{"Code", "Status"},
		[][]string{{"X001", "Active"}},
	)

	result, err := Normalize(tbl, NormalizeOptions{
		IdentityColumn: "Code",
		Dimension:      DimensionSource{Constant: "Region"},
	})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Region", result.Records[0].Dimension)
}

func TestNormalize_BlankIdentityBecomesUnknown(t *testing.T) {
	tbl := table.New(
		[]string{"Code", "Status"},
		[][]string{{"  ", "Active"}},
	)

	result, err := Normalize(tbl, NormalizeOptions{
		IdentityColumn: "Code",
		Dimension:      DimensionSource{Constant: "Region"},
	})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, UnknownIdentity, result.Records[0].Identity)
}

func TestNormalize_MissingIdentityColumn(t *testing.T) {
	result, err := Normalize(wideTable(), NormalizeOptions{
		Source:         "alfa-accounts",
		IdentityColumn: "Nope",
		Dimension:      DimensionSource{Constant: "Region"},
	})

	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "alfa-accounts", schemaErr.Source)
	assert.Empty(t, result.Records, "schema error must yield an empty result")
	assert.True(t, IsRecoverable(err))
}

func TestNormalize_PreFilterDropsRow(t *testing.T) {
	tbl := table.New(
		[]string{"Country", "Code", "Status"},
		[][]string{
			{"TEST", "X001", "Active"},
			{"DE", "X002", "Active"},
		},
	)

	result, err := Normalize(tbl, NormalizeOptions{
		IdentityColumn: "Code",
		Dimension:      DimensionSource{Constant: "Region"},
		PreFilters:     []PreFilterRule{{Column: "Country", Forbidden: []string{"TEST"}}},
	})
	require.NoError(t, err)

	// The filtered row contributes zero records regardless of its other
	// columns; Country itself melts for the surviving row.
	for _, r := range result.Records {
		assert.NotEqual(t, "X001", r.Identity)
	}
	assert.Len(t, result.Records, 2) // Country + Status for X002
}

func TestNormalize_PreFilterUnknownColumnSkipped(t *testing.T) {
	result, err := Normalize(wideTable(), NormalizeOptions{
		IdentityColumn: "Code",
		Dimension:      DimensionSource{Column: "Dimension"},
		PreFilters:     []PreFilterRule{{Column: "Ghost", Forbidden: []string{"x"}}},
	})
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	var configErr *ConfigurationError
	assert.ErrorAs(t, result.Warnings[0], &configErr)
	assert.Len(t, result.Records, 4, "skipped rule must not drop rows")
}

func TestNormalize_RenameBeforePostFilter(t *testing.T) {
	tbl := table.New(
		[]string{"Code", "First", "Status"},
		[][]string{{"X001", "Alice", "Active"}},
	)

	result, err := Normalize(tbl, NormalizeOptions{
		IdentityColumn:    "Code",
		Dimension:         DimensionSource{Constant: "Region"},
		RenameAttributes:  map[string]string{"First": "Name"},
		ExcludeAttributes: []string{"Name"},
	})
	require.NoError(t, err)

	// "First" is renamed to "Name" before exclusion, so it must be dropped.
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Status", result.Records[0].Attribute)
}

func TestNormalize_ExcludeDimension(t *testing.T) {
	result, err := Normalize(wideTable(), NormalizeOptions{
		IdentityColumn:    "Code",
		Dimension:         DimensionSource{Column: "Dimension"},
		ExcludeDimensions: []string{"Region"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Records)
}

func TestNormalize_TrimsRecordFields(t *testing.T) {
	tbl := table.New(
		[]string{"Code", " Status "},
		[][]string{{" X001 ", " Active "}},
	)

	result, err := Normalize(tbl, NormalizeOptions{
		IdentityColumn: "Code",
		Dimension:      DimensionSource{Constant: " Region "},
	})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, Record{
		Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active",
	}, result.Records[0])
}

func TestNormalize_EmptyTable(t *testing.T) {
	_, err := Normalize(table.New(nil, nil), NormalizeOptions{IdentityColumn: "Code"})
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}
