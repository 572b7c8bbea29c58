package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func popOf(records ...Record) *Population {
	return Group(records)
}

func TestDiff_WholeIdentityMissing(t *testing.T) {
	// Side A has X001 under Region; side B has no X001 at all. One item per
	// attribute of X001, tagged missing in B, and no attribute-level
	// comparison for it.
	popA := popOf(
		Record{Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active"},
	)
	popB := popOf(
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active"},
	)

	items := Diff(popA, popB)

	assert.ElementsMatch(t, []DiffItem{
		{Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active", MissingIn: SideB},
		{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active", MissingIn: SideA},
	}, items)
}

func TestDiff_WholeIdentityMissing_MultipleAttributes(t *testing.T) {
	popA := popOf(
		Record{Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active"},
		Record{Dimension: "Region", Identity: "X001", Attribute: "Owner", Value: "Alice"},
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active"},
	)
	popB := popOf(
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active"},
	)

	items := Diff(popA, popB)

	assert.ElementsMatch(t, []DiffItem{
		{Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active", MissingIn: SideB},
		{Dimension: "Region", Identity: "X001", Attribute: "Owner", Value: "Alice", MissingIn: SideB},
	}, items)
}

func TestDiff_ValueConflictEmitsBothVariants(t *testing.T) {
	// Both sides have X002 with differing Status: two items, one per side,
	// each carrying that side's value.
	popA := popOf(
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active"},
	)
	popB := popOf(
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Inactive"},
	)

	items := Diff(popA, popB)

	assert.ElementsMatch(t, []DiffItem{
		{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active", MissingIn: SideB},
		{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Inactive", MissingIn: SideA},
	}, items)
}

func TestDiff_AttributeOnlyOnOneSide(t *testing.T) {
	popA := popOf(
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active"},
		Record{Dimension: "Region", Identity: "X002", Attribute: "Owner", Value: "Alice"},
	)
	popB := popOf(
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active"},
		Record{Dimension: "Region", Identity: "X002", Attribute: "Currency", Value: "EUR"},
	)

	items := Diff(popA, popB)

	assert.ElementsMatch(t, []DiffItem{
		{Dimension: "Region", Identity: "X002", Attribute: "Owner", Value: "Alice", MissingIn: SideB},
		{Dimension: "Region", Identity: "X002", Attribute: "Currency", Value: "EUR", MissingIn: SideA},
	}, items)
}

func TestDiff_EqualValuesNotReported(t *testing.T) {
	popA := popOf(
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active"},
	)
	popB := popOf(
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active"},
	)

	assert.Empty(t, Diff(popA, popB))
}

func TestDiff_DimensionOnOneSideIgnored(t *testing.T) {
	// A dimension absent from one side entirely signals the source is not
	// tracked there; it is not a reconciliation finding.
	popA := popOf(
		Record{Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active"},
	)
	popB := popOf(
		Record{Dimension: "Cost Center", Identity: "C100", Attribute: "Owner", Value: "Bob"},
	)

	assert.Empty(t, Diff(popA, popB))
}

func TestDiff_Symmetry(t *testing.T) {
	// diff(A,B) equals diff(B,A) with side labels swapped.
	popA := popOf(
		Record{Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active"},
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active"},
		Record{Dimension: "Region", Identity: "X002", Attribute: "Owner", Value: "Alice"},
	)
	popB := popOf(
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Inactive"},
		Record{Dimension: "Region", Identity: "X003", Attribute: "Status", Value: "Active"},
	)

	forward := Diff(popA, popB)
	backward := Diff(popB, popA)

	swapped := make([]DiffItem, 0, len(backward))
	for _, item := range backward {
		item.MissingIn = item.MissingIn.Opposite()
		swapped = append(swapped, item)
	}

	assert.ElementsMatch(t, forward, swapped)
}

func TestDiff_DeterministicContent(t *testing.T) {
	popA := popOf(
		Record{Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active"},
		Record{Dimension: "Account", Identity: "A001", Attribute: "Type", Value: "Asset"},
	)
	popB := popOf(
		Record{Dimension: "Region", Identity: "X002", Attribute: "Status", Value: "Active"},
		Record{Dimension: "Account", Identity: "A001", Attribute: "Type", Value: "Liability"},
	)

	first := Diff(popA, popB)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Diff(popA, popB), "output must not vary across runs")
	}
}

func TestDiff_DoesNotMutateInputs(t *testing.T) {
	popA := popOf(
		Record{Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Active"},
	)
	popB := popOf(
		Record{Dimension: "Region", Identity: "X001", Attribute: "Status", Value: "Inactive"},
	)

	_ = Diff(popA, popB)

	assert.Equal(t, "Active", popA.Entities["Region | X001"].Attributes["Status"])
	assert.Equal(t, "Inactive", popB.Entities["Region | X001"].Attributes["Status"])
}
