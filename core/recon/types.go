package recon

// Side identifies one of the two reconciled sources. Side A is the
// authoritative system, Side B the derived/external one. Display names for
// the report (e.g. "Alfa"/"Gamma") are configured at the boundary.
type Side int

const (
	// SideA is the authoritative source.
	SideA Side = iota
	// SideB is the derived/external source.
	SideB
)

// String returns the canonical side label used when no display name is
// configured.
func (s Side) String() string {
	if s == SideA {
		return "SideA"
	}
	return "SideB"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Record is one canonical long-form fact produced by the Normalizer:
// one (dimension, identity, attribute, value) tuple per original
// (row, attribute column) pair. Fields are stored trimmed.
type Record struct {
	// Dimension is the entity category (e.g. a business unit).
	Dimension string

	// Identity is the unique name within the dimension.
	Identity string

	// Attribute is the property name (originally a column header).
	Attribute string

	// Value is the property value.
	Value string
}

// Entity is an identity's full attribute set, assembled by Group from all
// records sharing a group key.
type Entity struct {
	// GroupKey is the derived "dimension | identity" key.
	GroupKey string

	// Dimension is the entity category.
	Dimension string

	// Identity is the unique name within the dimension.
	Identity string

	// Attributes maps attribute name to value. On duplicate attributes the
	// first-encountered value wins.
	Attributes map[string]string
}

// Population is one source's grouped entity set plus the per-dimension
// identity sets the differ needs to tell "whole identity missing" apart from
// "identity present but incomplete".
type Population struct {
	// Entities maps group key to entity.
	Entities map[string]Entity

	// Identities maps dimension to the set of identities present in it.
	Identities map[string]map[string]struct{}
}

// HasDimension reports whether the population contains any identity under
// the given dimension.
func (p *Population) HasDimension(dimension string) bool {
	ids, ok := p.Identities[dimension]
	return ok && len(ids) > 0
}

// DiffItem is one discrepancy between the two populations. Terminal once
// emitted in the report.
type DiffItem struct {
	// Dimension is the entity category the fact belongs to.
	Dimension string

	// Identity is the entity name within the dimension.
	Identity string

	// Attribute is the property name.
	Attribute string

	// Value is the property value as seen on the side that has it.
	Value string

	// MissingIn names the side that lacks this fact.
	MissingIn Side

	// Comment1 and Comment2 carry annotations from a matching,
	// non-suppressing exception rule. Empty when no rule matched.
	Comment1 string
	Comment2 string
}

// ExceptionRule is one row of the curated suppression table. Loaded once per
// run; read-only during reconciliation.
type ExceptionRule struct {
	// Key is the full key the rule applies to.
	Key string

	// Comment1 and Comment2 are free-form annotations attached to surviving
	// diff items.
	Comment1 string
	Comment2 string

	// Suppress drops matching diff items from the report entirely.
	Suppress bool
}

// RuleSet maps full keys to exception rules. Key comparison is
// case-sensitive exact match.
type RuleSet map[string]ExceptionRule
