package recon

import "strings"

// KeySeparator joins the parts of group and full keys. Every downstream
// stage (grouping, diffing, exception lookup) keys off these strings, so the
// separator and trimming rules must never change between producers.
const KeySeparator = " | "

// GroupKey builds the grouping key for a (dimension, identity) pair. Parts
// are trimmed so values that differ only in surrounding whitespace yield
// identical keys.
func GroupKey(dimension, identity string) string {
	return strings.TrimSpace(dimension) + KeySeparator + strings.TrimSpace(identity)
}

// FullKey builds the unique key for a single fact. It is used both for dedup
// and for exception table lookup, and must match the keys emitted into the
// suppression workbook.
func FullKey(dimension, identity, attribute, value string) string {
	return GroupKey(dimension, identity) +
		KeySeparator + strings.TrimSpace(attribute) +
		KeySeparator + strings.TrimSpace(value)
}

// GroupKey returns the record's grouping key.
func (r Record) GroupKey() string {
	return GroupKey(r.Dimension, r.Identity)
}

// FullKey returns the record's unique fact key.
func (r Record) FullKey() string {
	return FullKey(r.Dimension, r.Identity, r.Attribute, r.Value)
}

// FullKey reconstructs the fact key of a diff item for exception lookup.
func (d DiffItem) FullKey() string {
	return FullKey(d.Dimension, d.Identity, d.Attribute, d.Value)
}
