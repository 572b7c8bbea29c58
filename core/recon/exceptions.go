package recon

import "strings"

// ParseSuppressFlag interprets the "hide exception" literal of the
// suppression table. Only "yes" (case-insensitive, trimmed) suppresses;
// anything else, including an empty cell, does not. Key matching elsewhere
// stays case-sensitive so unrelated facts are never suppressed by accident.
func ParseSuppressFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

// Filter applies exception-based suppression to a diff list. An item whose
// reconstructed full key matches a suppressing rule is dropped entirely, not
// annotated. Items matching a non-suppressing rule gain its comments;
// absence of a rule leaves the comments empty.
//
// Filtering is idempotent: running the surviving items through the same rule
// set again yields the same result.
func Filter(items []DiffItem, rules RuleSet) []DiffItem {
	filtered := make([]DiffItem, 0, len(items))

	for _, item := range items {
		rule, ok := rules[item.FullKey()]
		if ok && rule.Suppress {
			continue
		}
		if ok {
			item.Comment1 = rule.Comment1
			item.Comment2 = rule.Comment2
		}
		filtered = append(filtered, item)
	}

	return filtered
}
