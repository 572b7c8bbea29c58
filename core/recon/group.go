package recon

// Group aggregates normalized records by group key into a Population.
//
// On attribute collision within a group key the first-encountered value wins
// and later duplicates are dropped silently. The rule is intentionally
// order-preserving with respect to the input slice, so callers that need a
// specific winner must order their records accordingly.
func Group(records []Record) *Population {
	pop := &Population{
		Entities:   make(map[string]Entity),
		Identities: make(map[string]map[string]struct{}),
	}

	for _, r := range records {
		key := r.GroupKey()

		entity, ok := pop.Entities[key]
		if !ok {
			entity = Entity{
				GroupKey:   key,
				Dimension:  r.Dimension,
				Identity:   r.Identity,
				Attributes: make(map[string]string),
			}
		}

		if _, exists := entity.Attributes[r.Attribute]; !exists {
			entity.Attributes[r.Attribute] = r.Value
		}
		pop.Entities[key] = entity

		ids, ok := pop.Identities[r.Dimension]
		if !ok {
			ids = make(map[string]struct{})
			pop.Identities[r.Dimension] = ids
		}
		ids[r.Identity] = struct{}{}
	}

	return pop
}
