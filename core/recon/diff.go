package recon

import "sort"

// Diff compares two entity populations and returns entity-level and
// attribute-level discrepancies. It never mutates its inputs.
//
// Phase 1 (identity level) only considers dimensions present in both
// populations: a dimension absent from one side entirely means the source is
// simply not tracked there, which is an upstream concern, not a
// reconciliation finding. An identity present on just one side is reported
// once per attribute it carries, tagged as missing in the other side, and is
// excluded from phase 2 so a whole-identity gap does not drown the report in
// per-attribute noise.
//
// Phase 2 (attribute level) runs for identities present on both sides:
// attributes present on only one side are reported as missing in the other;
// a value conflict emits two items, one per side, each carrying that side's
// value so a reviewer sees both variants. Equal values are not reported.
//
// Output is sorted by (dimension, identity, attribute, value, side) purely
// for stable presentation; the content is independent of map iteration
// order.
func Diff(popA, popB *Population) []DiffItem {
	items := []DiffItem{}

	for _, dimension := range sharedDimensions(popA, popB) {
		idsA := popA.Identities[dimension]
		idsB := popB.Identities[dimension]

		for id := range idsA {
			if _, ok := idsB[id]; !ok {
				items = append(items, entityItems(popA, dimension, id, SideB)...)
			}
		}
		for id := range idsB {
			if _, ok := idsA[id]; !ok {
				items = append(items, entityItems(popB, dimension, id, SideA)...)
			}
		}

		for id := range idsA {
			if _, ok := idsB[id]; !ok {
				continue
			}
			key := GroupKey(dimension, id)
			entityA, okA := popA.Entities[key]
			entityB, okB := popB.Entities[key]
			if !okA || !okB {
				continue
			}
			items = append(items, attributeItems(entityA, entityB)...)
		}
	}

	sortItems(items)
	return items
}

// sharedDimensions returns the dimensions present in both populations,
// sorted for deterministic traversal.
func sharedDimensions(popA, popB *Population) []string {
	shared := make([]string, 0)
	for dimension := range popA.Identities {
		if popB.HasDimension(dimension) {
			shared = append(shared, dimension)
		}
	}
	sort.Strings(shared)
	return shared
}

// entityItems emits one item per attribute of an identity that exists on
// only one side.
func entityItems(pop *Population, dimension, identity string, missingIn Side) []DiffItem {
	entity, ok := pop.Entities[GroupKey(dimension, identity)]
	if !ok {
		return nil
	}

	items := make([]DiffItem, 0, len(entity.Attributes))
	for attribute, value := range entity.Attributes {
		items = append(items, DiffItem{
			Dimension: dimension,
			Identity:  identity,
			Attribute: attribute,
			Value:     value,
			MissingIn: missingIn,
		})
	}
	return items
}

// attributeItems compares the attribute maps of two entities with the same
// group key.
func attributeItems(entityA, entityB Entity) []DiffItem {
	items := []DiffItem{}

	for attribute, valueA := range entityA.Attributes {
		valueB, inB := entityB.Attributes[attribute]
		switch {
		case !inB:
			items = append(items, DiffItem{
				Dimension: entityA.Dimension,
				Identity:  entityA.Identity,
				Attribute: attribute,
				Value:     valueA,
				MissingIn: SideB,
			})
		case valueA != valueB:
			// Both variants are reported, independently suppressible.
			items = append(items,
				DiffItem{
					Dimension: entityA.Dimension,
					Identity:  entityA.Identity,
					Attribute: attribute,
					Value:     valueA,
					MissingIn: SideB,
				},
				DiffItem{
					Dimension: entityB.Dimension,
					Identity:  entityB.Identity,
					Attribute: attribute,
					Value:     valueB,
					MissingIn: SideA,
				})
		}
	}

	for attribute, valueB := range entityB.Attributes {
		if _, inA := entityA.Attributes[attribute]; !inA {
			items = append(items, DiffItem{
				Dimension: entityB.Dimension,
				Identity:  entityB.Identity,
				Attribute: attribute,
				Value:     valueB,
				MissingIn: SideA,
			})
		}
	}

	return items
}

func sortItems(items []DiffItem) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Dimension != b.Dimension {
			return a.Dimension < b.Dimension
		}
		if a.Identity != b.Identity {
			return a.Identity < b.Identity
		}
		if a.Attribute != b.Attribute {
			return a.Attribute < b.Attribute
		}
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		return a.MissingIn < b.MissingIn
	})
}
