package compile

// Merge unions all contributions into a Table.
//
// An attribute of source X is added to an element's list unless it is global in X
// or foreign. The GlobalKey entry is the union of every contribution's globals,
// minus foreign names, and is always present. An attribute global in X can still
// reach an element through another source Y where it is not global; such names are
// removed from element lists in a final pass so the GlobalKey entry stays disjoint
// from every element list.
func Merge(contribs []Contribution, c Classifier) Table {
	merged := make(AttributeMap)
	globals := make(AttributeSet)

	for _, contrib := range contribs {
		for g := range contrib.Globals {
			if !c.IsForeign(g) {
				globals[g] = struct{}{}
			}
		}

		for element, attrs := range contrib.Map {
			merged.Add(element)
			for a := range attrs {
				if contrib.Globals.Has(a) || c.IsForeign(a) {
					continue
				}
				merged[element][a] = struct{}{}
			}
		}
	}

	table := make(Table, len(merged)+1)
	table[GlobalKey] = globals.Sorted()
	for element, attrs := range merged {
		for g := range globals {
			delete(attrs, g)
		}
		table[element] = attrs.Sorted()
	}
	return table
}
