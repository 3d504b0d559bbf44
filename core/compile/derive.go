package compile

// DeriveGlobals returns the attributes present on every element of m.
// Foreign attributes are removed from the candidate universe first. An empty map
// yields an empty set.
func DeriveGlobals(m AttributeMap, c Classifier) AttributeSet {
	globals := make(AttributeSet)
	if len(m) == 0 {
		return globals
	}

	// Track all attributes
	all := make(AttributeSet)
	for _, attrs := range m {
		for a := range attrs {
			if !c.IsForeign(a) {
				all[a] = struct{}{}
			}
		}
	}

	for a := range all {
		global := true
		for _, attrs := range m {
			if !attrs.Has(a) {
				global = false
				break
			}
		}
		if global {
			globals[a] = struct{}{}
		}
	}

	return globals
}

// Contribute builds a Contribution for one source's map.
func Contribute(source string, m AttributeMap, c Classifier) Contribution {
	return Contribution{
		Source:  source,
		Map:     m,
		Globals: DeriveGlobals(m, c),
	}
}
