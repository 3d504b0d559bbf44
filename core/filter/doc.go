// Package filter decides which attribute names belong to another specification.
//
// Attributes governed elsewhere are never emitted in the compiled table. Three
// families are recognised:
//
//   - Accessible: WAI-ARIA states and properties, plus role.
//   - EventHandler: event handler content attributes (onclick, onbegin, ...).
//   - Namespaced: names prefixed with the ev, xml or xlink namespace.
//
// # Usage
//
//	if filter.IsForeign("xlink:href") {
//	    // skip
//	}
//
//	c := filter.Classify("aria-label")
//	fmt.Println(c.Kind) // accessible
package filter
