package compile

import "sort"

// GlobalKey is the reserved Table key holding attributes allowed on every element.
const GlobalKey = "*"

// AttributeSet is a set of attribute names.
type AttributeSet map[string]struct{}

// NewAttributeSet creates a set holding names.
func NewAttributeSet(names ...string) AttributeSet {
	s := make(AttributeSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s AttributeSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in ascending order. It never returns nil.
func (s AttributeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// AttributeMap maps element names to the attributes one source allows on them.
type AttributeMap map[string]AttributeSet

// Add records attrs for element, creating the element entry when needed.
func (m AttributeMap) Add(element string, attrs ...string) {
	set, ok := m[element]
	if !ok {
		set = make(AttributeSet, len(attrs))
		m[element] = set
	}
	for _, a := range attrs {
		set[a] = struct{}{}
	}
}

// Elements returns the element names in ascending order.
func (m AttributeMap) Elements() []string {
	out := make([]string, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy.
func (m AttributeMap) Clone() AttributeMap {
	out := make(AttributeMap, len(m))
	for e, set := range m {
		cp := make(AttributeSet, len(set))
		for a := range set {
			cp[a] = struct{}{}
		}
		out[e] = cp
	}
	return out
}

// Contribution is one source's extracted map together with its global set.
type Contribution struct {
	// Source is the name of the source that produced Map.
	Source string
	// Map is the per-source element -> attributes map.
	Map AttributeMap
	// Globals holds the attributes present on every element of Map.
	Globals AttributeSet
}

// Table is the compiled lookup table: GlobalKey plus every element name, each
// mapped to a sorted, duplicate-free list of attribute names.
type Table map[string][]string

// Elements returns the element keys (GlobalKey excluded) in ascending order.
func (t Table) Elements() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		if k != GlobalKey {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Lookup returns the global attributes and the attributes specific to element.
// ok is false when the table does not know the element.
func (t Table) Lookup(element string) (global, specific []string, ok bool) {
	global = t[GlobalKey]
	if element == GlobalKey {
		return global, nil, true
	}
	specific, ok = t[element]
	return global, specific, ok
}

// Classifier decides whether an attribute is governed by another specification.
// *filter.Filter implements it.
type Classifier interface {
	IsForeign(name string) bool
}
