package compile

import (
	"testing"

	"element-attributes/core/filter"

	"github.com/stretchr/testify/assert"
)

func TestAttributeMap(t *testing.T) {
	m := make(AttributeMap)
	m.Add("rect", "x", "y")
	m.Add("rect", "x", "width")
	m.Add("g")

	assert.Equal(t, []string{"g", "rect"}, m.Elements())
	assert.Equal(t, []string{"width", "x", "y"}, m["rect"].Sorted())
	assert.Empty(t, m["g"])

	cp := m.Clone()
	cp.Add("rect", "height")
	assert.False(t, m["rect"].Has("height"))
}

func TestCorrectionApply(t *testing.T) {
	m := make(AttributeMap)
	m.Add("symbol", "viewBox")

	Correction{Element: "symbol", Attributes: []string{"x", "y", "width", "height"}}.Apply(m)

	assert.Equal(t, []string{"height", "viewBox", "width", "x", "y"}, m["symbol"].Sorted())
}

func TestDeriveGlobals(t *testing.T) {
	t.Run("SameAttributesOnEveryElement", func(t *testing.T) {
		m := make(AttributeMap)
		m.Add("circle", "cx", "cy", "r")
		m.Add("rect", "cx", "cy", "r")

		globals := DeriveGlobals(m, filter.Default)
		assert.Equal(t, []string{"cx", "cy", "r"}, globals.Sorted())

		table := Merge([]Contribution{{Source: "a", Map: m, Globals: globals}}, filter.Default)
		assert.Empty(t, table["circle"])
		assert.Empty(t, table["rect"])
		assert.Equal(t, []string{"cx", "cy", "r"}, table[GlobalKey])
	})

	t.Run("PartialOverlap", func(t *testing.T) {
		m := make(AttributeMap)
		m.Add("circle", "id", "class", "r")
		m.Add("rect", "id", "class", "width")

		assert.Equal(t, []string{"class", "id"}, DeriveGlobals(m, filter.Default).Sorted())
	})

	t.Run("ForeignNeverGlobal", func(t *testing.T) {
		m := make(AttributeMap)
		m.Add("circle", "id", "onclick", "xml:space")
		m.Add("rect", "id", "onclick", "xml:space")

		assert.Equal(t, []string{"id"}, DeriveGlobals(m, filter.Default).Sorted())
	})

	t.Run("EmptyMap", func(t *testing.T) {
		assert.Empty(t, DeriveGlobals(AttributeMap{}, filter.Default))
	})

	t.Run("ElementWithoutAttributes", func(t *testing.T) {
		m := make(AttributeMap)
		m.Add("circle", "id")
		m.Add("desc")

		assert.Empty(t, DeriveGlobals(m, filter.Default))
	})
}

func TestMerge(t *testing.T) {
	first := make(AttributeMap)
	first.Add("circle", "id", "cx", "onclick")
	first.Add("rect", "id", "x", "xlink:href")

	second := make(AttributeMap)
	second.Add("circle", "id", "r", "aria-label")
	second.Add("path", "d", "role")
	second.Add("text", "class")

	contribs := []Contribution{
		Contribute("first", first, filter.Default),
		Contribute("second", second, filter.Default),
	}
	table := Merge(contribs, filter.Default)

	assert.Equal(t, []string{"id"}, table[GlobalKey])
	assert.Equal(t, []string{"cx", "r"}, table["circle"])
	assert.Equal(t, []string{"x"}, table["rect"])
	assert.Equal(t, []string{"d"}, table["path"])
	assert.Equal(t, []string{"class"}, table["text"])
	assert.Empty(t, table.Validate(filter.Default))
}

func TestMerge_GlobalStaysDisjoint(t *testing.T) {
	// "lang" is global in the first source but element specific in the second.
	first := make(AttributeMap)
	first.Add("a", "lang")
	first.Add("b", "lang")

	second := make(AttributeMap)
	second.Add("a", "href", "lang")
	second.Add("c", "x")

	table := Merge([]Contribution{
		Contribute("first", first, filter.Default),
		Contribute("second", second, filter.Default),
	}, filter.Default)

	assert.Equal(t, []string{"lang"}, table[GlobalKey])
	assert.Equal(t, []string{"href"}, table["a"])
	assert.Equal(t, []string{}, table["b"])
	assert.Equal(t, []string{"x"}, table["c"])
}

func TestMerge_OrderIndependent(t *testing.T) {
	a := make(AttributeMap)
	a.Add("circle", "id", "cx")
	a.Add("rect", "id", "x")
	b := make(AttributeMap)
	b.Add("circle", "class", "r")
	b.Add("line", "class", "x1")
	c := make(AttributeMap)
	c.Add("symbol", "viewBox")

	ca := Contribute("a", a, filter.Default)
	cb := Contribute("b", b, filter.Default)
	cc := Contribute("c", c, filter.Default)

	forward := Merge([]Contribution{ca, cb, cc}, filter.Default)
	backward := Merge([]Contribution{cc, cb, ca}, filter.Default)
	assert.Equal(t, forward, backward)
}

func TestMerge_Empty(t *testing.T) {
	table := Merge(nil, filter.Default)
	assert.Equal(t, Table{GlobalKey: []string{}}, table)
}

func TestTableLookup(t *testing.T) {
	table := Table{
		GlobalKey: {"id"},
		"circle":  {"cx", "cy", "r"},
	}

	global, specific, ok := table.Lookup("circle")
	assert.True(t, ok)
	assert.Equal(t, []string{"id"}, global)
	assert.Equal(t, []string{"cx", "cy", "r"}, specific)

	_, _, ok = table.Lookup("blink")
	assert.False(t, ok)

	global, specific, ok = table.Lookup(GlobalKey)
	assert.True(t, ok)
	assert.Equal(t, []string{"id"}, global)
	assert.Nil(t, specific)

	assert.Equal(t, []string{"circle"}, table.Elements())
}
