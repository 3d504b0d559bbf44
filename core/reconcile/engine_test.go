package reconcile

import (
	"testing"

	"element-attributes/core/compile"
	"element-attributes/core/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contributions() []compile.Contribution {
	svg11 := compile.AttributeMap{}
	svg11.Add("circle", "id", "cx", "onclick")
	svg11.Add("font", "id", "horiz-adv-x")

	tiny12 := compile.AttributeMap{}
	tiny12.Add("circle", "id", "cx")
	tiny12.Add("textArea", "id")

	svg2 := compile.AttributeMap{}
	svg2.Add("circle", "id", "cx", "pathLength")

	return []compile.Contribution{
		compile.Contribute("svg11", svg11, filter.Default),
		compile.Contribute("tiny12", tiny12, filter.Default),
		compile.Contribute("svg2", svg2, filter.Default),
	}
}

func TestReconcileAll(t *testing.T) {
	report := ReconcileAll(contributions(), filter.Default)

	assert.Equal(t, []string{"svg11", "tiny12", "svg2"}, report.Sources)
	require.Len(t, report.Results, 3)
	assert.Equal(t, "circle", report.Results[0].Element)
	assert.Equal(t, "font", report.Results[1].Element)
	assert.Equal(t, "textArea", report.Results[2].Element)

	assert.Equal(t, 3, report.Summary.TotalElements)
	assert.Equal(t, 1, report.Summary.Shared)
	assert.Equal(t, map[string]int{"svg11": 2, "tiny12": 2, "svg2": 1}, report.Summary.PerSource)
	assert.Equal(t, map[string]int{"svg11": 1, "tiny12": 1, "svg2": 0}, report.Summary.Unique)
}

func TestReconcileAll_AttributeProvenance(t *testing.T) {
	report := ReconcileAll(contributions(), filter.Default)
	circle := report.Results[0]

	assert.True(t, circle.Shared())
	assert.Empty(t, circle.Missing)
	assert.Equal(t, []string{"svg11", "tiny12", "svg2"}, circle.Attributes["cx"])
	assert.Equal(t, []string{"svg2"}, circle.Attributes["pathLength"])
	assert.NotContains(t, circle.Attributes, "onclick")
}

func TestReconcileAll_Empty(t *testing.T) {
	report := ReconcileAll(nil, filter.Default)
	assert.Empty(t, report.Results)
	assert.Equal(t, 0, report.Summary.TotalElements)
}

func TestReconcileOne(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		result, ok := ReconcileOne(contributions(), filter.Default, "font")
		require.True(t, ok)
		assert.Equal(t, []string{"svg11"}, result.Sources)
		assert.Equal(t, []string{"tiny12", "svg2"}, result.Missing)
		assert.False(t, result.Shared())
	})

	t.Run("NotFound", func(t *testing.T) {
		_, ok := ReconcileOne(contributions(), filter.Default, "blink")
		assert.False(t, ok)
	})
}
