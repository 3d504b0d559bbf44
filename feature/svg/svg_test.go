package svg_test

import (
	"context"
	"errors"
	"testing"

	"element-attributes/core/compile"
	"element-attributes/core/fetch/mocks"
	"element-attributes/feature/svg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const svg11Page = `<!DOCTYPE html>
<html><body>
<table class="property-table">
  <tr>
    <td><span class="attr-name">‘cx’</span>, <span class="attr-name">‘cy’</span>, <span class="attr-name">‘r’</span></td>
    <td><span class="element-name">‘circle’</span></td>
  </tr>
  <tr>
    <td><span class="attr-name">‘x’</span> <span class="attr-name">‘onclick’</span></td>
    <td><span class="element-name">‘rect’</span> <span class="element-name"> ‘image’ </span></td>
  </tr>
  <tr><th>Attribute</th><th>Elements</th></tr>
</table>
</body></html>`

const tiny12Page = `<!DOCTYPE html>
<html><body>
<div id="attributes">
  <div class="attribute">
    <span class="attribute-name">xlink:href</span>
    <span class="element">a</span><span class="element">image</span>
  </div>
  <div class="attribute">
    <span class="attribute-name">width</span>
    <span class="element">rect</span>
  </div>
</div>
</body></html>`

const tiny12MissingName = `<!DOCTYPE html>
<html><body>
<div id="attributes">
  <div class="attribute"><span class="attribute-name">x</span><span class="element">rect</span></div>
  <div class="attribute"><span class="element">rect</span></div>
</div>
</body></html>`

const svg2Page = `<!DOCTYPE html>
<html><body>
<table>
  <thead><tr><th>Name</th><th>Elements</th></tr></thead>
  <tbody>
    <tr>
      <td class="attr-name"><a><span>viewBox</span></a></td>
      <td class="element-name"><a><span>svg</span></a>, <a><span>symbol</span></a></td>
    </tr>
    <tr>
      <td class="attr-name"><span>refX</span></td>
      <td class="element-name"><span>marker</span></td>
    </tr>
  </tbody>
</table>
</body></html>`

func newMockClient(url string, body string) *mocks.Client {
	client := new(mocks.Client)
	client.On("Get", mock.Anything, url).Return([]byte(body), nil)
	return client
}

func TestSVG11_Extract(t *testing.T) {
	client := newMockClient("svg11", svg11Page)
	m, err := svg.NewSVG11("svg11", client, zap.NewNop()).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"circle", "image", "rect"}, m.Elements())
	assert.Equal(t, []string{"cx", "cy", "r"}, m["circle"].Sorted())
	assert.Equal(t, []string{"onclick", "x"}, m["rect"].Sorted())
	assert.Equal(t, []string{"onclick", "x"}, m["image"].Sorted())
	client.AssertNumberOfCalls(t, "Get", 1)
}

func TestSVG11_NoRows(t *testing.T) {
	client := newMockClient("svg11", `<html><body><table><tr><td>nothing</td></tr></table></body></html>`)
	_, err := svg.NewSVG11("svg11", client, zap.NewNop()).Extract(context.Background())

	var structural *compile.StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, "svg11", structural.Source)
	assert.Equal(t, ".property-table tr", structural.Selector)
}

func TestTiny12_Extract(t *testing.T) {
	client := newMockClient("tiny", tiny12Page)
	m, err := svg.NewTiny12("tiny", client, zap.NewNop()).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "image", "rect"}, m.Elements())
	assert.Equal(t, []string{"xlink:href"}, m["a"].Sorted())
	assert.Equal(t, []string{"width"}, m["rect"].Sorted())
}

func TestTiny12_MissingName(t *testing.T) {
	client := newMockClient("tiny", tiny12MissingName)
	_, err := svg.NewTiny12("tiny", client, zap.NewNop()).Extract(context.Background())

	var missing *compile.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 1, missing.Row)
	assert.Equal(t, ".attribute-name", missing.Field)
}

func TestTiny12_EmptyNameKeepsElements(t *testing.T) {
	page := `<div id="attributes">
  <div class="attribute"><span class="attribute-name"> </span><span class="element">foreignObject</span></div>
  <div class="attribute"><span class="attribute-name">x</span><span class="element">rect</span></div>
</div>`
	client := newMockClient("tiny", page)
	m, err := svg.NewTiny12("tiny", client, zap.NewNop()).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"foreignObject", "rect"}, m.Elements())
	assert.Empty(t, m["foreignObject"])
	assert.Equal(t, []string{"x"}, m["rect"].Sorted())
}

func TestTiny12_NoRows(t *testing.T) {
	client := newMockClient("tiny", `<html><body><div id="attributes"></div></body></html>`)
	_, err := svg.NewTiny12("tiny", client, zap.NewNop()).Extract(context.Background())

	var structural *compile.StructuralError
	assert.ErrorAs(t, err, &structural)
}

func TestSVG2_Extract(t *testing.T) {
	client := newMockClient("svg2", svg2Page)
	m, err := svg.NewSVG2("svg2", client, zap.NewNop()).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"marker", "svg", "symbol"}, m.Elements())
	assert.Equal(t, []string{"viewBox"}, m["svg"].Sorted())
	assert.Equal(t, []string{"refX"}, m["marker"].Sorted())
	assert.Equal(t, []string{"height", "viewBox", "width", "x", "y"}, m["symbol"].Sorted())
}

func TestSVG2_SymbolCorrectionWithoutSymbolRow(t *testing.T) {
	page := `<html><body><table><tbody>
<tr><td class="attr-name"><span>d</span></td><td class="element-name"><span>path</span></td></tr>
</tbody></table></body></html>`

	m, err := svg.NewSVG2("svg2", newMockClient("svg2", page), zap.NewNop()).Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"height", "width", "x", "y"}, m["symbol"].Sorted())
}

func TestSVG2_MissingName(t *testing.T) {
	page := `<html><body><table><tbody>
<tr><td class="attr-name">d</td><td class="element-name"><span>path</span></td></tr>
</tbody></table></body></html>`

	_, err := svg.NewSVG2("svg2", newMockClient("svg2", page), zap.NewNop()).Extract(context.Background())

	var missing *compile.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ".attr-name span", missing.Field)
}

func TestExtract_TransportError(t *testing.T) {
	refused := errors.New("connection refused")
	client := new(mocks.Client)
	client.On("Get", mock.Anything, mock.Anything).Return(nil, refused)

	for _, src := range svg.Sources(svg.Config{SVG11URL: "a", Tiny12URL: "b", SVG2URL: "c"}, client, zap.NewNop()) {
		t.Run(src.Name(), func(t *testing.T) {
			_, err := src.Extract(context.Background())

			var transport *compile.TransportError
			require.ErrorAs(t, err, &transport)
			assert.Equal(t, src.Name(), transport.Source)
			assert.ErrorIs(t, err, refused)
		})
	}
}

func TestSources(t *testing.T) {
	sources := svg.Sources(svg.Config{}, new(mocks.Client), zap.NewNop())
	require.Len(t, sources, 3)
	assert.Equal(t, "svg11", sources[0].Name())
	assert.Equal(t, "tiny12", sources[1].Name())
	assert.Equal(t, "svg2", sources[2].Name())
}
