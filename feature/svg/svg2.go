package svg

import (
	"context"

	"element-attributes/core/compile"
	"element-attributes/core/fetch"

	"go.uber.org/zap"
)

// SymbolCorrection restores the geometry attributes the SVG 2 index omits on symbol.
var SymbolCorrection = compile.Correction{
	Element:    "symbol",
	Attributes: []string{"x", "y", "width", "height"},
}

// SVG2 extracts the SVG 2 attribute index.
type SVG2 struct {
	document
	corrections []compile.Correction
}

var _ compile.Source = (*SVG2)(nil)

// NewSVG2 creates the SVG 2 adapter with SymbolCorrection applied after extraction.
func NewSVG2(url string, client fetch.Client, logger *zap.Logger) *SVG2 {
	return &SVG2{
		document:    document{name: "svg2", url: url, client: client, logger: logger},
		corrections: []compile.Correction{SymbolCorrection},
	}
}

// Name returns the source identifier.
func (s *SVG2) Name() string {
	return s.name
}

// Extract reads one attribute per table row and the elements listed for it.
func (s *SVG2) Extract(ctx context.Context) (compile.AttributeMap, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.rows(doc, "tbody tr")
	if err != nil {
		return nil, err
	}

	m, err := recordRows(s.document, rows, ".attr-name span", ".element-name span")
	if err != nil {
		return nil, err
	}

	for _, c := range s.corrections {
		c.Apply(m)
		s.logger.Debug("Applied correction", zap.String("source", s.name), zap.String("element", c.Element), zap.Strings("attributes", c.Attributes))
	}
	return m, nil
}
