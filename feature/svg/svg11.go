package svg

import (
	"context"

	"element-attributes/core/compile"
	"element-attributes/core/fetch"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// SVG11 extracts the SVG 1.1 attribute index.
type SVG11 struct {
	document
}

var _ compile.Source = (*SVG11)(nil)

// NewSVG11 creates the SVG 1.1 adapter.
func NewSVG11(url string, client fetch.Client, logger *zap.Logger) *SVG11 {
	return &SVG11{document{name: "svg11", url: url, client: client, logger: logger}}
}

// Name returns the source identifier.
func (s *SVG11) Name() string {
	return s.name
}

// Extract associates every element name in a property row with every attribute name in it.
func (s *SVG11) Extract(ctx context.Context) (compile.AttributeMap, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.rows(doc, ".property-table tr")
	if err != nil {
		return nil, err
	}

	m := make(compile.AttributeMap)
	rows.Each(func(_ int, row *goquery.Selection) {
		attributes := texts(row.Find(".attr-name"), stripQuotes)
		for _, element := range texts(row.Find(".element-name"), stripQuotes) {
			m.Add(element, attributes...)
		}
	})

	return s.done(m, rows.Length()), nil
}
