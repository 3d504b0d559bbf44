package svg

import (
	"context"
	"strings"

	"element-attributes/core/compile"
	"element-attributes/core/fetch"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Tiny12 extracts the SVG Tiny 1.2 attribute table.
type Tiny12 struct {
	document
}

var _ compile.Source = (*Tiny12)(nil)

// NewTiny12 creates the SVG Tiny 1.2 adapter.
func NewTiny12(url string, client fetch.Client, logger *zap.Logger) *Tiny12 {
	return &Tiny12{document{name: "tiny12", url: url, client: client, logger: logger}}
}

// Name returns the source identifier.
func (s *Tiny12) Name() string {
	return s.name
}

// Extract reads one attribute per block and the elements listed for it.
func (s *Tiny12) Extract(ctx context.Context) (compile.AttributeMap, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.rows(doc, "#attributes .attribute")
	if err != nil {
		return nil, err
	}

	return recordRows(s.document, rows, ".attribute-name", ".element")
}

// recordRows handles the "one attribute, many elements" layout shared by SVG Tiny 1.2 and SVG 2.
func recordRows(d document, rows *goquery.Selection, nameSelector, elementSelector string) (compile.AttributeMap, error) {
	m := make(compile.AttributeMap)
	var missing error

	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		name := row.Find(nameSelector).First()
		if name.Length() == 0 {
			missing = &compile.MissingFieldError{Source: d.name, Field: nameSelector, Row: i}
			return false
		}

		// Elements of a record with an empty name still count for the source
		attribute := strings.TrimSpace(name.Text())
		for _, element := range texts(row.Find(elementSelector), strings.TrimSpace) {
			if attribute == "" {
				m.Add(element)
				continue
			}
			m.Add(element, attribute)
		}
		return true
	})
	if missing != nil {
		return nil, missing
	}

	return d.done(m, rows.Length()), nil
}
