package svg

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"element-attributes/core/compile"
	"element-attributes/core/fetch"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// document is the fetch + parse part shared by every adapter.
type document struct {
	name   string
	url    string
	client fetch.Client
	logger *zap.Logger
}

// load fetches and parses the document. Fetch failures become *compile.TransportError.
func (d *document) load(ctx context.Context) (*goquery.Document, error) {
	raw, err := d.client.Get(ctx, d.url)
	if err != nil {
		return nil, &compile.TransportError{Source: d.name, URL: d.url, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse document: %w", d.name, err)
	}

	d.logger.Debug("Fetched document", zap.String("source", d.name), zap.String("url", d.url), zap.Int("bytes", len(raw)))
	return doc, nil
}

// rows selects the records of a document, failing when there are none.
func (d *document) rows(doc *goquery.Document, selector string) (*goquery.Selection, error) {
	rows := doc.Find(selector)
	if rows.Length() == 0 {
		return nil, &compile.StructuralError{Source: d.name, Selector: selector}
	}
	return rows, nil
}

func (d *document) done(m compile.AttributeMap, rows int) compile.AttributeMap {
	d.logger.Info("Extracted attributes",
		zap.String("source", d.name),
		zap.Int("rows", rows),
		zap.Int("elements", len(m)),
	)
	return m
}

// texts returns the trimmed, non-empty text of every node in sel.
func texts(sel *goquery.Selection, clean func(string) string) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if v := clean(s.Text()); v != "" {
			out = append(out, v)
		}
	})
	return out
}

var quotes = strings.NewReplacer("‘", "", "’", "")

// stripQuotes removes typographic single quotes and surrounding whitespace.
func stripQuotes(v string) string {
	return strings.TrimSpace(quotes.Replace(v))
}
