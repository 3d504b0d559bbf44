package compile

import "context"

// Source fetches one specification document and extracts its element -> attributes map.
// Implementations must return an error rather than an empty map when the document
// no longer has the expected shape.
type Source interface {
	// Name returns a short identifier used in logs and errors (e.g., "svg11").
	Name() string

	// Extract performs exactly one fetch and returns a map owned by the caller.
	Extract(ctx context.Context) (AttributeMap, error)
}

// Correction adds attributes to an element after extraction, for documents with
// known gaps.
type Correction struct {
	Element    string
	Attributes []string
}

// Apply adds the correction's attributes to m unconditionally.
func (c Correction) Apply(m AttributeMap) {
	m.Add(c.Element, c.Attributes...)
}
