package reconcile

// ReconcileResult is the provenance of a single element.
type ReconcileResult struct {
	// Element is the element name.
	Element string `json:"element"`

	// Sources lists the sources defining the element, in source order.
	Sources []string `json:"sources"`

	// Missing lists the sources that do not define the element.
	Missing []string `json:"missing"`

	// Attributes maps each non-foreign attribute seen on the element to the sources listing it.
	Attributes map[string][]string `json:"attributes"`
}

// Shared reports whether every source defines the element.
func (r *ReconcileResult) Shared() bool {
	return len(r.Missing) == 0
}

// Report contains the per-element results and aggregate counts.
type Report struct {
	// Sources lists the source names in source order.
	Sources []string `json:"sources"`

	// Results contains one entry per element, sorted by element name.
	Results []ReconcileResult `json:"results"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a report.
type Summary struct {
	// TotalElements is the number of distinct elements over all sources.
	TotalElements int `json:"total_elements"`

	// Shared counts elements defined by every source.
	Shared int `json:"shared"`

	// PerSource counts the elements each source defines.
	PerSource map[string]int `json:"per_source"`

	// Unique counts, per source, the elements no other source defines.
	Unique map[string]int `json:"unique"`
}
