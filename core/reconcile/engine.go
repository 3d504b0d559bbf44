package reconcile

import (
	"sort"

	"element-attributes/core/compile"
)

// ReconcileAll builds the union of element names over all contributions and
// returns a result for each, sorted by element name.
func ReconcileAll(contribs []compile.Contribution, c compile.Classifier) *Report {
	report := &Report{
		Sources: sourceNames(contribs),
		Results: []ReconcileResult{},
		Summary: Summary{
			PerSource: make(map[string]int, len(contribs)),
			Unique:    make(map[string]int, len(contribs)),
		},
	}
	for _, name := range report.Sources {
		report.Summary.PerSource[name] = 0
		report.Summary.Unique[name] = 0
	}

	union := buildUnion(contribs)
	keys := make([]string, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		result := buildResult(key, contribs, c)
		report.Results = append(report.Results, result)

		for _, name := range result.Sources {
			report.Summary.PerSource[name]++
		}
		if len(result.Sources) == 1 {
			report.Summary.Unique[result.Sources[0]]++
		}
		if result.Shared() {
			report.Summary.Shared++
		}
	}
	report.Summary.TotalElements = len(report.Results)

	return report
}

// ReconcileOne returns the result for a single element, or false when no source defines it.
func ReconcileOne(contribs []compile.Contribution, c compile.Classifier, element string) (*ReconcileResult, bool) {
	result := buildResult(element, contribs, c)
	if len(result.Sources) == 0 {
		return nil, false
	}
	return &result, true
}

// buildUnion creates a union of the element names of every contribution.
func buildUnion(contribs []compile.Contribution) map[string]struct{} {
	union := make(map[string]struct{})
	for _, contrib := range contribs {
		for element := range contrib.Map {
			union[element] = struct{}{}
		}
	}
	return union
}

// buildResult creates a ReconcileResult for a single element.
func buildResult(element string, contribs []compile.Contribution, c compile.Classifier) ReconcileResult {
	result := ReconcileResult{
		Element:    element,
		Sources:    []string{},
		Missing:    []string{},
		Attributes: make(map[string][]string),
	}

	for _, contrib := range contribs {
		attrs, ok := contrib.Map[element]
		if !ok {
			result.Missing = append(result.Missing, contrib.Source)
			continue
		}
		result.Sources = append(result.Sources, contrib.Source)

		for _, a := range attrs.Sorted() {
			if c.IsForeign(a) {
				continue
			}
			result.Attributes[a] = append(result.Attributes[a], contrib.Source)
		}
	}

	return result
}

func sourceNames(contribs []compile.Contribution) []string {
	names := make([]string, len(contribs))
	for i, contrib := range contribs {
		names[i] = contrib.Source
	}
	return names
}
