package integrity

import "element-attributes/core/compile"

// TableReport summarizes a table and lists its violations.
type TableReport struct {
	Elements      int                 `json:"elements"`
	Global        int                 `json:"global"`
	Pairs         int                 `json:"pairs"`
	EmptyElements []string            `json:"empty_elements"`
	Violations    []compile.Violation `json:"violations"`
}

// Valid reports whether the table has no violations.
func (r *TableReport) Valid() bool {
	return len(r.Violations) == 0
}

// NewTableReport validates t and counts its entries.
// Pairs counts element-specific (element, attribute) pairs.
func NewTableReport(t compile.Table, c compile.Classifier) *TableReport {
	report := &TableReport{
		Global:        len(t[compile.GlobalKey]),
		EmptyElements: []string{},
		Violations:    t.Validate(c),
	}
	if report.Violations == nil {
		report.Violations = []compile.Violation{}
	}

	for _, element := range t.Elements() {
		report.Elements++
		report.Pairs += len(t[element])
		if len(t[element]) == 0 {
			report.EmptyElements = append(report.EmptyElements, element)
		}
	}
	return report
}

// SchemaReport lists the columns missing from the attribute table.
type SchemaReport struct {
	Table   string   `json:"table"`
	Missing []string `json:"missing"`
}

// Valid reports whether no column is missing.
func (r *SchemaReport) Valid() bool {
	return len(r.Missing) == 0
}
