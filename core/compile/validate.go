package compile

import (
	"fmt"
	"regexp"
	"strings"
)

var attributePattern = regexp.MustCompile(`(?i)^[a-z][a-z0-9-]*$`)

// Violation describes one broken table invariant.
type Violation struct {
	// Key is the table key ("*" or an element name).
	Key string `json:"key"`
	// Attribute is the offending attribute, if any.
	Attribute string `json:"attribute,omitempty"`
	// Reason is a short description.
	Reason string `json:"reason"`
}

func (v Violation) String() string {
	if v.Attribute == "" {
		return fmt.Sprintf("%s: %s", v.Key, v.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", v.Key, v.Attribute, v.Reason)
}

// Validate checks the table invariants and returns every violation found, in key order.
func (t Table) Validate(c Classifier) []Violation {
	var violations []Violation

	global, ok := t[GlobalKey]
	if !ok {
		violations = append(violations, Violation{Key: GlobalKey, Reason: "missing global entry"})
	}
	globalSet := NewAttributeSet(global...)

	keys := append([]string{GlobalKey}, t.Elements()...)
	for _, key := range keys {
		list, ok := t[key]
		if !ok {
			continue
		}
		if key != GlobalKey && key != strings.TrimSpace(key) {
			violations = append(violations, Violation{Key: key, Reason: "element name not trimmed"})
		}
		for i, a := range list {
			if i > 0 {
				switch {
				case list[i-1] == a:
					violations = append(violations, Violation{Key: key, Attribute: a, Reason: "duplicate"})
				case list[i-1] > a:
					violations = append(violations, Violation{Key: key, Attribute: a, Reason: "not sorted"})
				}
			}
			if a != strings.TrimSpace(a) {
				violations = append(violations, Violation{Key: key, Attribute: a, Reason: "not trimmed"})
			}
			if !attributePattern.MatchString(a) {
				violations = append(violations, Violation{Key: key, Attribute: a, Reason: "not a plain attribute name"})
			}
			if c.IsForeign(a) {
				violations = append(violations, Violation{Key: key, Attribute: a, Reason: "foreign attribute"})
			}
			if key != GlobalKey && globalSet.Has(a) {
				violations = append(violations, Violation{Key: key, Attribute: a, Reason: "also global"})
			}
		}
	}

	return violations
}
