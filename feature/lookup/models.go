package lookup

// ElementReport lists the attributes allowed on one element.
type ElementReport struct {
	// Element is the element name.
	Element string `json:"element"`
	// Global holds the attributes allowed on every element.
	Global []string `json:"global"`
	// Specific holds the attributes allowed on this element only.
	Specific []string `json:"specific"`
	// All is Global and Specific combined, sorted.
	All []string `json:"all"`
}
