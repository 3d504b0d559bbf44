package svg

// Config holds the document locations.
type Config struct {
	// SVG11URL is the SVG 1.1 attribute index.
	SVG11URL string `mapstructure:"svg11_url" default:"https://www.w3.org/TR/SVG11/attindex.html"`
	// Tiny12URL is the SVG Tiny 1.2 attribute table.
	Tiny12URL string `mapstructure:"tiny12_url" default:"https://www.w3.org/TR/SVGTiny12/attributeTable.html"`
	// SVG2URL is the SVG 2 attribute index.
	SVG2URL string `mapstructure:"svg2_url" default:"https://www.w3.org/TR/SVG2/attindex.html"`
}
