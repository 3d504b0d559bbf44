package svg

import (
	"element-attributes/core/compile"
	"element-attributes/core/fetch"

	"go.uber.org/zap"
)

// Sources returns the SVG 1.1, SVG Tiny 1.2 and SVG 2 adapters, in that order.
func Sources(cfg Config, client fetch.Client, logger *zap.Logger) []compile.Source {
	return []compile.Source{
		NewSVG11(cfg.SVG11URL, client, logger),
		NewTiny12(cfg.Tiny12URL, client, logger),
		NewSVG2(cfg.SVG2URL, client, logger),
	}
}
