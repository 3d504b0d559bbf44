package compile

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Collect runs every source concurrently and returns their maps in input order.
// It waits for all sources; if any fails, the shared context is cancelled and the
// first error is returned with no partial result.
func Collect(ctx context.Context, sources []Source) ([]AttributeMap, error) {
	maps := make([]AttributeMap, len(sources))
	g, gctx := errgroup.WithContext(ctx)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			m, err := src.Extract(gctx)
			if err != nil {
				return err
			}
			if m == nil {
				return fmt.Errorf("%s: extract returned no map", src.Name())
			}
			maps[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return maps, nil
}

// Build collects every source, derives each source's globals and merges the result.
func Build(ctx context.Context, sources []Source, c Classifier) (Table, error) {
	table, _, err := BuildWithContributions(ctx, sources, c)
	return table, err
}

// BuildWithContributions is Build that also returns the per-source contributions,
// in source order, for reporting.
func BuildWithContributions(ctx context.Context, sources []Source, c Classifier) (Table, []Contribution, error) {
	maps, err := Collect(ctx, sources)
	if err != nil {
		return nil, nil, err
	}

	contribs := make([]Contribution, len(sources))
	for i, src := range sources {
		contribs[i] = Contribute(src.Name(), maps[i], c)
	}

	return Merge(contribs, c), contribs, nil
}
