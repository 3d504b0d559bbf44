package sink

import (
	"context"

	"element-attributes/core/compile"
)

// Sink persists a compiled table.
type Sink interface {
	// Name identifies the sink in logs.
	Name() string
	// Write replaces the stored table with t. runID identifies the build.
	Write(ctx context.Context, t compile.Table, runID string) error
}

// Reader loads a previously persisted table.
type Reader interface {
	Read(ctx context.Context) (compile.Table, error)
}

// WriteAll writes t to every sink in order and stops at the first failure.
// Sinks after the failing one are not written, so callers put the local file last.
func WriteAll(ctx context.Context, sinks []Sink, t compile.Table, runID string) error {
	for _, s := range sinks {
		if err := s.Write(ctx, t, runID); err != nil {
			return err
		}
	}
	return nil
}
