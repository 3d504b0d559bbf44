package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"element-attributes/core/artifact"
	"element-attributes/core/compile"
)

// FileSink writes the encoded artifact to a local path.
type FileSink struct {
	Path   string
	Format artifact.Format
}

var (
	_ Sink   = (*FileSink)(nil)
	_ Reader = (*FileSink)(nil)
)

// NewFileSink creates a FileSink.
func NewFileSink(path string, format artifact.Format) *FileSink {
	return &FileSink{Path: path, Format: format}
}

// Name returns "file".
func (s *FileSink) Name() string {
	return "file"
}

// Write encodes t and replaces the file through a temporary file and a rename.
func (s *FileSink) Write(_ context.Context, t compile.Table, _ string) error {
	data, err := artifact.Encode(t, s.Format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.Path, err)
	}
	return nil
}

// Read decodes the file. An empty Format is detected from the content.
func (s *FileSink) Read(_ context.Context) (compile.Table, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	format := s.Format
	if format == "" {
		format = artifact.DetectFormat(data)
	}
	return artifact.Decode(data, format)
}
