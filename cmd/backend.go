package cmd

import (
	"context"
	"fmt"

	"element-attributes/core/artifact"
	"element-attributes/core/config"
	"element-attributes/core/database"
	"element-attributes/core/server"
	"element-attributes/core/sink"
	"element-attributes/core/storage"

	"gorm.io/gorm"
)

// openReader returns the reader for backend. The database handle is returned when one
// was opened so callers can reuse it.
func openReader(ctx context.Context, cfg *config.Config, backend string) (sink.Reader, *gorm.DB, error) {
	switch backend {
	case server.BackendFile:
		// An empty format lets the file sink detect it
		return sink.NewFileSink(cfg.Output.Path, ""), nil, nil

	case server.BackendStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		format, err := artifact.ParseFormat(cfg.Output.Format)
		if err != nil {
			return nil, nil, err
		}
		return sink.NewStorageSink(client, cfg.Storage, format), nil, nil

	case server.BackendDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		s := sink.NewDatabaseSink(db)
		if err := s.Migrate(ctx); err != nil {
			return nil, nil, err
		}
		return s, db, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want file, storage or database)", backend)
	}
}
