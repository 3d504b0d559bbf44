package integrity

import (
	"context"
	"errors"

	"element-attributes/core/compile"
	"element-attributes/core/database"
	"element-attributes/core/sink"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by CheckSchema when no database is configured.
var ErrNoDatabase = errors.New("database not configured")

// Service handles integrity checks.
type Service struct {
	reader     sink.Reader
	classifier compile.Classifier
	db         *gorm.DB
	logger     *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(reader sink.Reader, classifier compile.Classifier, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		reader:     reader,
		classifier: classifier,
		db:         db,
		logger:     logger,
	}
}

// CheckTable reads the persisted table and validates it.
func (s *Service) CheckTable(ctx context.Context) (*TableReport, error) {
	t, err := s.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	return NewTableReport(t, s.classifier), nil
}

// CheckSchema compares the attribute table columns with the ones the database sink writes.
func (s *Service) CheckSchema() (*SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	table := sink.AttributeRow{}.TableName()
	missing, err := database.MissingColumns(s.db, table, sink.RowColumns...)
	if err != nil {
		return nil, err
	}
	if missing == nil {
		missing = []string{}
	}
	return &SchemaReport{Table: table, Missing: missing}, nil
}
