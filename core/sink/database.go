package sink

import (
	"context"
	"fmt"
	"sort"

	"element-attributes/core/compile"

	"gorm.io/gorm"
)

// AttributeRow is one allowed (element, attribute) pair.
type AttributeRow struct {
	ID        uint   `gorm:"primaryKey;column:id"`
	Element   string `gorm:"column:element;type:varchar(64);not null;index:idx_element_attribute,unique"`
	Attribute string `gorm:"column:attribute;type:varchar(64);not null;default:'';index:idx_element_attribute,unique"`
	RunID     string `gorm:"column:run_id;type:varchar(36);not null"`
}

// TableName returns the table used for the compiled rows.
func (AttributeRow) TableName() string {
	return "element_attributes"
}

// RowColumns lists the columns AttributeRow needs.
var RowColumns = []string{"id", "element", "attribute", "run_id"}

// DatabaseSink stores the table as rows.
type DatabaseSink struct {
	db        *gorm.DB
	batchSize int
}

var (
	_ Sink   = (*DatabaseSink)(nil)
	_ Reader = (*DatabaseSink)(nil)
)

// NewDatabaseSink creates a DatabaseSink.
func NewDatabaseSink(db *gorm.DB) *DatabaseSink {
	return &DatabaseSink{db: db, batchSize: 500}
}

// Name returns "database".
func (s *DatabaseSink) Name() string {
	return "database"
}

// Migrate creates or updates the element_attributes table.
func (s *DatabaseSink) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&AttributeRow{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", AttributeRow{}.TableName(), err)
	}
	return nil
}

// Write replaces every row in one transaction. An element without attributes is
// stored as a single row with an empty attribute so the element survives a Read.
func (s *DatabaseSink) Write(ctx context.Context, t compile.Table, runID string) error {
	var rows []AttributeRow
	for _, a := range t[compile.GlobalKey] {
		rows = append(rows, AttributeRow{Element: compile.GlobalKey, Attribute: a, RunID: runID})
	}
	for _, element := range t.Elements() {
		if len(t[element]) == 0 {
			rows = append(rows, AttributeRow{Element: element, RunID: runID})
			continue
		}
		for _, a := range t[element] {
			rows = append(rows, AttributeRow{Element: element, Attribute: a, RunID: runID})
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&AttributeRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", AttributeRow{}.TableName(), err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, s.batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert rows: %w", err)
		}
		return nil
	})
}

// Read rebuilds the table from the rows.
func (s *DatabaseSink) Read(ctx context.Context) (compile.Table, error) {
	var rows []AttributeRow
	if err := s.db.WithContext(ctx).Order("element, attribute").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", AttributeRow{}.TableName(), err)
	}

	t := compile.Table{compile.GlobalKey: {}}
	for _, r := range rows {
		if _, ok := t[r.Element]; !ok {
			t[r.Element] = []string{}
		}
		if r.Attribute != "" {
			t[r.Element] = append(t[r.Element], r.Attribute)
		}
	}
	// collations differ between drivers
	for _, list := range t {
		sort.Strings(list)
	}
	return t, nil
}
