package integrity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"element-attributes/core/compile"
	"element-attributes/core/database"
	"element-attributes/core/filter"
	"element-attributes/core/sink"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type staticReader struct {
	table compile.Table
	err   error
}

func (r staticReader) Read(context.Context) (compile.Table, error) {
	return r.table, r.err
}

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestNewTableReport(t *testing.T) {
	table := compile.Table{
		"*":      {"class", "id"},
		"circle": {"cx", "cy", "r"},
		"g":      {},
	}

	report := NewTableReport(table, filter.Default)
	assert.True(t, report.Valid())
	assert.Equal(t, 2, report.Elements)
	assert.Equal(t, 2, report.Global)
	assert.Equal(t, 3, report.Pairs)
	assert.Equal(t, []string{"g"}, report.EmptyElements)
}

func TestNewTableReport_Violations(t *testing.T) {
	table := compile.Table{
		"*":    {"id"},
		"rect": {"id", "onclick", "x"},
	}

	report := NewTableReport(table, filter.Default)
	assert.False(t, report.Valid())
	assert.Contains(t, report.Violations, compile.Violation{Key: "rect", Attribute: "id", Reason: "also global"})
	assert.Contains(t, report.Violations, compile.Violation{Key: "rect", Attribute: "onclick", Reason: "foreign attribute"})
}

func TestService_CheckSchema(t *testing.T) {
	t.Run("NoDatabase", func(t *testing.T) {
		svc := NewService(staticReader{}, filter.Default, nil, zap.NewNop())
		_, err := svc.CheckSchema()
		assert.ErrorIs(t, err, ErrNoDatabase)
	})

	t.Run("MissingTable", func(t *testing.T) {
		svc := NewService(staticReader{}, filter.Default, setupDB(t), zap.NewNop())
		report, err := svc.CheckSchema()
		require.NoError(t, err)
		assert.Equal(t, sink.RowColumns, report.Missing)
	})

	t.Run("Migrated", func(t *testing.T) {
		db := setupDB(t)
		require.NoError(t, sink.NewDatabaseSink(db).Migrate(context.Background()))

		svc := NewService(staticReader{}, filter.Default, db, zap.NewNop())
		report, err := svc.CheckSchema()
		require.NoError(t, err)
		assert.True(t, report.Valid())
		assert.Equal(t, "element_attributes", report.Table)
	})
}

func setupTestApp(reader sink.Reader, db *gorm.DB) *fiber.App {
	app := fiber.New()
	feature := NewFeature(reader, filter.Default, db, zap.NewNop())
	_ = feature.Load(app)
	return app
}

func TestHandleIntegrityCheck(t *testing.T) {
	reader := staticReader{table: compile.Table{"*": {"id"}, "rect": {"x"}}}
	app := setupTestApp(reader, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["table"]["status"])
	assert.Equal(t, "skipped", body["schema"]["status"])
}

func TestHandleTableCheck(t *testing.T) {
	t.Run("Violations", func(t *testing.T) {
		app := setupTestApp(staticReader{table: compile.Table{"rect": {"x"}}}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/table", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report TableReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		require.Len(t, report.Violations, 1)
		assert.Equal(t, "missing global entry", report.Violations[0].Reason)
	})

	t.Run("ReadFailure", func(t *testing.T) {
		app := setupTestApp(staticReader{err: errors.New("no such file")}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/table", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestHandleSchemaCheck(t *testing.T) {
	t.Run("NoDatabase", func(t *testing.T) {
		app := setupTestApp(staticReader{}, nil)
		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Migrated", func(t *testing.T) {
		db := setupDB(t)
		require.NoError(t, sink.NewDatabaseSink(db).Migrate(context.Background()))
		app := setupTestApp(staticReader{}, db)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report SchemaReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Empty(t, report.Missing)
	})
}
