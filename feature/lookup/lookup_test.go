package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"element-attributes/core/compile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingReader struct {
	table compile.Table
	err   error
	reads atomic.Int32
}

func (r *countingReader) Read(ctx context.Context) (compile.Table, error) {
	r.reads.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.table, nil
}

func testTable() compile.Table {
	return compile.Table{
		"*":      {"class", "id"},
		"circle": {"cx", "cy", "r"},
		"g":      {},
	}
}

func TestService_Lookup(t *testing.T) {
	svc := NewService(&countingReader{table: testTable()}, time.Minute, zap.NewNop())

	report, err := svc.Lookup(context.Background(), "circle")
	require.NoError(t, err)
	assert.Equal(t, []string{"class", "id"}, report.Global)
	assert.Equal(t, []string{"cx", "cy", "r"}, report.Specific)
	assert.Equal(t, []string{"class", "cx", "cy", "id", "r"}, report.All)

	report, err = svc.Lookup(context.Background(), "g")
	require.NoError(t, err)
	assert.Equal(t, []string{}, report.Specific)

	_, err = svc.Lookup(context.Background(), "blink")
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestService_TableIsMemoized(t *testing.T) {
	reader := &countingReader{table: testTable()}
	svc := NewService(reader, time.Minute, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Table(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	_, err := svc.Table(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, reader.reads.Load(), int32(8))
	reads := reader.reads.Load()

	_, err = svc.Table(context.Background())
	require.NoError(t, err)
	assert.Equal(t, reads, reader.reads.Load())

	svc.Invalidate()
	_, err = svc.Table(context.Background())
	require.NoError(t, err)
	assert.Equal(t, reads+1, reader.reads.Load())
}

func TestService_CancelledCallerDoesNotFailLoad(t *testing.T) {
	reader := &countingReader{table: testTable()}
	svc := NewService(reader, time.Minute, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table, err := svc.Table(ctx)
	require.NoError(t, err)
	assert.Equal(t, testTable(), table)

	_, err = svc.Table(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), reader.reads.Load())
}

func TestService_ZeroTTLAlwaysReads(t *testing.T) {
	reader := &countingReader{table: testTable()}
	svc := NewService(reader, 0, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := svc.Table(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), reader.reads.Load())
}

func setupTestApp(reader *countingReader) *fiber.App {
	app := fiber.New()
	feature := NewFeature(reader, time.Minute, zap.NewNop())
	_ = feature.Load(app)
	return app
}

func TestHandleGetTable(t *testing.T) {
	app := setupTestApp(&countingReader{table: testTable()})

	resp, err := app.Test(httptest.NewRequest("GET", "/attributes", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"class", "id"}, body["*"])
	assert.Len(t, body, 3)
}

func TestHandleGetElement(t *testing.T) {
	app := setupTestApp(&countingReader{table: testTable()})

	t.Run("Known", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/attributes/circle", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report ElementReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, "circle", report.Element)
		assert.Equal(t, []string{"cx", "cy", "r"}, report.Specific)
	})

	t.Run("Unknown", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/attributes/blink", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandleReadFailure(t *testing.T) {
	app := setupTestApp(&countingReader{err: errors.New("bucket gone")})

	resp, err := app.Test(httptest.NewRequest("GET", "/attributes/circle", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "bucket gone", body["error"])
}

func TestFeature(t *testing.T) {
	feature := NewFeature(&countingReader{}, 0, zap.NewNop())
	assert.Equal(t, "lookup", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
