package lookup

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"element-attributes/core/compile"
	"element-attributes/core/sink"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrUnknownElement is returned for elements the table does not list.
var ErrUnknownElement = errors.New("unknown element")

// Service answers lookups against the persisted table.
type Service struct {
	reader sink.Reader
	ttl    time.Duration
	logger *zap.Logger

	mu     sync.RWMutex
	table  compile.Table
	loaded time.Time
	sf     singleflight.Group
}

// NewService creates a lookup service. A zero ttl reads the table on every call.
func NewService(reader sink.Reader, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{reader: reader, ttl: ttl, logger: logger}
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

// Table returns the current table.
func (s *Service) Table(ctx context.Context) (compile.Table, error) {
	s.mu.RLock()
	table, loaded := s.table, s.loaded
	s.mu.RUnlock()

	if table != nil && s.ttl > 0 && time.Since(loaded) < s.ttl {
		return table, nil
	}

	// Callers share the load, so one cancelled request must not fail the others
	loadCtx := context.WithoutCancel(ctx)
	result, err, _ := s.sf.Do("table", func() (any, error) {
		t, err := s.reader.Read(loadCtx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.table, s.loaded = t, time.Now()
		s.mu.Unlock()
		s.logger.Debug("Loaded table", zap.Int("elements", len(t.Elements())))
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(compile.Table), nil
}

// Invalidate drops the cached table.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.table = nil
	s.mu.Unlock()
}

// Lookup returns the attributes allowed on element.
func (s *Service) Lookup(ctx context.Context, element string) (*ElementReport, error) {
	table, err := s.Table(ctx)
	if err != nil {
		return nil, err
	}

	global, specific, ok := table.Lookup(element)
	if !ok {
		return nil, ErrUnknownElement
	}

	all := make([]string, 0, len(global)+len(specific))
	all = append(all, global...)
	all = append(all, specific...)
	sort.Strings(all)

	return &ElementReport{
		Element:  element,
		Global:   nonNil(global),
		Specific: nonNil(specific),
		All:      all,
	}, nil
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
