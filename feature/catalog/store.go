package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Status is the lifecycle state of the catalog store.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// ErrNotLoaded is returned by every lookup that runs before a load has
// completed successfully. Lookups never degrade to empty results when no
// dataset has been published.
var ErrNotLoaded = errors.New("catalog: data not loaded")

// Store coordinates the load->validate->compile pipeline and holds the one
// live compiled dataset. It has a single writer: concurrent Load calls are
// coalesced into one flight, and the publish step runs under a mutex.
// Readers always see the last committed snapshot; a failed reload keeps the
// previous good dataset available.
type Store struct {
	source Source
	logger *zap.Logger

	mu      sync.RWMutex
	status  Status
	lastErr error
	dataset *Dataset

	sf singleflight.Group
}

// NewStore creates an idle store reading from the given source.
func NewStore(source Source, logger *zap.Logger) *Store {
	return &Store{
		source: source,
		logger: logger,
		status: StatusIdle,
	}
}

// Status returns the current lifecycle state and, in the error state, the
// failure of the most recent load attempt.
func (s *Store) Status() (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.lastErr
}

// Dataset returns the last committed snapshot. It fails with ErrNotLoaded
// until the first successful load, including while that load is in flight.
func (s *Store) Dataset() (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil, ErrNotLoaded
	}
	return s.dataset, nil
}

// Load runs one full pipeline pass: fetch, validate, compile, publish.
// Concurrent callers share a single in-flight attempt. A retrieval failure
// or an invalid snapshot leaves any previously published dataset in place
// and moves the store to the error state.
func (s *Store) Load(ctx context.Context) error {
	_, err, _ := s.sf.Do("load", func() (any, error) {
		return nil, s.load(ctx)
	})
	return err
}

func (s *Store) load(ctx context.Context) error {
	start := time.Now()

	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()

	raw, err := Load(ctx, s.source)
	if err != nil {
		s.fail(fmt.Errorf("load failed: %w", err))
		return fmt.Errorf("load failed: %w", err)
	}

	report := Validate(raw)
	snapshot, err := report.Snapshot()
	if err != nil {
		invalid := fmt.Errorf("%w: %s", err, report.Summary())
		s.fail(invalid)
		return invalid
	}

	dataset := Compile(snapshot)

	s.mu.Lock()
	s.dataset = dataset
	s.status = StatusReady
	s.lastErr = nil
	s.mu.Unlock()

	s.logger.Info("Catalog loaded",
		zap.Int("items", len(dataset.Items)),
		zap.Int("buildings", len(dataset.Buildings)),
		zap.Int("recipes", len(dataset.Recipes)),
		zap.Int("rails", len(dataset.Rails)),
		zap.Int("corporations", len(dataset.Corporations)),
		zap.Duration("took", time.Since(start)),
	)

	return nil
}

// fail records a failed attempt without touching the committed dataset.
func (s *Store) fail(err error) {
	s.mu.Lock()
	s.status = StatusError
	s.lastErr = err
	s.mu.Unlock()

	s.logger.Error("Catalog load failed", zap.Error(err))
}
