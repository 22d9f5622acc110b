package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Service owns the catalog store and exposes the pipeline operations the
// handler and CLI commands need.
type Service struct {
	store  *Store
	lookup *Lookup
	logger *zap.Logger
}

// NewService creates a catalog service reading from the given source.
func NewService(source Source, logger *zap.Logger) *Service {
	store := NewStore(source, logger)
	return &Service{
		store:  store,
		lookup: NewLookup(store),
		logger: logger,
	}
}

// Load triggers one load attempt (initial or reload).
func (s *Service) Load(ctx context.Context) error {
	return s.store.Load(ctx)
}

// Status reports the store lifecycle state and last load error, if any.
func (s *Service) Status() (Status, error) {
	return s.store.Status()
}

// Lookup returns the read facade over the compiled dataset.
func (s *Service) Lookup() *Lookup {
	return s.lookup
}

// ValidateOnly runs fetch and validate without publishing anything,
// returning the full violation report. Used by the offline CLI check.
func (s *Service) ValidateOnly(ctx context.Context) (*Report, error) {
	raw, err := Load(ctx, s.store.source)
	if err != nil {
		return nil, err
	}
	return Validate(raw), nil
}
