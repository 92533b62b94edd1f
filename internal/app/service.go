// Package service provides the core business service that implements
// the dependencies required by the HTTP API: the roster import job and
// the score reconciliation job against the canonical team store.
package service

import (
	"context"
	"sync"

	repository "github.com/dexterix/rosterd/internal/adapters/repository"
	"github.com/dexterix/rosterd/internal/domain/model"
	"github.com/dexterix/rosterd/internal/domain/types"
	"github.com/dexterix/rosterd/pkg/logger"
	"github.com/dexterix/rosterd/pkg/metrics"
)

// Default job configuration constants.
const (
	defaultErrorListCap  = 10
	defaultMinSuffixLen  = 2
	defaultStoreCapacity = 1024
)

// Service implements the import and reconciliation jobs over a canonical
// team store.
type Service struct {
	mu sync.RWMutex

	store repository.Store

	// Configuration
	errorListCap  int
	minSuffixLen  int
	storeCapacity int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the canonical team store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithErrorListCap bounds the per-job error message list.
func WithErrorListCap(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.errorListCap = n
		}
	}
}

// WithMinSuffixLen sets the minimum identifier length for suffix matching.
func WithMinSuffixLen(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minSuffixLen = n
		}
	}
}

// WithStoreCapacity pre-sizes the default in-memory store.
func WithStoreCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.storeCapacity = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		errorListCap:  defaultErrorListCap,
		minSuffixLen:  defaultMinSuffixLen,
		storeCapacity: defaultStoreCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewMemStore(repository.WithInitialCapacity(s.storeCapacity))
		s.logger.Info(ctx, "using in-memory team store")
	}

	s.started = true
	s.logger.Info(ctx, "roster service started",
		logger.Int("errorListCap", s.errorListCap),
		logger.Int("minSuffixLen", s.minSuffixLen),
	)
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "roster service stopped")
}

// Teams returns all canonical teams in insertion order.
func (s *Service) Teams(ctx context.Context) ([]model.Team, error) {
	return s.store.List(ctx)
}

// TopN returns up to n leaderboard entries ordered by score desc.
func (s *Service) TopN(ctx context.Context, n int) ([]types.Entry, error) {
	return s.store.TopN(ctx, n)
}

// DeleteTeam removes one team by ID.
func (s *Service) DeleteTeam(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if err == nil {
		metrics.UpdateTeamsTotal(s.store.Count(ctx))
	}
	return err
}

// DeleteAllTeams removes every team.
func (s *Service) DeleteAllTeams(ctx context.Context) error {
	if err := s.store.DeleteAll(ctx); err != nil {
		return err
	}
	metrics.UpdateTeamsTotal(0)
	return nil
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	store := s.store
	s.mu.RUnlock()
	if store == nil {
		return map[string]interface{}{"teams": 0}
	}

	count := store.Count(context.Background())
	metrics.UpdateTeamsTotal(count)
	return map[string]interface{}{
		"teams": count,
	}
}

// appendCapped appends msg to list unless the cap is reached.
func appendCapped(list []string, msg string, limit int) []string {
	if len(list) >= limit {
		return list
	}
	return append(list, msg)
}
