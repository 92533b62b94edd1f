package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/dexterix/rosterd/internal/domain/model"
	"github.com/dexterix/rosterd/internal/domain/types"
)

// MemStore implements Store with an in-memory map guarded by an RWMutex.
// Insertion order is tracked so List is stable across calls.
type MemStore struct {
	mu    sync.RWMutex
	byID  map[string]model.Team
	order []string
}

// NewMemStore creates an empty in-memory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		byID: make(map[string]model.Team),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the team with the given ID.
func (s *MemStore) Get(ctx context.Context, id string) (model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return model.Team{}, ErrNotFound
	}
	return t, nil
}

// QueryByField returns all teams whose field equals value, case-insensitive.
func (s *MemStore) QueryByField(ctx context.Context, field, value string) ([]model.Team, error) {
	var pick func(t model.Team) string
	switch field {
	case FieldLeaderEmail:
		pick = func(t model.Team) string { return t.LeaderEmail }
	case FieldTeamID:
		pick = func(t model.Team) string { return t.TeamID }
	default:
		return nil, ErrUnknownField
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Team
	for _, id := range s.order {
		t := s.byID[id]
		if strings.EqualFold(pick(t), value) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Create persists a new team. The ID is the unit of identity; creating an
// already-present ID fails rather than overwriting.
func (s *MemStore) Create(ctx context.Context, t model.Team) (model.Team, error) {
	if t.ID == "" {
		return model.Team{}, ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[t.ID]; exists {
		return model.Team{}, ErrAlreadyExists
	}
	s.byID[t.ID] = t
	s.order = append(s.order, t.ID)
	return t, nil
}

// Replace overwrites an existing team in place.
func (s *MemStore) Replace(ctx context.Context, t model.Team) (model.Team, error) {
	if t.ID == "" {
		return model.Team{}, ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[t.ID]; !exists {
		return model.Team{}, ErrNotFound
	}
	s.byID[t.ID] = t
	return t, nil
}

// List returns all teams in insertion order.
func (s *MemStore) List(ctx context.Context) ([]model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Team, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

// TopN returns up to n entries ordered by score desc, name asc on ties.
func (s *MemStore) TopN(ctx context.Context, n int) ([]types.Entry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	teams, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Score != teams[j].Score {
			return teams[i].Score > teams[j].Score
		}
		return teams[i].Name < teams[j].Name
	})
	if len(teams) > n {
		teams = teams[:n]
	}

	entries := make([]types.Entry, len(teams))
	for i, t := range teams {
		entries[i] = types.Entry{
			Rank:   i + 1,
			TeamID: t.TeamID,
			Name:   t.Name,
			Score:  t.Score,
		}
	}
	return entries, nil
}

// Delete removes one team by ID.
func (s *MemStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteAll removes every team.
func (s *MemStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string]model.Team)
	s.order = nil
	return nil
}

// Count returns the number of teams tracked.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
