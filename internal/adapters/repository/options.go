// Package repository defines the canonical team store interface and errors.
package repository

import "github.com/dexterix/rosterd/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithInitialCapacity pre-sizes the store for an expected team count.
func WithInitialCapacity(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.byID = make(map[string]model.Team, n)
			s.order = make([]string, 0, n)
		}
	}
}
