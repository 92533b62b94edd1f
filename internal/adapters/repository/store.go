// Package repository defines the canonical team store interface and errors.
package repository

import (
	"context"

	"github.com/dexterix/rosterd/internal/domain/model"
	"github.com/dexterix/rosterd/internal/domain/types"
)

// Queryable field names accepted by QueryByField. Kept as an enumerated set
// rather than reflection over arbitrary struct fields.
const (
	FieldLeaderEmail = "leaderEmail"
	FieldTeamID      = "teamId"
)

// Store provides keyed access to the canonical team records. A team's ID is
// permanent once assigned; Create never overwrites and Replace never creates.
type Store interface {
	// Get returns the team with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (model.Team, error)

	// QueryByField returns all teams whose field equals value
	// (case-insensitive). Unknown field names yield ErrUnknownField.
	QueryByField(ctx context.Context, field, value string) ([]model.Team, error)

	// Create persists a new team, or returns ErrAlreadyExists.
	Create(ctx context.Context, t model.Team) (model.Team, error)

	// Replace overwrites an existing team, or returns ErrNotFound.
	Replace(ctx context.Context, t model.Team) (model.Team, error)

	// List returns all teams in insertion order.
	List(ctx context.Context) ([]model.Team, error)

	// TopN returns up to n leaderboard entries ordered by score desc.
	TopN(ctx context.Context, n int) ([]types.Entry, error)

	// Delete removes one team by ID, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every team.
	DeleteAll(ctx context.Context) error

	// Count returns the number of teams tracked.
	Count(ctx context.Context) int
}
