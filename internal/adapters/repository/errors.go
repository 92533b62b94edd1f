package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound      = errors.New("team not found")
	ErrAlreadyExists = errors.New("team already exists")
	ErrMissingID     = errors.New("team id must not be empty")
	ErrUnknownField  = errors.New("unknown query field")
	ErrInvalidLimit  = errors.New("invalid leaderboard limit")
)
