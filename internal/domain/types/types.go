// Package types contains common types used across the application
package types

// Entry represents a leaderboard row.
type Entry struct {
	Rank   int     `json:"rank"`
	TeamID string  `json:"team_id"`
	Name   string  `json:"team"`
	Score  float64 `json:"score"`
}
