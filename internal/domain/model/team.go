// Package model contains domain models passed between layers.
package model

// Member is a single participant on a team roster.
type Member struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender"`
	Course   string `json:"course"`
	Year     string `json:"year"`
	College  string `json:"college"`
	IsLeader bool   `json:"isLeader"`
}

// Team is the unit of identity in the canonical store. ID is permanent once
// assigned; re-imports never overwrite an existing team.
type Team struct {
	ID                 string   `json:"id"`
	TeamID             string   `json:"teamId,omitempty"` // alternate code from registration exports
	Name               string   `json:"name"`
	LeaderName         string   `json:"leaderName"`
	LeaderEmail        string   `json:"leaderEmail"`
	Phone              string   `json:"phone,omitempty"`
	College            string   `json:"college,omitempty"`
	Year               string   `json:"year,omitempty"`
	Members            []Member `json:"members"`
	ProblemStatementID string   `json:"problemStatementId,omitempty"`
	Score              float64  `json:"score"`
	CheckedIn          bool     `json:"checkedIn"`
}

// Identifiers returns every identifier-bearing value recorded on the team.
// Both the canonical ID and any alternate spreadsheet team id are candidates
// for score matching.
func (t *Team) Identifiers() []string {
	ids := make([]string, 0, 2)
	if t.TeamID != "" {
		ids = append(ids, t.TeamID)
	}
	if t.ID != "" && t.ID != t.TeamID {
		ids = append(ids, t.ID)
	}
	return ids
}
