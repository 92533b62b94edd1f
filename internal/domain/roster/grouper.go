package roster

import (
	"strings"

	"github.com/dexterix/rosterd/internal/domain/model"
)

// Group folds normalized rows into team drafts, returned in first-seen order.
//
// The team key for a row is its team_id value when present, otherwise the key
// of the nearest preceding row that had one (carry-forward). Rows arriving
// before any key has been seen have no anchor team and are dropped. Because
// of carry-forward, row order is a correctness guarantee: reordering the
// input changes the result.
func Group(rows []NormalizedRow) []*model.Team {
	drafts := make(map[string]*model.Team)
	leaderSeen := make(map[string]bool) // at most one inferred leader per team
	var order []*model.Team
	lastKey := "" // carry-forward accumulator, deliberately not package state

	for _, row := range rows {
		key := row[FieldTeamID]
		if key == "" {
			key = lastKey
		}
		if key == "" {
			continue
		}
		lastKey = key

		draft, seen := drafts[key]
		if !seen {
			draft = &model.Team{ID: key, TeamID: key}
			drafts[key] = draft
			order = append(order, draft)
		}

		setIfAbsent(&draft.Name, row[FieldTeamName])
		setIfAbsent(&draft.College, row[FieldCollege])
		setIfAbsent(&draft.Year, row[FieldYear])

		memberName := row[FieldMemberName]
		if memberName != "" {
			leader := isLeaderRow(row) && !leaderSeen[key]
			if leader {
				leaderSeen[key] = true
				setIfAbsent(&draft.LeaderName, memberName)
				setIfAbsent(&draft.LeaderEmail, row[FieldEmail])
				setIfAbsent(&draft.Phone, row[FieldPhone])
			}
			appendMember(draft, row, leader)
		}

		// Dedicated leader_* columns are a secondary, column-level signal;
		// they only fill fields no leader row has claimed yet.
		setIfAbsent(&draft.LeaderName, row[FieldLeaderName])
		setIfAbsent(&draft.LeaderEmail, row[FieldLeaderEmail])
		setIfAbsent(&draft.Phone, row[FieldLeaderPhone])
	}
	return order
}

// isLeaderRow applies the leader heuristics in priority order: an explicit
// member_type marking always wins; a member name equal to the leader_name
// column is the fallback signal.
func isLeaderRow(row NormalizedRow) bool {
	switch foldName(row[FieldMemberType]) {
	case "team leader", "leader":
		return true
	}
	leaderName := row[FieldLeaderName]
	return leaderName != "" && foldName(row[FieldMemberName]) == foldName(leaderName)
}

// appendMember adds the row's member to the draft unless an entry with the
// same non-empty email (or, failing that, the same name) already exists.
func appendMember(draft *model.Team, row NormalizedRow, leader bool) {
	email := row[FieldEmail]
	name := row[FieldMemberName]
	for i := range draft.Members {
		m := &draft.Members[i]
		if email != "" && m.Email != "" {
			if strings.EqualFold(m.Email, email) {
				return
			}
			continue
		}
		if foldName(m.Name) == foldName(name) {
			return
		}
	}
	draft.Members = append(draft.Members, model.Member{
		Name:     name,
		Email:    email,
		Phone:    row[FieldPhone],
		Gender:   row[FieldGender],
		Course:   row[FieldCourse],
		Year:     row[FieldYear],
		College:  row[FieldCollege],
		IsLeader: leader,
	})
}

// setIfAbsent implements the first-non-empty-wins promotion used across
// grouping; later rows never overwrite an already-set field.
func setIfAbsent(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}

func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
