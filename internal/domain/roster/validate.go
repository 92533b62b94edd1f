package roster

import "github.com/dexterix/rosterd/internal/domain/model"

// Admit decides whether a completed draft is well-formed enough to persist:
// it needs a name and a usable contact email. When no leader row was ever
// detected, the first member email stands in and is promoted onto the draft,
// so every admitted team carries a non-empty LeaderEmail.
//
// Rejection is silent; callers see it only as absence from the created set.
func Admit(draft *model.Team) bool {
	if draft.Name == "" {
		return false
	}
	if draft.LeaderEmail != "" {
		return true
	}
	for _, m := range draft.Members {
		if m.Email != "" {
			draft.LeaderEmail = m.Email
			return true
		}
	}
	return false
}
