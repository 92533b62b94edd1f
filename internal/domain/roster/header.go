// Package roster folds inconsistently-shaped spreadsheet exports into
// canonical team drafts: header normalization, row grouping with
// carry-forward team keys, leader inference and admission validation.
package roster

import (
	"strings"

	"github.com/dexterix/rosterd/internal/domain/model"
)

// Canonical field names. Downstream code only ever sees these; raw header
// spellings never leave this package.
const (
	FieldTeamID      = "team_id"
	FieldTeamName    = "team_name"
	FieldMemberName  = "member_name"
	FieldLeaderName  = "leader_name"
	FieldEmail       = "email"
	FieldLeaderEmail = "leader_email"
	FieldPhone       = "phone"
	FieldLeaderPhone = "leader_phone"
	FieldGender      = "gender"
	FieldCourse      = "course"
	FieldYear        = "year"
	FieldCollege     = "college"
	FieldMemberType  = "member_type"
	FieldScore       = "score"
)

// headerAliases maps folded raw header spellings to canonical field names.
var headerAliases = map[string]string{
	"team id": FieldTeamID,
	"teamid":  FieldTeamID,
	"team_id": FieldTeamID,
	"id":      FieldTeamID,

	"team name": FieldTeamName,
	"team":      FieldTeamName,
	"teamname":  FieldTeamName,

	"members":     FieldMemberName,
	"member":      FieldMemberName,
	"member name": FieldMemberName,
	"name":        FieldMemberName,
	"full name":   FieldMemberName,

	"team leader":      FieldLeaderName,
	"team leader name": FieldLeaderName,
	"leader":           FieldLeaderName,
	"leader name":      FieldLeaderName,

	"email":         FieldEmail,
	"email address": FieldEmail,
	"e-mail":        FieldEmail,

	"leader email":       FieldLeaderEmail,
	"team leader email":  FieldLeaderEmail,
	"leader's email":     FieldLeaderEmail,
	"leader email id":    FieldLeaderEmail,
	"team leader e-mail": FieldLeaderEmail,

	"phone":        FieldPhone,
	"phone number": FieldPhone,
	"mobile":       FieldPhone,
	"contact":      FieldPhone,
	"contact no":   FieldPhone,

	"leader phone":        FieldLeaderPhone,
	"team leader phone":   FieldLeaderPhone,
	"leader contact":      FieldLeaderPhone,
	"team leader contact": FieldLeaderPhone,

	"gender": FieldGender,
	"sex":    FieldGender,

	"course": FieldCourse,
	"branch": FieldCourse,
	"stream": FieldCourse,

	"year":          FieldYear,
	"year of study": FieldYear,

	"college":            FieldCollege,
	"college/university": FieldCollege,
	"university":         FieldCollege,
	"institution":        FieldCollege,

	"member type": FieldMemberType,
	"role":        FieldMemberType,
	"type":        FieldMemberType,

	"score":       FieldScore,
	"total score": FieldScore,
	"points":      FieldScore,
}

// NormalizedRow maps canonical field names to trimmed values.
type NormalizedRow map[string]string

// NormalizeHeader canonicalizes a raw column name and resolves it against the
// alias table. ok is false for headers with no canonical mapping; their
// values are dropped.
func NormalizeHeader(raw string) (field string, ok bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.Join(strings.Fields(key), " ")
	field, ok = headerAliases[key]
	return field, ok
}

// Normalizer resolves raw headers, caching lookups for the lifetime of one
// file. Distinct spreadsheets repeat the same handful of headers thousands
// of times, so the alias fold runs once per distinct spelling.
type Normalizer struct {
	cache map[string]string // raw header -> canonical field ("" = unrecognized)
}

// NewNormalizer creates a normalizer for a single file's rows.
func NewNormalizer() *Normalizer {
	return &Normalizer{cache: make(map[string]string)}
}

// Canonical resolves one raw header through the cache.
func (n *Normalizer) Canonical(raw string) (string, bool) {
	if field, hit := n.cache[raw]; hit {
		return field, field != ""
	}
	field, ok := NormalizeHeader(raw)
	if !ok {
		n.cache[raw] = ""
		return "", false
	}
	n.cache[raw] = field
	return field, true
}

// NormalizeRow maps a raw row onto canonical fields. When several raw headers
// alias to the same canonical field, the first non-empty value in column
// order wins.
func (n *Normalizer) NormalizeRow(raw model.RawRow) NormalizedRow {
	row := make(NormalizedRow, len(raw))
	for _, cell := range raw {
		field, ok := n.Canonical(cell.Header)
		if !ok {
			continue
		}
		value := strings.TrimSpace(cell.Value)
		if value == "" {
			continue
		}
		if _, taken := row[field]; taken {
			continue
		}
		row[field] = value
	}
	return row
}
