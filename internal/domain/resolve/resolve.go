// Package resolve maps loosely-formatted external team identifiers onto at
// most one canonical team, using a cascading match strategy over an index
// built once from the store's known identifiers.
package resolve

import (
	"strings"

	"github.com/dexterix/rosterd/internal/domain/model"
)

// Index is a snapshot of all teams' identifier variants. Build it once at
// job start; it never re-reads the store.
type Index struct {
	byKey        map[string]*model.Team
	teams        []*model.Team
	minSuffixLen int
	collisions   []string
}

// NewIndex registers every team under several normalized forms of each of
// its identifiers: the exact folded value, the punctuation-stripped value
// and, for purely numeric values, the integer form plus its common 2/3/4
// digit zero-paddings.
//
// Keys collide first-registrant-wins: a later team whose identifier
// normalizes to an already-taken key stays unreachable under that key. The
// collisions are reported via Collisions so callers can surface them.
func NewIndex(teams []model.Team, opts ...Option) *Index {
	ix := &Index{
		byKey:        make(map[string]*model.Team, len(teams)*2),
		minSuffixLen: defaultMinSuffixLen,
	}
	for _, opt := range opts {
		opt(ix)
	}
	for i := range teams {
		t := &teams[i]
		ix.teams = append(ix.teams, t)
		for _, raw := range t.Identifiers() {
			ix.registerVariants(raw, t)
		}
	}
	return ix
}

// Size returns the number of distinct normalized keys in the index.
func (ix *Index) Size() int { return len(ix.byKey) }

// Collisions lists normalized keys that more than one team mapped to.
func (ix *Index) Collisions() []string { return ix.collisions }

// Resolve runs the cascade for one external identifier:
//
//  1. exact folded lookup
//  2. punctuation-stripped lookup
//  3. integer-normalized lookup for purely numeric inputs
//  4. unique-suffix scan over the raw identifiers, inputs of at least
//     minSuffixLen characters only
//
// Two or more suffix candidates is a hard stop, never an arbitrary pick.
func (ix *Index) Resolve(input string) (model.Team, bool) {
	key := fold(input)
	if key == "" {
		return model.Team{}, false
	}
	if t, ok := ix.byKey[key]; ok {
		return *t, true
	}

	stripped := stripNonAlnum(key)
	if stripped != "" {
		if t, ok := ix.byKey[stripped]; ok {
			return *t, true
		}
		if isNumeric(stripped) {
			if t, ok := ix.byKey[trimZeros(stripped)]; ok {
				return *t, true
			}
		}
	}

	return ix.resolveBySuffix(key)
}

// resolveBySuffix is the last-resort scan: "667" may safely match a single
// stored "TYDT-667", but an ambiguous suffix matches nothing.
func (ix *Index) resolveBySuffix(key string) (model.Team, bool) {
	if len(key) < ix.minSuffixLen {
		return model.Team{}, false
	}
	var match *model.Team
	for _, t := range ix.teams {
		if !hasIdentifierSuffix(t, key) {
			continue
		}
		if match != nil && match != t {
			return model.Team{}, false // ambiguous
		}
		match = t
	}
	if match == nil {
		return model.Team{}, false
	}
	return *match, true
}

func hasIdentifierSuffix(t *model.Team, key string) bool {
	for _, raw := range t.Identifiers() {
		id := fold(raw)
		if strings.HasSuffix(id, key) || strings.HasSuffix(id, "-"+key) {
			return true
		}
	}
	return false
}

// registerVariants adds every normalized form of raw for t, first
// registrant winning per key.
func (ix *Index) registerVariants(raw string, t *model.Team) {
	key := fold(raw)
	if key == "" {
		return
	}
	ix.register(key, t)

	stripped := stripNonAlnum(key)
	if stripped != "" && stripped != key {
		ix.register(stripped, t)
	}
	if stripped != "" && isNumeric(stripped) {
		n := trimZeros(stripped)
		ix.register(n, t)
		for _, width := range []int{2, 3, 4} {
			ix.register(padZeros(n, width), t)
		}
	}
}

func (ix *Index) register(key string, t *model.Team) {
	if owner, taken := ix.byKey[key]; taken {
		if owner != t {
			ix.collisions = append(ix.collisions, key)
		}
		return
	}
	ix.byKey[key] = t
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// trimZeros reduces a numeric string to its integer-normalized form.
func trimZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func padZeros(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
