// Package resolve maps loosely-formatted external team identifiers onto at
// most one canonical team.
package resolve

// defaultMinSuffixLen avoids one-character inputs suffix-matching half the
// store ("1" would match every "...-1" identifier).
const defaultMinSuffixLen = 2

// Option applies a configuration option to the Index.
type Option func(*Index)

// WithMinSuffixLen sets the minimum input length for the suffix fallback.
func WithMinSuffixLen(n int) Option {
	return func(ix *Index) {
		if n > 0 {
			ix.minSuffixLen = n
		}
	}
}
