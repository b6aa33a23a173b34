package plaintext

type kindPair struct {
	prev, cur BlockKind
}

// SpacingRules decides whether a blank line separates two adjacent blocks,
// keyed by their kinds. The zero/nil value is the dense default: a blank line
// between every pair, same-kind pairs included (consecutive lists keep the
// same single-blank separation as cross-kind neighbors). Callers that need a
// different policy override individual pairs or the fallback.
type SpacingRules struct {
	fallback  bool
	overrides map[kindPair]bool
}

// DefaultSpacing returns the dense default policy.
func DefaultSpacing() *SpacingRules {
	return &SpacingRules{fallback: true}
}

// NewSpacingRules returns a policy whose unlisted pairs resolve to fallback.
func NewSpacingRules(fallback bool) *SpacingRules {
	return &SpacingRules{fallback: fallback}
}

// Set overrides the decision for one ordered (prev, cur) pair.
func (r *SpacingRules) Set(prev, cur BlockKind, blank bool) *SpacingRules {
	if r.overrides == nil {
		r.overrides = make(map[kindPair]bool)
	}
	r.overrides[kindPair{prev, cur}] = blank
	return r
}

// BlankBetween reports whether a blank line must separate prev from cur.
func (r *SpacingRules) BlankBetween(prev, cur BlockKind) bool {
	if r == nil {
		return true
	}
	if v, ok := r.overrides[kindPair{prev, cur}]; ok {
		return v
	}
	return r.fallback
}
