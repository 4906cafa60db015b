package codepoints

// Group is a parsed groups[] entry: a script (or script-like) bucket of
// code points, plus the combining marks it is known to carry.
//
// CmAbsent mirrors the Rust original's cheap precomputed flag: a group
// whose own combining-mark set is empty is a group where any combining
// mark on a text run must be a non-spacing mark run governed by the
// global nsm/nsm_max rule, rather than a script-specific cm the group
// already accounts for.
type Group struct {
	Name       string
	Primary    map[rune]struct{}
	Secondary  map[rune]struct{}
	Cm         map[rune]struct{}
	Restricted bool
	CmAbsent   bool
}

// Contains reports whether c is one of the group's primary or secondary
// code points.
func (g *Group) Contains(c rune) bool {
	if _, ok := g.Primary[c]; ok {
		return true
	}
	_, ok := g.Secondary[c]
	return ok
}

// ContainsAll reports whether every code point in cs belongs to g. An
// empty cs is vacuously true, matching the whole-confusable rule where
// a candidate group with no remaining "shared" code points to check
// still counts as a match.
func (g *Group) ContainsAll(cs []rune) bool {
	for _, c := range cs {
		if !g.Contains(c) {
			return false
		}
	}
	return true
}

// WholeValue is the parsed form of one whole_map entry: either a short
// circuit sentinel (Number) meaning "this code point is not visually
// confusable with any other group, skip the whole-script check for the
// whole label", or the set of other group names this code point could,
// standing alone, plausibly belong to instead of the label's own group.
type WholeValue struct {
	Number *int
	Groups []string
}
