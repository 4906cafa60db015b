// Package validate applies the rules that decide whether a tokenized
// label is a legal ENS name component, in the fixed order the ENSIP-15
// algorithm specifies: violating an earlier rule always reports that
// rule's error even if a later rule would also fire.
package validate

import (
	"github.com/ensdomains/go-ens-normalize/internal/cp"
	"github.com/ensdomains/go-ens-normalize/internal/codepoints"
	"github.com/ensdomains/go-ens-normalize/internal/errs"
	"github.com/ensdomains/go-ens-normalize/internal/token"
)

// LabelTypeEmoji and LabelTypeASCII are the reserved label types
// assigned by the all-emoji and all-ASCII shortcuts; every other label's
// type is the name of the single script group its text belongs to, of
// which LabelTypeGreek is the one Beautify treats specially.
const (
	LabelTypeEmoji = "Emoji"
	LabelTypeASCII = "ASCII"
	LabelTypeGreek = "Greek"
)

// Label is a label that has passed every validation rule, carrying the
// information Normalize/Beautify need to emit it and callers may want
// to inspect (its resolved script, whether that script is restricted).
type Label struct {
	Tokens     []token.Token
	Cps        []rune
	LabelType  string
	Restricted bool
}

// Validate checks one already-tokenized label against specs, in rule
// order, stopping at and returning the first violation.
func Validate(l token.Label, specs *codepoints.Specs) (*Label, error) {
	cps := l.Cps()

	if len(cps) == 0 {
		return nil, &errs.DisallowedError{Kind: errs.EmptyLabel}
	}

	if err := checkTokenLegality(l); err != nil {
		return nil, err
	}

	if l.IsFullyEmoji() {
		return &Label{Tokens: l.Tokens, Cps: cps, LabelType: LabelTypeEmoji}, nil
	}

	if err := checkUnderscore(cps); err != nil {
		return nil, err
	}

	if l.IsFullyASCII() {
		if err := checkAsciiHyphen(cps); err != nil {
			return nil, err
		}
		return &Label{Tokens: l.Tokens, Cps: cps, LabelType: LabelTypeASCII}, nil
	}

	if err := checkFenced(cps, specs); err != nil {
		return nil, err
	}

	if err := checkCm(l.Tokens, specs); err != nil {
		return nil, err
	}

	textCps := l.TextCps()
	group, err := determineGroup(textCps, specs)
	if err != nil {
		return nil, err
	}

	if group.CmAbsent {
		if err := checkNsm(textCps, specs); err != nil {
			return nil, err
		}
	}

	if err := checkWhole(textCps, group, specs); err != nil {
		return nil, err
	}

	return &Label{
		Tokens:     l.Tokens,
		Cps:        cps,
		LabelType:  group.Name,
		Restricted: group.Restricted,
	}, nil
}

func checkTokenLegality(l token.Label) error {
	for _, t := range l.Tokens {
		if !t.IsDisallowed() {
			continue
		}
		if t.Cp == cp.ZWJ || t.Cp == cp.ZWNJ {
			return &errs.DisallowedError{Kind: errs.InvisibleCharacter, Cp: t.Cp}
		}
		return &errs.DisallowedError{Kind: errs.Invalid, Sequence: cp.ToString(t.Cp)}
	}
	return nil
}

// checkUnderscore allows any number of leading underscores but
// disallows one anywhere else, matching ENS's historical "_foo" and
// "__foo" subdomain convention without allowing "fo_o" or "foo_".
func checkUnderscore(cps []rune) error {
	i := 0
	for i < len(cps) && cps[i] == cp.Underscore {
		i++
	}
	for ; i < len(cps); i++ {
		if cps[i] == cp.Underscore {
			return &errs.CurableError{
				Kind:       errs.UnderscoreInMiddle,
				Index:      i,
				Sequence:   cp.ToString(cp.Underscore),
				Suggestion: "",
			}
		}
	}
	return nil
}

// checkAsciiHyphen rejects "xn--"-shaped ASCII labels with a plain
// hyphen in positions 2 and 3, the punycode collision guard.
func checkAsciiHyphen(cps []rune) error {
	if len(cps) >= 4 && cps[2] == cp.Hyphen && cps[3] == cp.Hyphen {
		return &errs.CurableError{
			Kind:       errs.HyphenAtSecondAndThird,
			Index:      2,
			Sequence:   "--",
			Suggestion: "",
		}
	}
	return nil
}

func checkFenced(cps []rune, specs *codepoints.Specs) error {
	if specs.IsFenced(cps[0]) {
		return &errs.CurableError{Kind: errs.FencedLeading, Index: 0, Sequence: cp.ToString(cps[0])}
	}
	last := len(cps) - 1
	if specs.IsFenced(cps[last]) {
		return &errs.CurableError{Kind: errs.FencedTrailing, Index: last, Sequence: cp.ToString(cps[last])}
	}
	for i := 0; i+1 < len(cps); i++ {
		if specs.IsFenced(cps[i]) && specs.IsFenced(cps[i+1]) {
			seq := cp.SliceToString(cps[i : i+2])
			return &errs.CurableError{
				Kind:       errs.FencedConsecutive,
				Index:      i,
				Sequence:   seq,
				Suggestion: cp.ToString(cps[i]),
			}
		}
	}
	return nil
}

// checkCm rejects a combining mark leading the label (CmStart) or
// leading the text run immediately following an emoji (CmAfterEmoji).
// A combining mark anywhere else in a text run is ordinary (e.g. part
// of an already-decomposed accented letter) and not an error here.
func checkCm(tokens []token.Token, specs *codepoints.Specs) error {
	index := 0
	afterEmoji := false
	for _, t := range tokens {
		switch {
		case t.IsEmoji():
			afterEmoji = true
		case t.IsText():
			if len(t.Cps) > 0 && specs.IsCm(t.Cps[0]) {
				if index == 0 {
					return &errs.CurableError{Kind: errs.CmStart, Index: 0, Sequence: cp.ToString(t.Cps[0])}
				}
				if afterEmoji {
					return &errs.CurableError{Kind: errs.CmAfterEmoji, Index: index, Sequence: cp.ToString(t.Cps[0])}
				}
			}
			afterEmoji = false
		}
		index += t.InputLen()
	}
	return nil
}

// determineGroup finds the single script group whose primary+secondary
// code points are a superset of the label's unique text code points. No
// match is reported as a curable Confused error naming the best-fitting
// group (the one missing the fewest of the label's code points) and the
// first code point that does not belong to it, so a caller can suggest
// dropping or replacing that one character.
func determineGroup(textCps []rune, specs *codepoints.Specs) (*codepoints.Group, error) {
	unique := dedupe(textCps)
	for _, g := range specs.Groups {
		if g.ContainsAll(unique) {
			return g, nil
		}
	}

	var best *codepoints.Group
	var offender rune
	bestMissing := -1
	for _, g := range specs.Groups {
		missing := 0
		var first rune
		for _, c := range unique {
			if !g.Contains(c) {
				if missing == 0 {
					first = c
				}
				missing++
			}
		}
		if bestMissing == -1 || missing < bestMissing {
			bestMissing, best, offender = missing, g, first
		}
	}
	return nil, &errs.CurableError{Kind: errs.Confused, GroupName: best.Name, Cp: offender}
}

func checkNsm(textCps []rune, specs *codepoints.Specs) error {
	decomposed := specs.NFD(textCps)
	i := 1
	for i < len(decomposed) {
		if !specs.IsNsm(decomposed[i]) {
			i++
			continue
		}
		j := i
		for j < len(decomposed) && specs.IsNsm(decomposed[j]) {
			if j-i+1 > specs.NsmMax {
				return &errs.DisallowedError{Kind: errs.NsmTooMany}
			}
			for k := i; k < j; k++ {
				if decomposed[k] == decomposed[j] {
					return &errs.DisallowedError{Kind: errs.NsmRepeated}
				}
			}
			j++
		}
		i = j
	}
	return nil
}

// checkWhole rejects a label whose full set of text code points, while
// internally consistent with its own resolved group G, could equally
// plausibly be read as belonging to some other group H: that is, every
// code point either has no whole-script entry (and so must also appear
// in H) or names H among the groups it is visually confusable with.
func checkWhole(textCps []rune, group *codepoints.Group, specs *codepoints.Specs) error {
	unique := dedupe(textCps)

	var shared []rune
	var candidates map[string]struct{}
	haveCandidates := false

	for _, c := range unique {
		wv, ok := specs.WholeMap[c]
		if !ok {
			shared = append(shared, c)
			continue
		}
		if wv.Number != nil {
			return nil
		}
		groupSet := toStrSet(wv.Groups)
		if !haveCandidates {
			candidates = groupSet
			haveCandidates = true
			continue
		}
		candidates = intersectStrSets(candidates, groupSet)
	}
	if !haveCandidates {
		return nil
	}

	for name := range candidates {
		if name == group.Name {
			continue
		}
		h := specs.GroupByName(name)
		if h == nil {
			continue
		}
		if h.ContainsAll(shared) {
			return &errs.DisallowedError{Kind: errs.ConfusedGroups, Group1: group.Name, Group2: h.Name}
		}
	}
	return nil
}

func dedupe(cps []rune) []rune {
	seen := make(map[rune]struct{}, len(cps))
	out := make([]rune, 0, len(cps))
	for _, c := range cps {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func toStrSet(ss []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		set[s] = struct{}{}
	}
	return set
}

func intersectStrSets(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}
