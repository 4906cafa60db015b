// Package codepoints builds and exposes Specs, the parsed, immutable
// view over spec.json/nf.json that the rest of the module classifies,
// tokenizes and validates against. A Specs is expensive to build and
// cheap to share: callers build it once (or use the embedded Default)
// and pass the pointer around read-only, the same "parse once, fan out"
// discipline the Rust original gets from lazy_static!.
package codepoints

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Specs is the fully parsed, read-only rule set one Normalizer is built
// from. Every exported field is populated once in New and never mutated
// afterwards, so a *Specs is safe to share across goroutines.
type Specs struct {
	Groups   []*Group
	groupIdx map[string]*Group

	Valid    map[rune]struct{}
	Ignored  map[rune]struct{}
	Mapped   map[rune][]rune
	Fenced   map[rune]struct{}
	Cm       map[rune]struct{}
	Nsm      map[rune]struct{}
	NsmMax   int
	NfcCheck map[rune]struct{}
	WholeMap map[rune]*WholeValue
	Decomp   map[rune][]rune

	Emoji       *EmojiMatcher
}

// New parses specJSON and nfJSON (the raw contents of spec.json and
// nf.json) into a Specs. It is the only place that interprets the wire
// schema; everything downstream works in terms of the parsed maps.
func New(specJSON, nfJSON []byte) (*Specs, error) {
	var sj schemaSpec
	if err := json.Unmarshal(specJSON, &sj); err != nil {
		return nil, fmt.Errorf("codepoints: parsing spec.json: %w", err)
	}
	var nf schemaNF
	if err := json.Unmarshal(nfJSON, &nf); err != nil {
		return nil, fmt.Errorf("codepoints: parsing nf.json: %w", err)
	}

	s := &Specs{
		groupIdx: make(map[string]*Group, len(sj.Groups)),
		Ignored:  toSet(sj.Ignored),
		Fenced:   toSet(fencedFroms(sj.Fenced)),
		Cm:       toSet(sj.Cm),
		Nsm:      toSet(sj.Nsm),
		NsmMax:   sj.NsmMax,
		NfcCheck: toSet(sj.NfcCheck),
		Mapped:   make(map[rune][]rune, len(sj.Mapped)),
		WholeMap: make(map[rune]*WholeValue, len(sj.WholeMap)),
		Decomp:   make(map[rune][]rune, len(nf.Decomp)),
	}

	for _, m := range sj.Mapped {
		s.Mapped[m.From] = m.To
	}
	for _, d := range nf.Decomp {
		s.Decomp[d.CodePoint] = d.Decomp
	}

	for _, g := range sj.Groups {
		group := &Group{
			Name:       g.Name,
			Primary:    toSet(g.Primary),
			Secondary:  toSet(g.Secondary),
			Cm:         toSet(g.Cm),
			Restricted: g.Restricted,
			CmAbsent:   len(g.Cm) == 0,
		}
		s.Groups = append(s.Groups, group)
		s.groupIdx[group.Name] = group
	}

	// whole_map keys are decimal code points encoded as JSON object keys
	// (strings), since JSON has no integer-keyed map type.
	keys := maps.Keys(sj.WholeMap)
	slices.Sort(keys)
	for _, k := range keys {
		var c rune
		if _, err := fmt.Sscanf(k, "%d", &c); err != nil {
			return nil, fmt.Errorf("codepoints: whole_map key %q is not a code point: %w", k, err)
		}
		w := sj.WholeMap[k]
		if w.Number != nil {
			s.WholeMap[c] = &WholeValue{Number: w.Number}
			continue
		}
		s.WholeMap[c] = &WholeValue{Groups: w.Object.M[k]}
	}

	s.Valid = s.computeValid()

	matcher, err := newEmojiMatcher(sj.Emoji)
	if err != nil {
		return nil, fmt.Errorf("codepoints: building emoji matcher: %w", err)
	}
	s.Emoji = matcher

	return s, nil
}

// computeValid unions every group's primary and secondary code points,
// then extends the set with every code point any member decomposes
// into, mirroring the Rust original's compute_valid: a precomposed
// letter's base and combining marks count as valid even if no group
// lists them directly, since NFD scanning will see them regardless.
func (s *Specs) computeValid() map[rune]struct{} {
	valid := make(map[rune]struct{})
	for _, g := range s.Groups {
		for c := range g.Primary {
			valid[c] = struct{}{}
		}
		for c := range g.Secondary {
			valid[c] = struct{}{}
		}
	}
	for c := range valid {
		for _, d := range s.Decomp[c] {
			valid[d] = struct{}{}
		}
	}
	return valid
}

// GroupByName returns the group with the given name, or nil if spec.json
// never declared it. Used by the whole-script confusable check, which
// looks up candidate groups purely by name.
func (s *Specs) GroupByName(name string) *Group {
	return s.groupIdx[name]
}

// IsValid reports whether c is a member of the valid set (i.e. belongs
// to some group, directly or via decomposition).
func (s *Specs) IsValid(c rune) bool {
	_, ok := s.Valid[c]
	return ok
}

// IsIgnored reports whether c is dropped silently during tokenization.
func (s *Specs) IsIgnored(c rune) bool {
	_, ok := s.Ignored[c]
	return ok
}

// IsFenced reports whether c may not appear at a label boundary or next
// to another fenced code point.
func (s *Specs) IsFenced(c rune) bool {
	_, ok := s.Fenced[c]
	return ok
}

// IsCm reports whether c is a combining mark for the leading/post-emoji
// placement rule (distinct from a Group's own Cm set).
func (s *Specs) IsCm(c rune) bool {
	_, ok := s.Cm[c]
	return ok
}

// IsNsm reports whether c is a non-spacing mark counted by the
// consecutive-run / repetition rule.
func (s *Specs) IsNsm(c rune) bool {
	_, ok := s.Nsm[c]
	return ok
}

// NeedsNfcCheck reports whether any code point of cs requires running
// the selective-NFC comparison over its containing run.
func (s *Specs) NeedsNfcCheck(cs []rune) bool {
	for _, c := range cs {
		if _, ok := s.NfcCheck[c]; ok {
			return true
		}
	}
	return false
}

// Decompose returns c's canonical decomposition, or c itself if none is
// recorded.
func (s *Specs) Decompose(c rune) []rune {
	if d, ok := s.Decomp[c]; ok {
		return d
	}
	return []rune{c}
}

// NFD expands every code point in cs via Decompose, the cheap
// table-driven decomposition the NSM scan runs over (distinct from
// golang.org/x/text/unicode/norm's full NFC/NFD, which the tokenizer
// uses for the selective-NFC pass itself).
func (s *Specs) NFD(cs []rune) []rune {
	out := make([]rune, 0, len(cs))
	for _, c := range cs {
		out = append(out, s.Decompose(c)...)
	}
	return out
}

// MapCodePoint returns c's case-folded/mapped expansion and true, or
// (nil, false) if c has no entry in spec.json's mapped table.
func (s *Specs) MapCodePoint(c rune) ([]rune, bool) {
	to, ok := s.Mapped[c]
	return to, ok
}

func toSet(cs []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(cs))
	for _, c := range cs {
		set[c] = struct{}{}
	}
	return set
}

func fencedFroms(fs []schemaFenced) []rune {
	out := make([]rune, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.From)
	}
	return out
}
