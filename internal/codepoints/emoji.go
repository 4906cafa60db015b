package codepoints

import (
	"regexp"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/ensdomains/go-ens-normalize/internal/cp"
)

// EmojiMatcher recognizes the longest emoji sequence starting at a given
// position, the same longest-match-first contract the Rust original
// gets from building one big regex::Regex alternation. Go's regexp
// package compiles to RE2 and, like the Rust regex crate outside of its
// (unused here) POSIX mode, resolves alternation leftmost-first, so
// sorting the alternatives by descending code point length before
// joining them with "|" reproduces the same "longest wins" behavior.
type EmojiMatcher struct {
	re *regexp.Regexp

	// prettyByUgly maps an emoji's FE0F-stripped form (as a string key)
	// to its canonical "pretty" form, used by beautify to re-insert the
	// FE0F variation selectors a normalized name dropped.
	prettyByUgly map[string][]rune
}

func newEmojiMatcher(sequences [][]rune) (*EmojiMatcher, error) {
	// Longest (FE0F-excluded) sequences must be tried first so a
	// registered sequence that is a prefix of a longer registered one
	// never wins over the longer one.
	sorted := slices.Clone(sequences)
	slices.SortFunc(sorted, func(a, b []rune) int {
		return len(cp.FilterFE0F(b)) - len(cp.FilterFE0F(a))
	})

	alternatives := make([]string, 0, len(sorted))
	prettyByUgly := make(map[string][]rune, len(sorted))
	for _, seq := range sorted {
		alternatives = append(alternatives, emojiPattern(seq))
		ugly := cp.FilterFE0F(seq)
		prettyByUgly[string(ugly)] = seq
	}

	re, err := regexp.Compile("^(?:" + strings.Join(alternatives, "|") + ")")
	if err != nil {
		return nil, err
	}
	return &EmojiMatcher{re: re, prettyByUgly: prettyByUgly}, nil
}

// emojiPattern builds a regex fragment for one pretty emoji sequence,
// making every FE0F code point optional so both the "pretty" input
// (with variation selectors) and the "ugly" input (without) match.
func emojiPattern(seq []rune) string {
	var b strings.Builder
	for _, c := range seq {
		if c == cp.FE0F {
			b.WriteString(regexp.QuoteMeta(cp.ToString(c)))
			b.WriteByte('?')
			continue
		}
		b.WriteString(regexp.QuoteMeta(cp.ToString(c)))
	}
	return b.String()
}

// FindPrefix returns the longest emoji sequence matching at the very
// start of s, or nil if none matches there.
func (m *EmojiMatcher) FindPrefix(s string) []rune {
	loc := m.re.FindStringIndex(s)
	if loc == nil {
		return nil
	}
	return cp.FromString(s[:loc[1]])
}

// Pretty returns the canonical (FE0F-preserving) form of an emoji given
// its FE0F-stripped code points, and true if it is known.
func (m *EmojiMatcher) Pretty(ugly []rune) ([]rune, bool) {
	seq, ok := m.prettyByUgly[string(ugly)]
	return seq, ok
}
