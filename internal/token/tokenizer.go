package token

import (
	"golang.org/x/text/unicode/norm"

	"github.com/ensdomains/go-ens-normalize/internal/cp"
	"github.com/ensdomains/go-ens-normalize/internal/codepoints"
)

// Tokenize classifies every code point of input against specs, matches
// emoji sequences greedily, optionally applies selective NFC to runs of
// plain text, and coalesces adjacent Valid tokens. applyNFC is exposed
// as a parameter (rather than always true) so tests can exercise the
// classification step in isolation; every public entry point of this
// module calls Tokenize with applyNFC set to true.
func Tokenize(input string, specs *codepoints.Specs, applyNFC bool) Name {
	tokens := classify(input, specs)
	if applyNFC {
		tokens = applySelectiveNFC(tokens, specs)
	}
	tokens = collapseValid(tokens)
	return Name{Tokens: tokens}
}

// classify walks input code point by code point, preferring the longest
// emoji match at each position and otherwise classifying the single
// code point via processOneCp.
func classify(input string, specs *codepoints.Specs) []Token {
	var tokens []Token
	runes := cp.FromString(input)
	pos := 0
	for pos < len(runes) {
		if seq := specs.Emoji.FindPrefix(string(runes[pos:])); seq != nil {
			ugly := cp.FilterFE0F(seq)
			pretty, ok := specs.Emoji.Pretty(ugly)
			if !ok {
				pretty = seq
			}
			tokens = append(tokens, Token{
				Kind:   Emoji,
				Cps:    ugly,
				Input:  seq,
				Pretty: pretty,
			})
			pos += len(seq)
			continue
		}
		tokens = append(tokens, processOneCp(runes[pos], specs))
		pos++
	}
	return tokens
}

// processOneCp classifies a single code point not consumed by an emoji
// match, in the fixed priority order: label separator, mapped, ignored,
// valid, else disallowed.
func processOneCp(c rune, specs *codepoints.Specs) Token {
	switch {
	case c == cp.Stop:
		return Token{Kind: Stop, Cp: c, Input: []rune{c}}
	case func() bool { _, ok := specs.MapCodePoint(c); return ok }():
		to, _ := specs.MapCodePoint(c)
		return Token{Kind: Mapped, Cp: c, Cps: to, Input: []rune{c}}
	case specs.IsIgnored(c):
		return Token{Kind: Ignored, Cp: c, Input: []rune{c}}
	case specs.IsValid(c):
		return Token{Kind: Valid, Cps: []rune{c}, Input: []rune{c}}
	default:
		return Token{Kind: Disallowed, Cp: c, Input: []rune{c}}
	}
}

// applySelectiveNFC scans for maximal runs of text tokens (Valid or
// Mapped; Ignored tokens within a run are skipped over but still
// contribute their original input to the splice) that contain at least
// one code point flagged nfc_check, and replaces each such run with a
// single NFC token if and only if NFC composition actually changes the
// text. This mirrors the Rust original's "only touch runs that could
// possibly need it" optimization: a run with no nfc_check member is
// left untouched even if it happens to be already composed or not.
func applySelectiveNFC(tokens []Token, specs *codepoints.Specs) []Token {
	var out []Token
	i := 0
	for i < len(tokens) {
		if !tokens[i].IsText() && tokens[i].Kind != Ignored {
			out = append(out, tokens[i])
			i++
			continue
		}
		j := i
		var runCps, runInput []rune
		needsCheck := false
		for j < len(tokens) && (tokens[j].IsText() || tokens[j].Kind == Ignored) {
			runInput = append(runInput, tokens[j].Input...)
			if tokens[j].Kind != Ignored {
				runCps = append(runCps, tokens[j].Cps...)
				if specs.NeedsNfcCheck(tokens[j].Cps) {
					needsCheck = true
				}
			}
			j++
		}
		if !needsCheck {
			out = append(out, tokens[i:j]...)
			i = j
			continue
		}
		before := cp.SliceToString(runCps)
		after := norm.NFC.String(before)
		if after == before {
			out = append(out, tokens[i:j]...)
			i = j
			continue
		}
		out = append(out, Token{Kind: NFC, Cps: cp.FromString(after), Input: runInput})
		i = j
	}
	return out
}

// collapseValid merges consecutive Valid tokens into one, so a run of
// ordinary letters a label-level consumer inspects (e.g. group
// determination) sees a single token rather than one per code point.
func collapseValid(tokens []Token) []Token {
	var out []Token
	i := 0
	for i < len(tokens) {
		if tokens[i].Kind != Valid {
			out = append(out, tokens[i])
			i++
			continue
		}
		j := i + 1
		merged := tokens[i]
		for j < len(tokens) && tokens[j].Kind == Valid {
			merged.Cps = append(append([]rune{}, merged.Cps...), tokens[j].Cps...)
			merged.Input = append(append([]rune{}, merged.Input...), tokens[j].Input...)
			j++
		}
		out = append(out, merged)
		i = j
	}
	return out
}
