package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ensdomains/go-ens-normalize/internal/codepoints"
	"github.com/ensdomains/go-ens-normalize/internal/token"
)

func mustSpecs(t *testing.T) *codepoints.Specs {
	t.Helper()
	specs, err := codepoints.Default()
	require.NoError(t, err)
	return specs
}

func TestTokenizeCollapsesValidRuns(t *testing.T) {
	specs := mustSpecs(t)
	name := token.Tokenize("abc", specs, true)
	require.Len(t, name.Tokens, 1)
	require.Equal(t, token.Valid, name.Tokens[0].Kind)
	require.Equal(t, []rune{'a', 'b', 'c'}, name.Tokens[0].Cps)
}

func TestTokenizeUppercaseIsMapped(t *testing.T) {
	specs := mustSpecs(t)
	name := token.Tokenize("ABC", specs, true)
	require.Len(t, name.Tokens, 3)
	for i, want := range []rune{'a', 'b', 'c'} {
		require.Equal(t, token.Mapped, name.Tokens[i].Kind)
		require.Equal(t, []rune{want}, name.Tokens[i].Cps)
	}
}

func TestTokenizeEmojiMatchesLongest(t *testing.T) {
	specs := mustSpecs(t)
	input := "a" + string([]rune{0x1F170, 0xFE0F}) + "b"
	name := token.Tokenize(input, specs, true)
	require.Len(t, name.Tokens, 3)
	require.Equal(t, token.Emoji, name.Tokens[1].Kind)
	require.Equal(t, []rune{0x1F170}, name.Tokens[1].Cps)
	require.Equal(t, []rune{0x1F170, 0xFE0F}, name.Tokens[1].Pretty)
}

func TestTokenizeDisallowedCodePoint(t *testing.T) {
	specs := mustSpecs(t)
	name := token.Tokenize("a z", specs, true)
	require.Len(t, name.Tokens, 3)
	require.Equal(t, token.Disallowed, name.Tokens[1].Kind)
	require.Equal(t, rune(' '), name.Tokens[1].Cp)
}

func TestTokenizeAppliesSelectiveNFC(t *testing.T) {
	specs := mustSpecs(t)
	// "e" (U+0065) followed by a combining acute accent (U+0301)
	// canonically composes to the single precomposed code point
	// U+00E9, a Latin group member in the fixture.
	input := string([]rune{0x65, 0x301})
	name := token.Tokenize(input, specs, true)
	require.Len(t, name.Tokens, 1)
	require.Equal(t, token.NFC, name.Tokens[0].Kind)
	require.Equal(t, []rune{0xE9}, name.Tokens[0].Cps)
}

func TestTokenizeLeavesUncheckedRunsAlone(t *testing.T) {
	specs := mustSpecs(t)
	// No nfc_check-flagged code point in this run, so even though the
	// tokens are adjacent valid code points they stay untouched by NFC
	// and are simply collapsed into one Valid token.
	name := token.Tokenize("abc", specs, true)
	require.Equal(t, token.Valid, name.Tokens[0].Kind)
}

func TestLabelsSplitsOnStop(t *testing.T) {
	specs := mustSpecs(t)
	name := token.Tokenize("abc.def", specs, true)
	labels := name.Labels()
	require.Len(t, labels, 2)
	require.Equal(t, []rune{'a', 'b', 'c'}, labels[0].Cps())
	require.Equal(t, []rune{'d', 'e', 'f'}, labels[1].Cps())
}

func TestLabelsOfEmptyInputIsOneEmptyLabel(t *testing.T) {
	specs := mustSpecs(t)
	name := token.Tokenize("", specs, true)
	require.Empty(t, name.Tokens)
	labels := name.Labels()
	require.Len(t, labels, 1)
	require.Empty(t, labels[0].Cps())
}

func TestIsFullyEmojiAndFullyASCII(t *testing.T) {
	specs := mustSpecs(t)

	emojiOnly := token.Tokenize(string([]rune{0x1F170, 0xFE0F}), specs, true).Labels()[0]
	require.True(t, emojiOnly.IsFullyEmoji())
	require.False(t, emojiOnly.IsFullyASCII())

	asciiOnly := token.Tokenize("vitalik", specs, true).Labels()[0]
	require.False(t, asciiOnly.IsFullyEmoji())
	require.True(t, asciiOnly.IsFullyASCII())
}
