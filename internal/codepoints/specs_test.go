package codepoints_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ensdomains/go-ens-normalize/internal/codepoints"
)

func mustDefault(t *testing.T) *codepoints.Specs {
	t.Helper()
	specs, err := codepoints.Default()
	require.NoError(t, err)
	return specs
}

func TestDefaultParsesGroups(t *testing.T) {
	specs := mustDefault(t)
	require.NotEmpty(t, specs.Groups)

	latin := specs.GroupByName("Latin")
	require.NotNil(t, latin)
	require.True(t, latin.Contains('é'))
	require.False(t, latin.Contains('z'))

	require.Nil(t, specs.GroupByName("Klingon"))
}

func TestValidSetIncludesGroupSecondaryCodePoints(t *testing.T) {
	specs := mustDefault(t)
	// U+0301 (combining acute) is only ever reachable through a group's
	// secondary set (here, Latin's); it is not itself a letter any
	// group lists as primary.
	require.True(t, specs.IsValid(0x301))
}

func TestDecomposeExtendsValidSet(t *testing.T) {
	specs := mustDefault(t)
	// é (0xE9) decomposes to (e, combining acute) per nf.json's decomp
	// table, and computeValid folds both into the valid set. In this
	// fixture both are also listed by a group (ASCII and Latin).
	require.Equal(t, []rune{0x65, 0x301}, specs.Decompose(0xE9))
	for _, c := range specs.Decompose(0xE9) {
		require.True(t, specs.IsValid(c))
	}
}

func TestIgnoredAndFenced(t *testing.T) {
	specs := mustDefault(t)
	require.True(t, specs.IsIgnored(0xFE0F))
	require.True(t, specs.IsIgnored(0xAD))
	require.True(t, specs.IsFenced(0x30FB))
	require.False(t, specs.IsFenced('a'))
}

func TestMapCodePoint(t *testing.T) {
	specs := mustDefault(t)
	to, ok := specs.MapCodePoint('A')
	require.True(t, ok)
	require.Equal(t, []rune{'a'}, to)

	to, ok = specs.MapCodePoint(0x2122) // TM sign
	require.True(t, ok)
	require.Equal(t, []rune{'t', 'm'}, to)

	_, ok = specs.MapCodePoint('a')
	require.False(t, ok)
}

func TestWholeMapShortCircuitAndConfusable(t *testing.T) {
	specs := mustDefault(t)

	xi := specs.WholeMap[0x3BE]
	require.NotNil(t, xi)
	require.NotNil(t, xi.Number)

	cyrillicA := specs.WholeMap[0x430]
	require.NotNil(t, cyrillicA)
	require.Nil(t, cyrillicA.Number)
	require.ElementsMatch(t, []string{"Cyrillic", "Latin"}, cyrillicA.Groups)
}

func TestEmojiMatcherPrefersLongestMatch(t *testing.T) {
	specs := mustDefault(t)

	seq := specs.Emoji.FindPrefix("1️⃣rest")
	require.Equal(t, []rune{'1', 0xFE0F, 0x20E3}, seq)

	// Without the trailing keycap nothing matches: '1' alone isn't a
	// registered emoji sequence.
	require.Nil(t, specs.Emoji.FindPrefix("1rest"))

	pretty, ok := specs.Emoji.Pretty([]rune{'1', 0x20E3})
	require.True(t, ok)
	require.Equal(t, []rune{'1', 0xFE0F, 0x20E3}, pretty)
}
