package emit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ensdomains/go-ens-normalize/internal/codepoints"
	"github.com/ensdomains/go-ens-normalize/internal/emit"
	"github.com/ensdomains/go-ens-normalize/internal/token"
	"github.com/ensdomains/go-ens-normalize/internal/validate"
)

func process(t *testing.T, specs *codepoints.Specs, input string) []*validate.Label {
	t.Helper()
	labels := token.Tokenize(input, specs, true).Labels()
	out := make([]*validate.Label, len(labels))
	for i, l := range labels {
		vl, err := validate.Validate(l, specs)
		require.NoError(t, err)
		out[i] = vl
	}
	return out
}

func mustSpecs(t *testing.T) *codepoints.Specs {
	t.Helper()
	specs, err := codepoints.Default()
	require.NoError(t, err)
	return specs
}

func TestNormalizeJoinsLabelsAndStripsEmojiFE0F(t *testing.T) {
	specs := mustSpecs(t)
	input := "a." + string([]rune{0x1F170, 0xFE0F})
	got := emit.Normalize(process(t, specs, input))
	require.Equal(t, "a."+string([]rune{0x1F170}), got)
}

func TestNormalizeLeavesEmojiWithoutFE0FBare(t *testing.T) {
	specs := mustSpecs(t)
	// Normalize always drops emoji FE0F variation selectors, whether or
	// not the input carried one; only Beautify restores the canonical
	// ("pretty") form.
	got := emit.Normalize(process(t, specs, string([]rune{0x1F170})))
	require.Equal(t, string([]rune{0x1F170}), got)
}

func TestBeautifyUppercasesXiOutsideGreek(t *testing.T) {
	// Exercises the substitution mechanism directly (a hand-built label
	// claiming a non-Greek LabelType) rather than through Validate: the
	// bundled fixture only lists U+03BE (lowercase xi) in the Greek
	// group, so no real input ever resolves to a non-Greek label
	// containing it, the way an official, much larger ENSIP-15 data set
	// would (where xi appears in several scripts' confusable sets).
	vl := &validate.Label{
		Tokens: []token.Token{
			{Kind: token.Valid, Cps: []rune{0x3BE}, Input: []rune{0x3BE}},
		},
		LabelType: "Latin",
	}
	got := emit.Beautify([]*validate.Label{vl})
	require.Equal(t, string([]rune{0x39E}), got)
}

func TestBeautifyKeepsLowercaseXiInGreek(t *testing.T) {
	specs := mustSpecs(t)
	got := emit.Beautify(process(t, specs, string([]rune{0x3BE, 0x3C0})))
	require.Equal(t, string([]rune{0x3BE, 0x3C0}), got)
}
