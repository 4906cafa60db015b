// Package ensnormalize implements ENSIP-15 name normalization: turning
// a user-typed ENS name into the single canonical form its registry and
// resolvers key on, and into a related display form that keeps a few
// ambiguous code points (like lowercase Greek xi) visually distinct
// outside their home script.
//
// Most callers want the package-level Normalize, Beautify, Process and
// Tokenize functions, which build a Normalizer on every call over this
// module's bundled code-point tables; those tables are parsed once, on
// first use, and shared by every call afterwards. A long-running service
// normalizing many names should construct one Normalizer with
// NewNormalizer (or a NormalizerConfig) and reuse it instead, since a
// Normalizer's underlying tables are immutable and safe to share.
package ensnormalize

// Tokenize classifies input into its token stream without validating
// it, using this module's bundled code-point data.
func Tokenize(input string) TokenizedName {
	return NewNormalizer().Tokenize(input)
}

// Process tokenizes and validates input, using this module's bundled
// code-point data.
func Process(input string) (*ProcessedName, error) {
	return NewNormalizer().Process(input)
}

// Normalize returns input's canonical normalized form, using this
// module's bundled code-point data.
func Normalize(input string) (string, error) {
	return NewNormalizer().Normalize(input)
}

// Beautify returns input's display-oriented form, using this module's
// bundled code-point data.
func Beautify(input string) (string, error) {
	return NewNormalizer().Beautify(input)
}
