package ensnormalize

import (
	"github.com/ensdomains/go-ens-normalize/internal/codepoints"
	"github.com/ensdomains/go-ens-normalize/internal/emit"
	"github.com/ensdomains/go-ens-normalize/internal/token"
	"github.com/ensdomains/go-ens-normalize/internal/validate"
)

// TokenizedName and Token are aliases onto internal/token's types: the
// tokenizer has no state of its own, so there is nothing this package
// needs to add beyond a name under which to export them.
type (
	TokenizedName = token.Name
	TokenizedLabel = token.Label
	Token         = token.Token
	TokenKind     = token.Kind
)

// Token kind constants, re-exported the same way.
const (
	TokenValid      = token.Valid
	TokenMapped     = token.Mapped
	TokenIgnored    = token.Ignored
	TokenDisallowed = token.Disallowed
	TokenStop       = token.Stop
	TokenNFC        = token.NFC
	TokenEmoji      = token.Emoji
)

// NormalizerConfig builds a Normalizer, following the same clone-and-
// override builder shape as wazero's RuntimeConfig: each With* method
// returns a new, independent config rather than mutating the receiver.
type NormalizerConfig struct {
	specJSON []byte
	nfJSON   []byte
}

// NewNormalizerConfig returns a config that builds a Normalizer over
// this module's bundled code-point data.
func NewNormalizerConfig() *NormalizerConfig {
	return &NormalizerConfig{}
}

func (c *NormalizerConfig) clone() *NormalizerConfig {
	ret := *c
	return &ret
}

// WithSpecData overrides the bundled spec.json/nf.json tables. Intended
// for tests that exercise the engine against a deliberately different
// code-point data set; production callers should use the zero value.
func (c *NormalizerConfig) WithSpecData(specJSON, nfJSON []byte) *NormalizerConfig {
	ret := c.clone()
	ret.specJSON = specJSON
	ret.nfJSON = nfJSON
	return ret
}

// Build parses the configured (or bundled) tables into a Normalizer.
func (c *NormalizerConfig) Build() (*Normalizer, error) {
	if c.specJSON == nil && c.nfJSON == nil {
		specs, err := codepoints.Default()
		if err != nil {
			return nil, err
		}
		return &Normalizer{specs: specs}, nil
	}
	specs, err := codepoints.New(c.specJSON, c.nfJSON)
	if err != nil {
		return nil, err
	}
	return &Normalizer{specs: specs}, nil
}

// Normalizer tokenizes, validates and emits ENS names against one
// immutable set of code-point tables. It holds no mutable state and is
// safe for concurrent use by multiple goroutines, matching spec.md's
// "Specs is effectively immutable and shareable" concurrency model.
type Normalizer struct {
	specs *codepoints.Specs
}

// NewNormalizer returns a Normalizer over this module's bundled
// code-point data. It panics only if that embedded data is malformed,
// which would indicate a bug in this module rather than in caller
// input, the same "can't actually fail" contract as regexp.MustCompile
// over a literal pattern.
func NewNormalizer() *Normalizer {
	n, err := NewNormalizerConfig().Build()
	if err != nil {
		panic(err)
	}
	return n
}

// Tokenize classifies input into its token stream without validating
// it. It never fails: every code point is represented by some token,
// even one that later validation would reject.
func (n *Normalizer) Tokenize(input string) TokenizedName {
	return token.Tokenize(input, n.specs, true)
}

// Process tokenizes and validates input, returning the validated
// labels a caller can render via ProcessedName.Normalize or
// ProcessedName.Beautify without repeating tokenization or validation.
func (n *Normalizer) Process(input string) (*ProcessedName, error) {
	labels := n.Tokenize(input).Labels()
	validated := make([]*validate.Label, len(labels))
	for i, l := range labels {
		vl, err := validate.Validate(l, n.specs)
		if err != nil {
			return nil, err
		}
		validated[i] = vl
	}
	return &ProcessedName{labels: validated}, nil
}

// Normalize returns input's canonical normalized form, or the first
// validation error encountered.
func (n *Normalizer) Normalize(input string) (string, error) {
	p, err := n.Process(input)
	if err != nil {
		return "", err
	}
	return p.Normalize(), nil
}

// Beautify returns input's display-oriented form, or the first
// validation error encountered.
func (n *Normalizer) Beautify(input string) (string, error) {
	p, err := n.Process(input)
	if err != nil {
		return "", err
	}
	return p.Beautify(), nil
}

// ProcessedName is the result of validating every label of a name. It
// is cheap to render both ways: neither Normalize nor Beautify
// re-tokenizes or re-validates.
type ProcessedName struct {
	labels []*validate.Label
}

// Normalize renders the processed name's canonical normalized form.
func (p *ProcessedName) Normalize() string {
	return emit.Normalize(p.labels)
}

// Beautify renders the processed name's display-oriented form.
func (p *ProcessedName) Beautify() string {
	return emit.Beautify(p.labels)
}

// LabelTypes returns the resolved label type of each label in order
// (one of LabelTypeEmoji, LabelTypeASCII, or a script group name).
func (p *ProcessedName) LabelTypes() []string {
	types := make([]string, len(p.labels))
	for i, l := range p.labels {
		types[i] = l.LabelType
	}
	return types
}
