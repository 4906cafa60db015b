package ensnormalize

import "github.com/ensdomains/go-ens-normalize/internal/errs"

// CurableError and DisallowedError are re-exported from internal/errs
// rather than defined here directly, the same indirection wazero uses
// to expose internal/wasm types through its api package: internal/
// validate needs the types too, and it cannot import this package
// without creating an import cycle.
type (
	CurableError = errs.CurableError
	CurableKind  = errs.CurableKind

	DisallowedError = errs.DisallowedError
	DisallowedKind  = errs.DisallowedKind
)

// CurableError kinds: label defects that name an exact, fixable span.
const (
	UnderscoreInMiddle     = errs.UnderscoreInMiddle
	HyphenAtSecondAndThird = errs.HyphenAtSecondAndThird
	CmStart                = errs.CmStart
	CmAfterEmoji           = errs.CmAfterEmoji
	FencedLeading          = errs.FencedLeading
	FencedTrailing         = errs.FencedTrailing
	FencedConsecutive      = errs.FencedConsecutive
	Confused               = errs.Confused
)

// DisallowedError kinds: label defects with no single suggested fix.
const (
	Invalid            = errs.Invalid
	InvisibleCharacter = errs.InvisibleCharacter
	EmptyLabel         = errs.EmptyLabel
	NsmTooMany         = errs.NsmTooMany
	NsmRepeated        = errs.NsmRepeated
	ConfusedGroups     = errs.ConfusedGroups
)
