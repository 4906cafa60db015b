// Package errs defines the two error shapes the validator can return.
// It is internal, rather than living at the module root, purely to
// break the import cycle: internal/validate constructs these values and
// the root package re-exports the types under their public names, the
// same indirection wazero uses to expose internal/wasm's types through
// its api package (e.g. "type ValueType = api.ValueType").
package errs

import "fmt"

// CurableKind discriminates the CurableError variants: violations that
// name a specific, fixable span of the input.
type CurableKind int

const (
	UnderscoreInMiddle CurableKind = iota
	HyphenAtSecondAndThird
	CmStart
	CmAfterEmoji
	FencedLeading
	FencedTrailing
	FencedConsecutive
	Confused
)

func (k CurableKind) String() string {
	switch k {
	case UnderscoreInMiddle:
		return "underscore in middle"
	case HyphenAtSecondAndThird:
		return "hyphen at second and third position"
	case CmStart:
		return "combining mark at start"
	case CmAfterEmoji:
		return "combining mark after emoji"
	case FencedLeading:
		return "fenced character at start"
	case FencedTrailing:
		return "fenced character at end"
	case FencedConsecutive:
		return "consecutive fenced characters"
	case Confused:
		return "confusable character"
	default:
		return "curable error"
	}
}

// CurableError reports a label defect that names an exact code-point
// span, together with a suggested replacement (empty when there is no
// single good fix, e.g. an underscore in the middle of a label).
type CurableError struct {
	Kind       CurableKind
	Index      int
	Sequence   string
	Suggestion string
	GroupName  string // Confused only
	Cp         rune   // Confused only
}

func (e *CurableError) Error() string {
	switch e.Kind {
	case Confused:
		return fmt.Sprintf("%s: %q is confusable in group %s", e.Kind, e.Cp, e.GroupName)
	default:
		return fmt.Sprintf("%s at index %d: %q", e.Kind, e.Index, e.Sequence)
	}
}

// DisallowedKind discriminates the DisallowedSequence variants: label
// defects severe enough that there is no suggested fix at all.
type DisallowedKind int

const (
	Invalid DisallowedKind = iota
	InvisibleCharacter
	EmptyLabel
	NsmTooMany
	NsmRepeated
	ConfusedGroups
)

func (k DisallowedKind) String() string {
	switch k {
	case Invalid:
		return "invalid character"
	case InvisibleCharacter:
		return "invisible character"
	case EmptyLabel:
		return "empty label"
	case NsmTooMany:
		return "too many non-spacing marks"
	case NsmRepeated:
		return "repeated non-spacing mark"
	case ConfusedGroups:
		return "confusable groups"
	default:
		return "disallowed sequence"
	}
}

// DisallowedError reports a label defect with no actionable fix.
type DisallowedError struct {
	Kind      DisallowedKind
	Sequence  string // Invalid only
	Cp        rune   // InvisibleCharacter only
	Group1    string // ConfusedGroups only
	Group2    string // ConfusedGroups only
}

func (e *DisallowedError) Error() string {
	switch e.Kind {
	case Invalid:
		return fmt.Sprintf("%s: %q", e.Kind, e.Sequence)
	case InvisibleCharacter:
		return fmt.Sprintf("%s: U+%04X", e.Kind, e.Cp)
	case ConfusedGroups:
		return fmt.Sprintf("%s: %s/%s", e.Kind, e.Group1, e.Group2)
	default:
		return e.Kind.String()
	}
}
