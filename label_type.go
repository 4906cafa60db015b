package ensnormalize

import "github.com/ensdomains/go-ens-normalize/internal/validate"

// LabelTypeEmoji and LabelTypeASCII are the two reserved label types;
// every other label's type is the name of the single script group (e.g.
// "Latin", "Cyrillic") its text was resolved to. LabelTypeGreek is the
// name of the one such group Beautify treats specially.
const (
	LabelTypeEmoji = validate.LabelTypeEmoji
	LabelTypeASCII = validate.LabelTypeASCII
	LabelTypeGreek = validate.LabelTypeGreek
)
