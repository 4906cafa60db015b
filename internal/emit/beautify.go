package emit

import (
	"strings"

	"github.com/ensdomains/go-ens-normalize/internal/cp"
	"github.com/ensdomains/go-ens-normalize/internal/validate"
)

// Beautify joins labels the same way Normalize does, except that a
// label outside the Greek script has every lowercase xi (ξ, U+03BE)
// displayed as capital xi (Ξ, U+039E): lowercase xi is visually close
// to other scripts' letters and to digit-adjacent symbols, so outside
// its home script ens-normalize prefers the unambiguous capital for
// display while still normalizing both forms identically.
func Beautify(labels []*validate.Label) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = beautifyLabel(l)
	}
	return strings.Join(parts, cp.ToString(cp.Stop))
}

func beautifyLabel(l *validate.Label) string {
	greek := l.LabelType == validate.LabelTypeGreek
	var out []rune
	for _, t := range l.Tokens {
		if t.IsEmoji() {
			out = append(out, t.Pretty...)
			continue
		}
		for _, c := range t.OutputCps() {
			if c == cp.XiSmall && !greek {
				out = append(out, cp.XiCapital)
				continue
			}
			out = append(out, c)
		}
	}
	return cp.SliceToString(out)
}
