// Package emit turns validated labels back into the two output forms
// ens-normalize exposes: Normalize's canonical string and Beautify's
// display-oriented one.
package emit

import (
	"strings"

	"github.com/ensdomains/go-ens-normalize/internal/cp"
	"github.com/ensdomains/go-ens-normalize/internal/token"
	"github.com/ensdomains/go-ens-normalize/internal/validate"
)

// Normalize joins labels' output code points (mapped/NFC text as-is,
// emoji with their FE0F variation selectors stripped) with U+002E.
func Normalize(labels []*validate.Label) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		seg := token.Label{Tokens: l.Tokens}
		parts[i] = cp.SliceToString(seg.Cps())
	}
	return strings.Join(parts, cp.ToString(cp.Stop))
}
