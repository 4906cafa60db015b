package codepoints

import (
	"encoding/json"
	"fmt"
)

// schemaGroup is the wire shape of one groups[] entry in spec.json.
type schemaGroup struct {
	Name      string `json:"name"`
	Primary   []rune `json:"primary"`
	Secondary []rune `json:"secondary"`
	Cm        []rune `json:"cm"`
	Restricted bool  `json:"restricted"`
}

// schemaMapped is one entry of the mapped[] table: a single code point
// expanding to one or more replacement code points.
type schemaMapped struct {
	From rune   `json:"from"`
	To   []rune `json:"to"`
}

// schemaFenced is one entry of the fenced[] table. To is carried for
// schema fidelity with spec.json; nothing in internal/validate consumes
// it, since the fenced rule only needs membership, not the suggestion.
type schemaFenced struct {
	From rune   `json:"from"`
	To   string `json:"to"`
}

// schemaWholeObject is the non-trivial half of a whole_map value: a
// code point that participates in one or more confusable groups.
type schemaWholeObject struct {
	V []rune              `json:"V"`
	M map[string][]string `json:"M"`
}

// schemaWhole is the untagged union spec.json uses for whole_map values:
// either a plain integer (WholeValue::Number, a short-circuit sentinel)
// or an object describing cross-group confusability.
type schemaWhole struct {
	Number *int
	Object *schemaWholeObject
}

func (w *schemaWhole) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		w.Number = &n
		return nil
	}
	var obj schemaWholeObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("codepoints: whole_map value is neither a number nor an object: %w", err)
	}
	w.Object = &obj
	return nil
}

// schemaSpec is the top-level shape of spec.json.
type schemaSpec struct {
	Groups    []schemaGroup          `json:"groups"`
	Emoji     [][]rune               `json:"emoji"`
	Ignored   []rune                 `json:"ignored"`
	Mapped    []schemaMapped         `json:"mapped"`
	Fenced    []schemaFenced         `json:"fenced"`
	Cm        []rune                 `json:"cm"`
	Nsm       []rune                 `json:"nsm"`
	NsmMax    int                    `json:"nsm_max"`
	NfcCheck  []rune                 `json:"nfc_check"`
	WholeMap  map[string]schemaWhole `json:"whole_map"`
}

// schemaDecomp is one nf.json decomposition entry: a precomposed code
// point and the sequence it canonically decomposes to.
type schemaDecomp struct {
	CodePoint rune   `json:"number"`
	Decomp    []rune `json:"nested_numbers"`
}

// schemaNF is the top-level shape of nf.json. Ranks, Exclusions and QC
// mirror fields the Rust original's static_data/nf.rs carries for a
// fuller Unicode normalization engine; this module's validator only
// ever consults Decomp, so the rest round-trip unused.
type schemaNF struct {
	Unicode     string         `json:"unicode"`
	Decomp      []schemaDecomp `json:"decomp"`
	Ranks       [][]rune       `json:"ranks"`
	Exclusions  []rune         `json:"exclusions"`
	QC          []rune         `json:"qc"`
}
