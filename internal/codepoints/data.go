package codepoints

import (
	_ "embed"
	"sync"
)

//go:embed data/spec.json
var defaultSpecJSON []byte

//go:embed data/nf.json
var defaultNFJSON []byte

var (
	defaultOnce  sync.Once
	defaultSpecs *Specs
	defaultErr   error
)

// Default returns the Specs built from the code points, groups and
// confusable tables shipped with this module. It is built once, the
// moment it is first needed, and the same *Specs is handed to every
// caller afterwards.
func Default() (*Specs, error) {
	defaultOnce.Do(func() {
		defaultSpecs, defaultErr = New(defaultSpecJSON, defaultNFJSON)
	})
	return defaultSpecs, defaultErr
}
