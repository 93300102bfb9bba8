// Package assets bundles the word list into the binary.
package assets

import (
	_ "embed"
)

// Words is the raw newline-delimited word list. Lines are not normalized
// here; the words package owns normalization and length filtering.
//
//go:embed words.txt
var Words string
