// Package fastfloat parses RFC 7159 decimal number literals into
// correctly-rounded binary64 values, using the Eisel-Lemire algorithm
// for the common case and an arbitrary-precision fallback for the
// inputs it cannot resolve from a bounded 128-bit table lookup.
package fastfloat

import (
	"github.com/codedude/fastfloat/internal/fastfloat"
	"github.com/codedude/fastfloat/internal/slowpath"
)

// Parse converts text into the correctly-rounded (round-half-to-even)
// float64 it denotes. It returns an error if text does not conform to
// the RFC 7159 number grammar.
func Parse(text string) (float64, error) {
	return fastfloat.ParseFloat64(text, slowpath.Parser{})
}
