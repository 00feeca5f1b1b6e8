package fastfloat

import "math"

// SlowParser is the opaque, correctly-rounded arbitrary-precision
// fallback collaborator of spec.md §6. Parse returns the
// correctly-rounded float64 value of text. ParseFloat64 also passes it
// text that the lexer rejected and returns Parse's result and error
// for that text unchanged.
type SlowParser interface {
	Parse(text string) (float64, error)
}

// minFlushToZeroExp10 and maxFlushToInfExp10 are the trivial-extreme
// gates of spec.md §4.4 steps 2-3, evaluated before any table lookup.
const (
	minFlushToZeroExp10 = -342
	maxFlushToInfExp10  = 308
)

// ParseFloat64 converts text, an RFC 7159-conformant decimal literal,
// into the correctly-rounded (round-half-to-even) binary64 value. When
// text violates the grammar it returns what slow.Parse returns for it
// (a *ParseError with slowpath.Parser).
//
// slow is invoked when the lexer rejects text and when the fast paths
// cannot prove correct rounding: on exponents beyond the extremes
// handled directly, and whenever the Eisel-Lemire core returns its
// internal "unknown" sentinel.
func ParseFloat64(text string, slow SlowParser) (float64, error) {
	n, err := lex(text)
	if err != nil {
		return slow.Parse(text)
	}

	if n.mantissa == 0 {
		return signedZero(n.negative), nil
	}
	if n.exp10 < minFlushToZeroExp10 {
		return signedZero(n.negative), nil
	}
	if n.exp10 > maxFlushToInfExp10 {
		return signedInf(n.negative), nil
	}

	if f, ok := tryShortcut(n.mantissa, n.exp10, n.truncated); ok {
		if n.negative {
			f = -f
		}
		return f, nil
	}

	if !n.truncated {
		if f, ok := eiselLemire(n.mantissa, n.exp10, n.negative); ok {
			return f, nil
		}
		return slow.Parse(text)
	}

	// Truncated: the true digits are a range [mantissa, mantissa+1) * 10^exp10.
	// Both ends must agree on the same finite double for the result to
	// be sound; otherwise only the slow exact path can disambiguate.
	lo, okLo := eiselLemire(n.mantissa, n.exp10, n.negative)
	if !okLo {
		return slow.Parse(text)
	}
	hiMantissa, hiExp10 := bumpTruncatedMantissa(n.mantissa, n.exp10)
	hi, okHi := eiselLemire(hiMantissa, hiExp10, n.negative)
	if !okHi || lo != hi {
		return slow.Parse(text)
	}
	return lo, nil
}

// bumpTruncatedMantissa computes mantissa+1 for the truncation
// bracketing comparison, normalizing the 10^19 rollover (spec.md §9,
// "Open question"): when mantissa is 10^19-1, mantissa+1 has 20
// digits, so it is renormalized to a 19-digit mantissa with exp10
// incremented accordingly.
func bumpTruncatedMantissa(mantissa uint64, exp10 int32) (uint64, int32) {
	const maxNineteenDigitMantissa = 9_999_999_999_999_999_999
	if mantissa == maxNineteenDigitMantissa {
		return (mantissa + 1) / 10, exp10 + 1
	}
	return mantissa + 1, exp10
}

func signedZero(negative bool) float64 {
	if negative {
		return math.Copysign(0, -1)
	}
	return 0
}

func signedInf(negative bool) float64 {
	if negative {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
