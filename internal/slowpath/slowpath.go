// Package slowpath implements the arbitrary-precision, always
// correctly-rounded fallback that spec.md treats as an opaque
// external collaborator ("slow_parse"). The fast paths in
// internal/fastfloat defer here whenever they cannot prove the
// rounding is correct from a bounded amount of precision.
package slowpath

import (
	"math/big"
	"strings"

	"github.com/codedude/fastfloat/internal/fastfloat"
)

// Parser is the arbitrary-precision fallback. It implements
// fastfloat.SlowParser.
type Parser struct{}

// Parse returns the correctly-rounded (round-half-to-even) float64
// value of text, or a *fastfloat.ParseError if text does not conform
// to the RFC 7159 number grammar.
func (Parser) Parse(text string) (float64, error) {
	if err := fastfloat.ValidateNumberGrammar(text); err != nil {
		return 0, err
	}

	neg, digits, exp10 := decompose(text)
	if allZero(digits) {
		if neg {
			return negZero, nil
		}
		return 0, nil
	}

	mantissa, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		// Unreachable: decompose only ever emits decimal-digit runs
		// once ValidateNumberGrammar has already accepted text.
		return 0, fastfloatMalformed(text)
	}

	value := new(big.Rat).SetInt(mantissa)
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(absInt64(exp10)), nil)
	if exp10 >= 0 {
		value.Mul(value, new(big.Rat).SetInt(pow))
	} else {
		value.Quo(value, new(big.Rat).SetInt(pow))
	}

	// Rat.Float64 rounds the exact rational directly to the nearest
	// float64 (ties to even), so there is no intermediate rounding
	// step to introduce double-rounding error.
	f, _ := value.Float64()
	if neg {
		f = -f
	}
	return f, nil
}

var negZero = negativeZero()

func negativeZero() float64 {
	z := 0.0
	return -z
}

// decompose splits an already-grammar-valid RFC 7159 literal into its
// sign, the concatenation of every significant digit (full precision,
// no 19-digit cap), and the decimal exponent such that the exact
// value is (-1)^neg * digits * 10^exp10.
func decompose(text string) (neg bool, digits string, exp10 int64) {
	i := 0
	if text[i] == '-' {
		neg = true
		i++
	}

	var b strings.Builder
	for i < len(text) && isDigit(text[i]) {
		b.WriteByte(text[i])
		i++
	}

	if i < len(text) && text[i] == '.' {
		i++
		fracStart := i
		for i < len(text) && isDigit(text[i]) {
			b.WriteByte(text[i])
			i++
		}
		exp10 -= int64(i - fracStart)
	}

	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		expNeg := false
		if text[i] == '+' || text[i] == '-' {
			expNeg = text[i] == '-'
			i++
		}
		var e int64
		for i < len(text) && isDigit(text[i]) {
			e = e*10 + int64(text[i]-'0')
			i++
		}
		if expNeg {
			e = -e
		}
		exp10 += e
	}

	return neg, b.String(), exp10
}

func allZero(digits string) bool {
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func fastfloatMalformed(text string) error {
	return fastfloat.ValidateNumberGrammar(text)
}
