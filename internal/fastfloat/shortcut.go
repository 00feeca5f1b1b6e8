package fastfloat

// exactPow10 holds 10^0 .. 10^22, each exactly representable as a
// float64, mirroring the teacher's float64pow10 table (parse_float.go)
// but extended from 16 to the 23 entries (10^0 through 10^22) the
// shortcut needs.
var exactPow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// shortcutMantissaLimit is 2^53, an exclusive bound: every mantissa
// below it converts to float64 exactly.
const shortcutMantissaLimit = uint64(1) << 53

// tryShortcut attempts the exact-double fast path of spec.md §4.2. It
// returns (value, true) when applicable, else (0, false) and the
// caller must fall through to the Eisel-Lemire core.
func tryShortcut(mantissa uint64, exp10 int32, truncated bool) (float64, bool) {
	if truncated || mantissa >= shortcutMantissaLimit {
		return 0, false
	}

	if exp10 >= -22 && exp10 <= 22 {
		f := float64(mantissa)
		if exp10 < 0 {
			f /= exactPow10[-exp10]
		} else if exp10 > 0 {
			f *= exactPow10[exp10]
		}
		return f, true
	}

	if exp10 > 22 && exp10 <= 37 {
		// v = m * 10^(exp10-22); only exact if v stays within the
		// range where a float64 integer is still exact (<= 1e15).
		v := float64(mantissa) * exactPow10[exp10-22]
		if v <= 1e15 {
			return v * exactPow10[22], true
		}
	}

	return 0, false
}
