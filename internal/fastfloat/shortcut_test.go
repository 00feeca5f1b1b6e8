package fastfloat

import "testing"

func TestTryShortcut(t *testing.T) {
	cases := []struct {
		mantissa  uint64
		exp10     int32
		truncated bool
		want      float64
		ok        bool
	}{
		{1, 0, false, 1, true},
		{1, -1, false, 0.1, true},
		{5, 22, false, 5e22, true},
		{123456, -3, false, 123.456, true},
		{1, 23, false, 1e23, true}, // plain range ends at 22; 23 falls into the extended branch
		{9, 37, false, 0, false},  // too large even for the extended branch
		{9, 38, false, 0, false},  // beyond the extended branch entirely
		{1, 23, true, 0, false},   // truncated mantissas never take the shortcut
		{shortcutMantissaLimit, 0, false, 0, false},
	}
	for _, c := range cases {
		got, ok := tryShortcut(c.mantissa, c.exp10, c.truncated)
		if ok != c.ok {
			t.Errorf("tryShortcut(%d, %d, %v) ok = %v, want %v", c.mantissa, c.exp10, c.truncated, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("tryShortcut(%d, %d, %v) = %v, want %v", c.mantissa, c.exp10, c.truncated, got, c.want)
		}
	}
}

func TestTryShortcutExtendedRange(t *testing.T) {
	// exp10 in (22, 37] is only a shortcut when the rescaled value
	// still fits exactly in a float64 integer (<= 1e15).
	got, ok := tryShortcut(1, 30, false)
	if !ok {
		t.Fatalf("expected shortcut to apply")
	}
	if got != 1e30 {
		t.Errorf("got %v, want 1e30", got)
	}
}
