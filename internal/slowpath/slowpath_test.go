package slowpath_test

import (
	"math"
	"testing"

	"github.com/codedude/fastfloat/internal/slowpath"
)

func TestParseKnownValues(t *testing.T) {
	cases := []struct {
		text string
		want uint64
	}{
		{"0", 0x0000000000000000},
		{"-0.0", 0x8000000000000000},
		{"1e309", 0x7FF0000000000000},
		{"1e-324", 0x0000000000000000},
		{"2.2250738585072012e-308", 0x0010000000000000},
		{"1.7976931348623157e308", 0x7FEFFFFFFFFFFFFF},
		{"0.1", 0x3FB999999999999A},
		{"12345678901234567890", 0x43E56A95319D63E1},
	}
	var p slowpath.Parser
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			got, err := p.Parse(c.text)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", c.text, err)
			}
			if gotBits := math.Float64bits(got); gotBits != c.want {
				t.Errorf("Parse(%q) = 0x%016X, want 0x%016X", c.text, gotBits, c.want)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	var p slowpath.Parser
	cases := []string{"", "NaN", "Infinity", "+1", "01", "1.", ".5", " 1", "0x1"}
	for _, text := range cases {
		t.Run(text, func(t *testing.T) {
			if _, err := p.Parse(text); err == nil {
				t.Errorf("Parse(%q) = nil error, want rejection", text)
			}
		})
	}
}

func TestParseOverflowIsInfinity(t *testing.T) {
	var p slowpath.Parser
	got, err := p.Parse("1" + zeros(400))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("got %v, want +Inf", got)
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
