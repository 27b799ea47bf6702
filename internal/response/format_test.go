package response

import (
	"math"
	"testing"
)

func TestFormatComplex(t *testing.T) {
	negZero := math.Copysign(0, -1)

	tests := []struct {
		in   complex128
		want string
	}{
		{complex(1, 2), "(1+2j)"},
		{complex(0, 1), "1j"},
		{complex(0, -1), "-1j"},
		{complex(negZero, -1), "-1j"},
		{complex(-0.5, -1.5), "(-0.5-1.5j)"},
		{complex(2.25, 0.1), "(2.25+0.1j)"},
		{complex(1234567.5, 3), "(1234567.5+3j)"},
		{complex(1e-5, 2), "(1e-05+2j)"},
		{complex(1e16, 1), "(1e+16+1j)"},
		{complex(1, 0), "(1+0j)"},
		{complex(1, negZero), "(1+0j)"},
		{complex(math.NaN(), 1), "(nan+1j)"},
		{complex(0, math.Inf(1)), "infj"},
		{complex(2, math.Inf(-1)), "(2-infj)"},
	}

	for _, tt := range tests {
		if got := FormatComplex(tt.in); got != tt.want {
			t.Errorf("FormatComplex(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
