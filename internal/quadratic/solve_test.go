package quadratic

import (
	"encoding/json"
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestSolveScenarios(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []Root
		disc    float64
	}{
		{"two real roots", 1, 5, 6, []Root{RealRoot(-2), RealRoot(-3)}, 1},
		{"pure imaginary pair", 1, 0, 1, []Root{ComplexRoot(0, 1), ComplexRoot(0, -1)}, -4},
		{"double root", 1, 2, 1, []Root{RealRoot(-1)}, 0},
		{"identity", 0, 0, 0, []Root{AnyRoot()}, 0},
		{"contradiction", 0, 0, 5, []Root{}, 0},
		{"linear", 0, 2, -4, []Root{RealRoot(2)}, 0},
		{"mixed complex pair", 1, -2, 5, []Root{ComplexRoot(1, 2), ComplexRoot(1, -2)}, -16},
		{"negative leading coefficient", -1, 0, 4, []Root{RealRoot(-2), RealRoot(2)}, 16},
		{"zero root", 1, -3, 0, []Root{RealRoot(3), RealRoot(0)}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.a, tt.b, tt.c)
			if err != nil {
				t.Fatalf("Solve(%v, %v, %v) failed: %v", tt.a, tt.b, tt.c, err)
			}
			if got.Discriminant != tt.disc {
				t.Errorf("expected discriminant %v, got %v", tt.disc, got.Discriminant)
			}
			if got.Roots == nil {
				t.Fatal("expected non-nil root slice")
			}
			if len(got.Roots) != len(tt.want) {
				t.Fatalf("expected %d roots, got %d: %v", len(tt.want), len(got.Roots), got.Roots)
			}
			for i := range tt.want {
				if got.Roots[i] != tt.want[i] {
					t.Errorf("root %d: expected %+v, got %+v", i, tt.want[i], got.Roots[i])
				}
			}
		})
	}
}

func TestSolveDegenerateDiscriminantIsZero(t *testing.T) {
	for _, bc := range [][2]float64{{0, 0}, {0, 5}, {0, -3.5}, {2, -4}, {-7, 0}, {1e-3, 1e3}} {
		res, err := Solve(0, bc[0], bc[1])
		if err != nil {
			t.Fatalf("Solve(0, %v, %v) failed: %v", bc[0], bc[1], err)
		}
		if res.Discriminant != 0 {
			t.Errorf("Solve(0, %v, %v): expected discriminant 0, got %v", bc[0], bc[1], res.Discriminant)
		}
	}
}

func TestSolveLinearRoot(t *testing.T) {
	for _, bc := range [][2]float64{{2, -4}, {-3, 9}, {0.5, 0.25}, {7, 0}} {
		res, err := Solve(0, bc[0], bc[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Roots) != 1 || res.Roots[0].Kind != Real {
			t.Fatalf("expected one real root, got %v", res.Roots)
		}
		if want := -bc[1] / bc[0]; res.Roots[0].Re() != want {
			t.Errorf("expected %v, got %v", want, res.Roots[0].Re())
		}
	}
}

func TestSolveZeroDiscriminant(t *testing.T) {
	for _, abc := range [][3]float64{{1, 2, 1}, {4, 4, 1}, {2, -4, 2}, {-1, 6, -9}} {
		a, b, c := abc[0], abc[1], abc[2]
		res, err := Solve(a, b, c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Roots) != 1 || res.Roots[0].Kind != Real {
			t.Fatalf("Solve(%v, %v, %v): expected one real root, got %v", a, b, c, res.Roots)
		}
		if want := -b / (2 * a); res.Roots[0].Re() != want {
			t.Errorf("Solve(%v, %v, %v): expected %v, got %v", a, b, c, want, res.Roots[0].Re())
		}
	}
}

// Sweeps a grid of true quadratics and checks root type, count and the
// residual a·x² + b·x + c for every root.
func TestSolveRootsSatisfyEquation(t *testing.T) {
	as := []float64{-3, -1, 0.5, 2, 10}
	bs := []float64{-4, -1, 0, 2, 5.5}
	cs := []float64{-6, -1, 0, 1, 3}

	for _, a := range as {
		for _, b := range bs {
			for _, c := range cs {
				res, err := Solve(a, b, c)
				if err != nil {
					t.Fatalf("Solve(%v, %v, %v) failed: %v", a, b, c, err)
				}
				d := b*b - 4*a*c
				if res.Discriminant != d {
					t.Errorf("Solve(%v, %v, %v): expected discriminant %v, got %v", a, b, c, d, res.Discriminant)
				}

				switch {
				case d == 0:
					if len(res.Roots) != 1 {
						t.Errorf("Solve(%v, %v, %v): expected 1 root, got %v", a, b, c, res.Roots)
					}
				case d > 0:
					if len(res.Roots) != 2 || res.Roots[0].Kind != Real || res.Roots[1].Kind != Real {
						t.Errorf("Solve(%v, %v, %v): expected 2 real roots, got %v", a, b, c, res.Roots)
					}
				default:
					if len(res.Roots) != 2 || res.Roots[0].Kind != Complex || res.Roots[1].Kind != Complex {
						t.Fatalf("Solve(%v, %v, %v): expected 2 complex roots, got %v", a, b, c, res.Roots)
					}
					if res.Roots[0].Value != cmplx.Conj(res.Roots[1].Value) {
						t.Errorf("Solve(%v, %v, %v): roots are not conjugates: %v", a, b, c, res.Roots)
					}
				}

				scale := 1 + math.Abs(a) + math.Abs(b) + math.Abs(c)
				for _, r := range res.Roots {
					z := r.Value
					residual := complex(a, 0)*z*z + complex(b, 0)*z + complex(c, 0)
					if cmplx.Abs(residual) > 1e-6*scale {
						t.Errorf("Solve(%v, %v, %v): root %v has residual %v", a, b, c, z, residual)
					}
				}
			}
		}
	}
}

func TestSolveClampsRealNoise(t *testing.T) {
	res, err := Solve(1, 1e-12, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Root{ComplexRoot(0, 1), ComplexRoot(0, -1)}
	for i, r := range res.Roots {
		if r != want[i] {
			t.Errorf("root %d: expected %+v, got %+v", i, want[i], r)
		}
		if math.Signbit(r.Re()) {
			t.Errorf("root %d: expected positive zero real part", i)
		}
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   complex128
		want Root
	}{
		{complex(2, 1e-12), RealRoot(2)},
		{complex(2, -1e-9), RealRoot(2)},
		{complex(-1e-10, 3), ComplexRoot(0, 3)},
		{complex(-1e-10, -1e-10), RealRoot(0)},
		{complex(math.Copysign(0, -1), 0), RealRoot(0)},
		{complex(1, 2), ComplexRoot(1, 2)},
		{complex(1e-8, 2), ComplexRoot(1e-8, 2)},
	}
	for _, tt := range tests {
		got := canonical(tt.in)
		if got != tt.want {
			t.Errorf("canonical(%v): expected %+v, got %+v", tt.in, tt.want, got)
		}
		if math.Signbit(got.Re()) && got.Re() == 0 {
			t.Errorf("canonical(%v): real part is negative zero", tt.in)
		}
	}
}

func TestSolveRejectsNonFinite(t *testing.T) {
	inputs := [][3]float64{
		{math.NaN(), 1, 1},
		{1, math.Inf(1), 1},
		{1, 1, math.Inf(-1)},
	}
	for _, in := range inputs {
		_, err := Solve(in[0], in[1], in[2])
		if !errors.Is(err, ErrNonFinite) {
			t.Errorf("Solve(%v): expected ErrNonFinite, got %v", in, err)
		}
	}
}

func TestSolveOverflowIsNotRejected(t *testing.T) {
	res, err := Solve(1, 1e200, 1)
	if err != nil {
		t.Fatalf("expected overflow to propagate, got error %v", err)
	}
	if !math.IsInf(res.Discriminant, 1) {
		t.Errorf("expected +Inf discriminant, got %v", res.Discriminant)
	}
}

func TestSolveAny(t *testing.T) {
	res, err := SolveAny(json.Number("1"), int64(5), float32(6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Roots) != 2 || res.Roots[0] != RealRoot(-2) || res.Roots[1] != RealRoot(-3) {
		t.Errorf("unexpected roots: %v", res.Roots)
	}

	if _, err := SolveAny(uint8(0), 0, 0); err != nil {
		t.Errorf("unexpected error for integer zeros: %v", err)
	}
}

func TestSolveAnyTypeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c any
	}{
		{"strings", "1", "2", "3"},
		{"nil", nil, 2, 3},
		{"bool", 1, true, 3},
		{"map", 1, 2, map[string]any{"v": 3}},
		{"slice", []float64{1}, 2, 3},
		{"bad json number", json.Number("abc"), 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := SolveAny(tt.a, tt.b, tt.c)
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("expected ErrTypeMismatch, got %v", err)
			}
			if res.Roots != nil {
				t.Errorf("expected no result on failure, got %v", res.Roots)
			}
		})
	}
}

func TestSolveAnyNonFinite(t *testing.T) {
	for _, v := range []any{math.NaN(), math.Inf(1), json.Number("1e999")} {
		if _, err := SolveAny(1, v, 1); !errors.Is(err, ErrNonFinite) {
			t.Errorf("SolveAny(1, %v, 1): expected ErrNonFinite, got %v", v, err)
		}
	}
}

func TestCoefficientsSolve(t *testing.T) {
	res, err := Coefficients{A: 1, B: 2, C: 1}.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Roots) != 1 || res.Roots[0] != RealRoot(-1) {
		t.Errorf("unexpected roots: %v", res.Roots)
	}
}

func TestIsAnySet(t *testing.T) {
	if !IsAnySet([]Root{AnyRoot()}) {
		t.Error("expected single marker to be the any set")
	}
	if IsAnySet([]Root{AnyRoot(), RealRoot(1)}) {
		t.Error("expected two-element set not to be the any set")
	}
	if IsAnySet(nil) {
		t.Error("expected empty set not to be the any set")
	}
}
