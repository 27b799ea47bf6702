package quadratic

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Tolerance is the absolute distance from zero below which a root's real or
// imaginary part is clamped to exactly zero.
const Tolerance = 1e-9

var (
	// ErrTypeMismatch is returned when a coefficient is not a real number.
	ErrTypeMismatch = errors.New("coefficient is not a real number")
	// ErrNonFinite is returned for NaN or infinite coefficients.
	ErrNonFinite = errors.New("coefficient is not finite")
)

// Coefficients holds a, b and c of a·x² + b·x + c = 0.
type Coefficients struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Solve is shorthand for Solve(c.A, c.B, c.C).
func (c Coefficients) Solve() (Result, error) {
	return Solve(c.A, c.B, c.C)
}

// Result is the ordered root set and the discriminant. Discriminant is 0
// whenever a == 0.
type Result struct {
	Roots        []Root
	Discriminant float64
}

// Solve returns the roots of a·x² + b·x + c = 0.
//
// With a == 0 the equation degenerates: 0 = 0 yields the AnyNumber marker,
// 0 = c with c != 0 yields no roots, and b·x + c = 0 yields -c/b. Otherwise
// a zero discriminant yields the single root -b/2a and any other
// discriminant yields [(-b+√d)/2a, (-b-√d)/2a] in that order, each
// canonicalised as real, pure imaginary or full complex.
func Solve(a, b, c float64) (Result, error) {
	if err := checkFinite(a, b, c); err != nil {
		return Result{}, err
	}

	if a == 0 {
		switch {
		case b == 0 && c == 0:
			return Result{Roots: []Root{AnyRoot()}}, nil
		case b == 0:
			return Result{Roots: []Root{}}, nil
		default:
			return Result{Roots: []Root{RealRoot(-c / b)}}, nil
		}
	}

	d := b*b - 4*a*c
	if d == 0 {
		return Result{Roots: []Root{RealRoot(-b / (2 * a))}, Discriminant: d}, nil
	}

	sq := cmplx.Sqrt(complex(d, 0))
	den := 2 * a
	x1 := complex((-b+real(sq))/den, imag(sq)/den)
	x2 := complex((-b-real(sq))/den, -imag(sq)/den)

	return Result{
		Roots:        []Root{canonical(x1), canonical(x2)},
		Discriminant: d,
	}, nil
}

// SolveAny is Solve for dynamically typed coefficients, such as values out
// of a decoded JSON document. Anything that is not a Go numeric type or a
// json.Number fails with ErrTypeMismatch before any arithmetic is done.
func SolveAny(a, b, c any) (Result, error) {
	var xs [3]float64
	for i, v := range [3]any{a, b, c} {
		x, err := RealValue(v)
		if err != nil {
			return Result{}, fmt.Errorf("coefficient %s: %w", coefficientNames[i], err)
		}
		xs[i] = x
	}
	return Solve(xs[0], xs[1], xs[2])
}

var coefficientNames = [3]string{"a", "b", "c"}

// RealValue converts a numeric value to float64. Strings, nil, booleans and
// composite values are rejected with ErrTypeMismatch.
func RealValue(v any) (float64, error) {
	var x float64
	switch n := v.(type) {
	case float64:
		x = n
	case float32:
		x = float64(n)
	case int:
		x = float64(n)
	case int8:
		x = float64(n)
	case int16:
		x = float64(n)
	case int32:
		x = float64(n)
	case int64:
		x = float64(n)
	case uint:
		x = float64(n)
	case uint8:
		x = float64(n)
	case uint16:
		x = float64(n)
	case uint32:
		x = float64(n)
	case uint64:
		x = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil && !math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q", ErrTypeMismatch, n.String())
		}
		x = f
	default:
		return 0, fmt.Errorf("%w: got %T", ErrTypeMismatch, v)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNonFinite, x)
	}
	return x, nil
}

func checkFinite(xs ...float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("coefficient %s: %w: %v", coefficientNames[i], ErrNonFinite, x)
		}
	}
	return nil
}

func canonical(z complex128) Root {
	re, im := clamp(real(z)), clamp(imag(z))
	switch {
	case im == 0:
		return RealRoot(re)
	case re == 0:
		return ComplexRoot(0, im)
	default:
		return ComplexRoot(re, im)
	}
}

func clamp(x float64) float64 {
	if math.Abs(x) <= Tolerance {
		return 0
	}
	return x
}
