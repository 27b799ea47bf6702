package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"quadsolve/internal/quadratic"
)

// SolveRequest is the request contract:
//
//	{"params": {"a": 1, "b": -5, "c": 6}}
//
// Servers read it with ParseSolveRequest, which also accepts numeric
// strings; clients send it as-is.
type SolveRequest struct {
	Params quadratic.Coefficients `json:"params"`
}

var (
	ErrBadJSON            = errors.New("malformed JSON")
	ErrMissingParams      = errors.New("missing params object")
	ErrMissingCoefficient = errors.New("missing coefficient")
	ErrNotNumeric         = errors.New("not a number")
)

// CoefficientError reports which coefficients are missing or unusable.
type CoefficientError struct {
	Names []string
	Err   error
}

func (e *CoefficientError) Error() string {
	names := strings.Join(e.Names, ", ")
	if errors.Is(e.Err, ErrMissingCoefficient) {
		return "missing coefficients: " + names
	}
	return fmt.Sprintf("coefficient %s: %v", names, e.Err)
}

func (e *CoefficientError) Unwrap() error {
	return e.Err
}

var coefficientKeys = []string{"a", "b", "c"}

// ParseSolveRequest decodes a request body into coefficients. Each of a, b
// and c may be a JSON number or a string holding one; any other JSON type,
// a missing key or a missing params object is an error. Extra keys are
// ignored.
func ParseSolveRequest(body []byte) (quadratic.Coefficients, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return quadratic.Coefficients{}, fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return quadratic.Coefficients{}, fmt.Errorf("%w: trailing data after object", ErrBadJSON)
	}

	params, ok := doc["params"].(map[string]any)
	if !ok {
		return quadratic.Coefficients{}, ErrMissingParams
	}

	var missing []string
	for _, k := range coefficientKeys {
		if _, ok := params[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return quadratic.Coefficients{}, &CoefficientError{Names: missing, Err: ErrMissingCoefficient}
	}

	var xs [3]float64
	for i, k := range coefficientKeys {
		x, err := coerce(params[k])
		if err != nil {
			return quadratic.Coefficients{}, &CoefficientError{Names: []string{k}, Err: err}
		}
		xs[i] = x
	}
	return quadratic.Coefficients{A: xs[0], B: xs[1], C: xs[2]}, nil
}

func coerce(v any) (float64, error) {
	switch x := v.(type) {
	case json.Number:
		return quadratic.RealValue(x)
	case string:
		s := strings.TrimSpace(x)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, x)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q", quadratic.ErrNonFinite, x)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("%w: null", ErrNotNumeric)
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}
