// Package response turns solver output into the JSON response contract:
//
//	{"result": {"roots": [...], "discriminant": n, "message": "..."}, "error": null}
//
// Complex roots have no JSON form, so they are rendered as text ("(1+2j)",
// "1j"). Encoding never fails from the caller's point of view: a value the
// JSON encoder rejects is replaced by the fixed error shape.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"

	"quadsolve/internal/quadratic"
)

const (
	MessageInfinite = "Success! Infinite solutions"
	MessageNoRoots  = "Success! No real roots"
	MessageOneRoot  = "Success! One root"
	MessageTwoRoots = "Success! Two roots"
	MessageError    = "Error"
)

// Result is the "result" member of the response contract. Roots holds
// float64 values for real roots and strings for everything else.
type Result struct {
	Roots        []any   `json:"roots"`
	Discriminant float64 `json:"discriminant"`
	Message      string  `json:"message"`
}

type Response struct {
	Result Result  `json:"result"`
	Error  *string `json:"error"`
}

// New builds the response for a root set. The message depends only on the
// shape of roots; errMsg is attached as-is and does not change it.
func New(roots []quadratic.Root, discriminant float64, errMsg *string) Response {
	return Response{
		Result: Result{
			Roots:        wireRoots(roots),
			Discriminant: discriminant,
			Message:      Message(roots),
		},
		Error: errMsg,
	}
}

// NewError is the fixed error shape: no roots, zero discriminant.
func NewError(msg string) Response {
	return Response{
		Result: Result{
			Roots:        []any{},
			Discriminant: 0,
			Message:      MessageError,
		},
		Error: &msg,
	}
}

// Message derives the success message from the shape of roots.
func Message(roots []quadratic.Root) string {
	switch {
	case quadratic.IsAnySet(roots):
		return MessageInfinite
	case len(roots) == 0:
		return MessageNoRoots
	case len(roots) == 1:
		return MessageOneRoot
	default:
		return MessageTwoRoots
	}
}

// Encode is Marshal(New(roots, discriminant, errMsg)).
func Encode(roots []quadratic.Root, discriminant float64, errMsg *string) []byte {
	return Marshal(New(roots, discriminant, errMsg))
}

// EncodeError is Marshal(NewError(msg)).
func EncodeError(msg string) []byte {
	return Marshal(NewError(msg))
}

// Marshal serialises resp. If the JSON encoder rejects it (NaN or Inf from
// an overflowing computation) the error shape describing the failure is
// returned instead.
func Marshal(resp Response) []byte {
	b, _ := MarshalReport(resp)
	return b
}

// MarshalReport is Marshal that also returns the encoding error that forced
// the fallback, if any. The returned bytes are always a valid response.
func MarshalReport(resp Response) ([]byte, error) {
	b, err := marshal(resp)
	if err != nil {
		// the error shape holds no floats besides 0 and cannot fail
		b, _ = marshal(NewError(fmt.Sprintf("encoding failed: %v", err)))
		return b, err
	}
	return b, nil
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func wireRoots(roots []quadratic.Root) []any {
	out := make([]any, 0, len(roots))
	for _, r := range roots {
		switch r.Kind {
		case quadratic.Real:
			out = append(out, r.Re())
		case quadratic.AnyNumber:
			out = append(out, quadratic.AnyNumberLabel)
		default:
			out = append(out, FormatComplex(r.Value))
		}
	}
	return out
}
