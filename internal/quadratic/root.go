package quadratic

// AnyNumberLabel is the wire form of the "every real is a solution" marker.
const AnyNumberLabel = "any number"

// Kind tags the variant a Root holds.
type Kind int

const (
	Real Kind = iota
	Complex
	AnyNumber
)

func (k Kind) String() string {
	switch k {
	case Real:
		return "real"
	case Complex:
		return "complex"
	case AnyNumber:
		return "any"
	default:
		return "unknown"
	}
}

// Root is a single solution. Real roots keep their value in the real part
// of Value with a zero imaginary part; AnyNumber roots carry no value.
type Root struct {
	Kind  Kind
	Value complex128
}

func RealRoot(x float64) Root {
	return Root{Kind: Real, Value: complex(x, 0)}
}

func ComplexRoot(re, im float64) Root {
	return Root{Kind: Complex, Value: complex(re, im)}
}

func AnyRoot() Root {
	return Root{Kind: AnyNumber}
}

func (r Root) Re() float64 { return real(r.Value) }
func (r Root) Im() float64 { return imag(r.Value) }

// IsAny reports whether r is the AnyNumber marker.
func (r Root) IsAny() bool { return r.Kind == AnyNumber }

// IsAnySet reports whether roots is exactly the single AnyNumber marker.
func IsAnySet(roots []Root) bool {
	return len(roots) == 1 && roots[0].IsAny()
}
