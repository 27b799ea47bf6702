package quadratic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrBadEquation is returned when an equation string cannot be read as a
// polynomial of degree at most two in a single variable.
var ErrBadEquation = errors.New("invalid equation")

// equationGrammar reads "<side> [= <side>]".
// Examples: "x^2 + 5x + 6 = 0", "2*x^2 - 4", "-x^2 = -1", "3y = 6"
//
//nolint:govet // participle grammar tags are not standard struct tags
type equationGrammar struct {
	Left  *side `@@`
	Right *side `( "=" @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type side struct {
	Head *term         `@@`
	Tail []*signedTerm `@@*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type signedTerm struct {
	Op   string `@( "+" | "-" )`
	Term *term  `@@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type term struct {
	Neg  bool     `@"-"?`
	Coef *float64 `( @Number`
	Var  *power   `  ( "*"? @@ )?`
	Bare *power   `| @@ )`
}

//nolint:govet // participle grammar tags are not standard struct tags
type power struct {
	Name string   `@Ident`
	Exp  *float64 `( "^" @Number )?`
}

var equationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z]`},
	{Name: "Punct", Pattern: `[-+*^=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var equationParser = participle.MustBuild[equationGrammar](
	participle.Lexer(equationLexer),
	participle.Elide("Whitespace"),
)

// ParseEquation reads a polynomial equation of degree at most two and
// returns its coefficients with every term moved to the left-hand side.
// A missing right-hand side means "= 0".
func ParseEquation(s string) (Coefficients, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Coefficients{}, fmt.Errorf("%w: empty equation", ErrBadEquation)
	}

	eq, err := equationParser.ParseString("", s)
	if err != nil {
		return Coefficients{}, fmt.Errorf("%w: %q: %v", ErrBadEquation, s, err)
	}

	// indexed by degree
	var acc [3]float64
	variable := ""

	add := func(t *term, sign float64) error {
		coef := 1.0
		if t.Coef != nil {
			coef = *t.Coef
		}
		if t.Neg {
			coef = -coef
		}

		p := t.Var
		if p == nil {
			p = t.Bare
		}
		degree := 0
		if p != nil {
			if variable == "" {
				variable = p.Name
			} else if p.Name != variable {
				return fmt.Errorf("%w: more than one variable (%s, %s)", ErrBadEquation, variable, p.Name)
			}
			degree = 1
			if p.Exp != nil {
				switch *p.Exp {
				case 0, 1, 2:
					degree = int(*p.Exp)
				default:
					return fmt.Errorf("%w: unsupported exponent %v", ErrBadEquation, *p.Exp)
				}
			}
		}
		acc[degree] += sign * coef
		return nil
	}

	addSide := func(sd *side, sign float64) error {
		if err := add(sd.Head, sign); err != nil {
			return err
		}
		for _, st := range sd.Tail {
			s := sign
			if st.Op == "-" {
				s = -sign
			}
			if err := add(st.Term, s); err != nil {
				return err
			}
		}
		return nil
	}

	if err := addSide(eq.Left, 1); err != nil {
		return Coefficients{}, err
	}
	if eq.Right != nil {
		if err := addSide(eq.Right, -1); err != nil {
			return Coefficients{}, err
		}
	}

	return Coefficients{A: acc[2], B: acc[1], C: acc[0]}, nil
}
