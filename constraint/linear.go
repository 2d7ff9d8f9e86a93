package constraint

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/bruteopt/space"
)

// Op is the comparison of a Linear constraint.
type Op int

const (
	// LE is Σ ≤ RHS.
	LE Op = iota
	// LT is Σ < RHS.
	LT
	// GE is Σ ≥ RHS.
	GE
	// GT is Σ > RHS.
	GT
	// EQ is Σ = RHS.
	EQ
)

// String returns the mathematical symbol of o.
func (o Op) String() string {
	switch o {
	case LE:
		return "≤"
	case LT:
		return "<"
	case GE:
		return "≥"
	case GT:
		return ">"
	case EQ:
		return "="
	default:
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
}

// Strict reports whether o excludes equality.
func (o Op) Strict() bool { return o == LT || o == GT }

// ParseOp accepts both ASCII and Unicode spellings: <= ≤ < >= ≥ > = ==.
func ParseOp(s string) (Op, error) {
	switch strings.TrimSpace(s) {
	case "<=", "≤":
		return LE, nil
	case "<":
		return LT, nil
	case ">=", "≥":
		return GE, nil
	case ">":
		return GT, nil
	case "=", "==":
		return EQ, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownOp)
}

// compare applies o to lhs and rhs.
func (o Op) compare(lhs, rhs int) bool {
	switch o {
	case LE:
		return lhs <= rhs
	case LT:
		return lhs < rhs
	case GE:
		return lhs >= rhs
	case GT:
		return lhs > rhs
	case EQ:
		return lhs == rhs
	}

	return false
}

// Linear is the constraint Σ Coeffs[i]·p[i] Op RHS.
type Linear struct {
	Name   string
	Coeffs []int
	Op     Op
	RHS    int
}

var (
	_ Constraint  = Linear{}
	_ Explainer   = Linear{}
	_ Dimensioned = Linear{}
)

// NewLinear builds a Linear constraint; coeffs is copied.
func NewLinear(name string, coeffs []int, op Op, rhs int) Linear {
	return Linear{Name: name, Coeffs: slices.Clone(coeffs), Op: op, RHS: rhs}
}

// Label returns the constraint name.
func (l Linear) Label() string { return l.Name }

// Dims returns the number of coefficients.
func (l Linear) Dims() int { return len(l.Coeffs) }

// LHS evaluates Σ Coeffs[i]·p[i]. Coordinates beyond the shorter of the two
// slices are ignored; Set.Validate rejects such mismatches up front.
func (l Linear) LHS(p space.Point) int {
	sum := 0
	for i := 0; i < len(l.Coeffs) && i < len(p); i++ {
		sum += l.Coeffs[i] * p[i]
	}

	return sum
}

// Holds reports whether p satisfies the constraint.
func (l Linear) Holds(p space.Point) bool { return l.Op.compare(l.LHS(p), l.RHS) }

// Slack is the distance to the boundary: RHS−LHS for ≤ and <, LHS−RHS for
// ≥ and >, and −|LHS−RHS| for =. A negative slack means a violation, except
// for strict inequalities where slack 0 is already infeasible.
func (l Linear) Slack(p space.Point) int {
	lhs := l.LHS(p)
	switch l.Op {
	case LE, LT:
		return l.RHS - lhs
	case GE, GT:
		return lhs - l.RHS
	}
	if lhs > l.RHS {
		return l.RHS - lhs
	}

	return lhs - l.RHS
}

// Binding reports whether the constraint holds with equality at p.
func (l Linear) Binding(p space.Point) bool {
	return !l.Op.Strict() && l.LHS(p) == l.RHS
}

// WithRHS returns a copy of l with a different right-hand side.
func (l Linear) WithRHS(rhs int) Linear {
	return NewLinear(l.Name, l.Coeffs, l.Op, rhs)
}

// Form renders the constraint symbolically, e.g. "A + 2B ≤ 14".
func (l Linear) Form(names []string) string {
	lhs := formTerms(l.Coeffs, func(i, c int) string {
		if c == 1 {
			return nameAt(names, i)
		}

		return strconv.Itoa(c) + nameAt(names, i)
	})

	return lhs + " " + l.Op.String() + " " + strconv.Itoa(l.RHS)
}

// Expression renders the constraint evaluated at p.
//
// A lone unit term is shown as a comparison ("3 ≥ 3"); anything else shows the
// substitution and its value ("8 + 2(3) = 14").
func (l Linear) Expression(p space.Point, _ []string) string {
	nonZero, unit := 0, -1
	for i, c := range l.Coeffs {
		if c != 0 {
			nonZero++
			if c == 1 {
				unit = i
			}
		}
	}
	if nonZero == 1 && unit >= 0 {
		return fmt.Sprintf("%d %s %d", coord(p, unit), l.Op, l.RHS)
	}

	sub := formTerms(l.Coeffs, func(i, c int) string {
		v := coord(p, i)
		switch {
		case c != 1:
			return fmt.Sprintf("%d(%d)", c, v)
		case v < 0:
			return fmt.Sprintf("(%d)", v)
		default:
			return strconv.Itoa(v)
		}
	})

	return fmt.Sprintf("%s = %d", sub, l.LHS(p))
}

// formTerms joins the non-zero terms of coeffs with + and -, delegating the
// rendering of term i with absolute coefficient c to term.
func formTerms(coeffs []int, term func(i, c int) string) string {
	var b strings.Builder
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
			c = -c
		case c < 0:
			b.WriteString(" - ")
			c = -c
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		b.WriteString(term(i, c))
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}

// coord returns p[i], or 0 when p is too short.
func coord(p space.Point, i int) int {
	if i < len(p) {
		return p[i]
	}

	return 0
}

// nameAt returns names[i], falling back to x1, x2, … like space.Space.Names.
func nameAt(names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}

	return "x" + strconv.Itoa(i+1)
}
