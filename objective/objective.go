// Package objective defines the scoring side of the brute-force solver:
// pure, total functions from a space.Point to a numeric score. Higher scores
// are better.
package objective

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/bruteopt/space"
)

// Objective scores a candidate point. Implementations must be pure and must
// not fail for any point of the declared search space.
type Objective interface {
	Score(p space.Point) float64
}

// Dimensioned is implemented by objectives defined over a fixed number of
// coordinates.
type Dimensioned interface {
	Dims() int
}

// Func adapts an ordinary function into an Objective.
type Func func(p space.Point) float64

// Score calls f(p).
func (f Func) Score(p space.Point) float64 { return f(p) }

// Linear is Σ Coeffs[i]·p[i] + Constant with integer coefficients,
// e.g. revenue 3A + 4B.
type Linear struct {
	Coeffs   []int
	Constant int
}

var (
	_ Objective   = Linear{}
	_ Dimensioned = Linear{}
	_ Objective   = Func(nil)
)

// NewLinear builds a Linear objective; coeffs is copied.
func NewLinear(coeffs []int, constant int) Linear {
	return Linear{Coeffs: slices.Clone(coeffs), Constant: constant}
}

// Dims returns the number of coefficients.
func (l Linear) Dims() int { return len(l.Coeffs) }

// Value evaluates the form exactly in integers.
func (l Linear) Value(p space.Point) int {
	v := l.Constant
	for i := 0; i < len(l.Coeffs) && i < len(p); i++ {
		v += l.Coeffs[i] * p[i]
	}

	return v
}

// Score returns Value(p) as a float64.
func (l Linear) Score(p space.Point) float64 { return float64(l.Value(p)) }

// Form renders the objective, e.g. "3A + 4B".
func (l Linear) Form(names []string) string {
	var b strings.Builder
	for i, c := range l.Coeffs {
		if c == 0 {
			continue
		}
		writeSigned(&b, c)
		if c < 0 {
			c = -c
		}
		if c != 1 {
			b.WriteString(strconv.Itoa(c))
		}
		if i < len(names) && names[i] != "" {
			b.WriteString(names[i])
		} else {
			b.WriteString("x" + strconv.Itoa(i+1))
		}
	}
	if l.Constant != 0 || b.Len() == 0 {
		c := l.Constant
		writeSigned(&b, c)
		if c < 0 {
			c = -c
		}
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}

// writeSigned writes the separator for a term with coefficient c.
func writeSigned(b *strings.Builder, c int) {
	switch {
	case b.Len() == 0 && c < 0:
		b.WriteString("-")
	case c < 0:
		b.WriteString(" - ")
	case b.Len() > 0:
		b.WriteString(" + ")
	}
}
