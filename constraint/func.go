package constraint

import "github.com/katalvlaran/bruteopt/space"

// Func adapts an arbitrary predicate into a Constraint.
//
// Pred must be pure. A nil Pred holds vacuously. Bind, when set, decides
// whether a satisfied point sits on the constraint boundary; without it the
// constraint is never reported as binding.
type Func struct {
	Name   string
	Symbol string // symbolic form shown by the verifier; defaults to Name
	Pred   func(p space.Point) bool
	Bind   func(p space.Point) bool
}

var (
	_ Constraint = Func{}
	_ Explainer  = Func{}
)

// Label returns the constraint name.
func (f Func) Label() string { return f.Name }

// Holds reports whether p satisfies the predicate.
func (f Func) Holds(p space.Point) bool {
	if f.Pred == nil {
		return true
	}

	return f.Pred(p)
}

// Form returns Symbol, or Name when no symbol was given.
func (f Func) Form([]string) string {
	if f.Symbol != "" {
		return f.Symbol
	}

	return f.Name
}

// Expression returns the point itself; an opaque predicate has nothing to substitute.
func (f Func) Expression(p space.Point, _ []string) string { return p.String() }

// Binding reports whether p holds and Bind accepts it.
func (f Func) Binding(p space.Point) bool {
	return f.Bind != nil && f.Holds(p) && f.Bind(p)
}
