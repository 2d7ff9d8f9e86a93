package constraint

import (
	"errors"

	"github.com/katalvlaran/bruteopt/space"
)

// Sentinel errors for constraint construction and validation.
var (
	// ErrUnknownOp is returned by ParseOp for an unrecognised comparison.
	ErrUnknownOp = errors.New("constraint: unknown comparison operator")

	// ErrNilConstraint indicates a nil entry inside a Set.
	ErrNilConstraint = errors.New("constraint: nil constraint in set")
)

// Constraint is a labelled predicate over a candidate point.
// Implementations must be pure: the same point always yields the same answer.
type Constraint interface {
	Label() string
	Holds(p space.Point) bool
}

// Explainer is implemented by constraints that can describe themselves for
// the verifier. Constraints without it are reported by label only.
type Explainer interface {
	// Form returns the symbolic form, e.g. "A + 2B ≤ 14".
	Form(names []string) string
	// Expression returns the form evaluated at p, e.g. "8 + 2(3) = 14".
	Expression(p space.Point, names []string) string
	// Binding reports whether the constraint holds at p with zero slack.
	Binding(p space.Point) bool
}

// Dimensioned is implemented by constraints defined over a fixed number of
// coordinates, so that arity mismatches are caught before a search starts.
type Dimensioned interface {
	Dims() int
}

// Status is the verifier's verdict for one constraint at one point.
type Status struct {
	Label      string // constraint label, e.g. "transportation"
	Form       string // symbolic form, e.g. "A + 2B ≤ 14"
	Expression string // evaluated form, e.g. "8 + 2(3) = 14"
	Satisfied  bool
	Binding    bool // satisfied with equality
}

// Report is the per-constraint verification of a single point, in Set order.
type Report struct {
	Point    space.Point
	Statuses []Status
}
