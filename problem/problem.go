// Package problem bundles a search space, its constraints and an objective
// into one solvable unit, provides the canonical product-mix instance, and
// loads problems from YAML files.
package problem

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bruteopt/constraint"
	"github.com/katalvlaran/bruteopt/enumerate"
	"github.com/katalvlaran/bruteopt/objective"
	"github.com/katalvlaran/bruteopt/space"
)

// Sentinel errors for problem definitions.
var (
	// ErrUnknownVariable indicates a term referring to an undeclared variable.
	ErrUnknownVariable = errors.New("problem: unknown variable")

	// ErrDuplicateVariable indicates a variable declared twice.
	ErrDuplicateVariable = errors.New("problem: duplicate variable")

	// ErrEmptyLabel indicates a constraint without a label, or a variable without a name.
	ErrEmptyLabel = errors.New("problem: missing label")

	// ErrDuplicateLabel indicates two constraints sharing a label.
	ErrDuplicateLabel = errors.New("problem: duplicate constraint label")

	// ErrMissingBound indicates a variable declared without min or max.
	ErrMissingBound = errors.New("problem: variable bound missing")

	// ErrNotLinear indicates an operation that needs a linear objective and
	// linear constraints.
	ErrNotLinear = errors.New("problem: problem is not linear")
)

// Problem is a complete brute-force optimisation request.
type Problem struct {
	Name        string
	Space       space.Space
	Constraints constraint.Set
	Objective   objective.Objective
}

// Validate checks the space, the constraint arity, label uniqueness and the
// objective arity, in that order.
func (p Problem) Validate() error {
	if err := p.Space.Validate(); err != nil {
		return err
	}
	if err := p.Constraints.Validate(p.Space.Dims()); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(p.Constraints))
	for i, c := range p.Constraints {
		label := c.Label()
		if label == "" {
			return fmt.Errorf("constraint %d: %w", i, ErrEmptyLabel)
		}
		if _, ok := seen[label]; ok {
			return fmt.Errorf("constraint %d (%s): %w", i, label, ErrDuplicateLabel)
		}
		seen[label] = struct{}{}
	}
	if p.Objective == nil {
		return enumerate.ErrNilObjective
	}
	if d, ok := p.Objective.(objective.Dimensioned); ok && d.Dims() != p.Space.Dims() {
		return fmt.Errorf("objective has %d coefficients, space has %d dimensions: %w",
			d.Dims(), p.Space.Dims(), space.ErrDimensionMismatch)
	}

	return nil
}

// Names returns the variable names of the space.
func (p Problem) Names() []string { return p.Space.Names() }

// Solve validates p and runs the enumerator.
func (p Problem) Solve(opts ...enumerate.Option) (enumerate.Solution, error) {
	if err := p.Validate(); err != nil {
		return enumerate.Solution{}, fmt.Errorf("problem %q: %w", p.Name, err)
	}

	return enumerate.Solve(p.Space, p.Constraints, p.Objective, opts...)
}

// Verify reports per-constraint satisfaction and binding status at pt.
func (p Problem) Verify(pt space.Point) constraint.Report {
	return p.Constraints.Check(pt, p.Names())
}

// Linear reports whether every constraint and the objective are linear.
func (p Problem) Linear() bool {
	if _, ok := p.Objective.(objective.Linear); !ok {
		return false
	}
	for _, c := range p.Constraints {
		if _, ok := c.(constraint.Linear); !ok {
			return false
		}
	}

	return true
}

// WithRHS returns a copy of p whose linear constraint label has right-hand
// side rhs. It reports false when label is missing or not linear.
func (p Problem) WithRHS(label string, rhs int) (Problem, bool) {
	i := p.Constraints.Index(label)
	if i < 0 {
		return p, false
	}
	lin, ok := p.Constraints[i].(constraint.Linear)
	if !ok {
		return p, false
	}
	out := p
	out.Constraints = p.Constraints.Replace(i, lin.WithRHS(rhs))

	return out, true
}
