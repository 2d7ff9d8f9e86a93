package sensitivity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bruteopt/constraint"
	"github.com/katalvlaran/bruteopt/enumerate"
	"github.com/katalvlaran/bruteopt/problem"
	"github.com/katalvlaran/bruteopt/space"
)

// Sentinel errors for sensitivity analysis.
var (
	// ErrUnknownConstraint indicates a label absent from the problem.
	ErrUnknownConstraint = errors.New("sensitivity: unknown constraint")

	// ErrRelaxation indicates the LP relaxation could not be solved.
	ErrRelaxation = errors.New("sensitivity: LP relaxation failed")
)

// Slack is the distance of one linear constraint from its boundary.
type Slack struct {
	Label   string
	Form    string
	Slack   int
	Binding bool
}

// Slacks returns the slack of every linear constraint at pt, in order.
// Non-linear constraints are skipped.
func Slacks(pb problem.Problem, pt space.Point) []Slack {
	names := pb.Names()
	var out []Slack
	for _, c := range pb.Constraints {
		lin, ok := c.(constraint.Linear)
		if !ok {
			continue
		}
		out = append(out, Slack{
			Label:   lin.Name,
			Form:    lin.Form(names),
			Slack:   lin.Slack(pt),
			Binding: lin.Binding(pt),
		})
	}

	return out
}

// WhatIf compares the optimum before and after changing one right-hand side.
type WhatIf struct {
	Label  string
	OldRHS int
	NewRHS int
	Before enumerate.Solution
	After  enumerate.Solution
}

// Delta returns the change of the optimal objective. ok is false when either
// side has no optimum.
func (w WhatIf) Delta() (delta float64, ok bool) {
	if !w.Before.Found() || !w.After.Found() {
		return 0, false
	}

	return w.After.BestScore() - w.Before.BestScore(), true
}

// ShadowPrice estimates the objective change per unit of right-hand side.
// ok is false when Delta is undefined or the RHS did not change.
func (w WhatIf) ShadowPrice() (price float64, ok bool) {
	delta, ok := w.Delta()
	if !ok || w.NewRHS == w.OldRHS {
		return 0, false
	}

	return delta / float64(w.NewRHS-w.OldRHS), true
}

// Relax solves pb as given and again with constraint label's right-hand side
// set to newRHS.
func Relax(pb problem.Problem, label string, newRHS int, opts ...enumerate.Option) (WhatIf, error) {
	i := pb.Constraints.Index(label)
	if i < 0 {
		return WhatIf{}, fmt.Errorf("%q: %w", label, ErrUnknownConstraint)
	}
	lin, ok := pb.Constraints[i].(constraint.Linear)
	if !ok {
		return WhatIf{}, fmt.Errorf("constraint %q: %w", label, problem.ErrNotLinear)
	}

	before, err := pb.Solve(opts...)
	if err != nil {
		return WhatIf{}, err
	}
	relaxed, _ := pb.WithRHS(label, newRHS)
	after, err := relaxed.Solve(opts...)
	if err != nil {
		return WhatIf{}, err
	}

	return WhatIf{Label: label, OldRHS: lin.RHS, NewRHS: newRHS, Before: before, After: after}, nil
}

// Analysis is the sensitivity summary of a problem at its integer optimum.
type Analysis struct {
	Solution enumerate.Solution
	Slacks   []Slack
	WhatIf   WhatIf
	Bound    Bound // zero when the relaxation is unavailable
	HasBound bool
}

// Gap returns the integrality gap Bound.Value − optimum. ok is false without
// a bound or an optimum.
func (a Analysis) Gap() (gap float64, ok bool) {
	if !a.HasBound || !a.Solution.Found() {
		return 0, false
	}

	return a.Bound.Value - a.Solution.BestScore(), true
}

// Analyze solves pb, computes the slacks at the optimum, runs a what-if on
// label with newRHS and, for linear problems, the LP bound.
//
// A failing relaxation does not fail the analysis; HasBound is then false.
func Analyze(pb problem.Problem, label string, newRHS int, opts ...enumerate.Option) (Analysis, error) {
	w, err := Relax(pb, label, newRHS, opts...)
	if err != nil {
		return Analysis{}, err
	}
	a := Analysis{Solution: w.Before, WhatIf: w}
	if w.Before.Found() {
		a.Slacks = Slacks(pb, w.Before.Best())
	}
	if b, err := RelaxationBound(pb); err == nil {
		a.Bound, a.HasBound = b, true
	}

	return a, nil
}
