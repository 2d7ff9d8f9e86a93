package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/katalvlaran/bruteopt/digits"
	"github.com/katalvlaran/bruteopt/sensitivity"
)

// gapEpsilon absorbs simplex round-off when printing the integrality gap.
const gapEpsilon = 1e-9

// Sensitivity prints slacks at the optimum, the what-if comparison, the
// shadow-price estimate and, when available, the LP bound with its gap.
func Sensitivity(w io.Writer, a sensitivity.Analysis) error {
	ew := &errWriter{w: w}
	ew.title("SENSITIVITY ANALYSIS")
	if !a.Solution.Found() {
		ew.printf("No feasible optimum; slacks are undefined.\n")
	} else {
		ew.printf("Slack at %s:\n", a.Solution.Best())
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, s := range a.Slacks {
			mark := ""
			if s.Binding {
				mark = yellow("BINDING")
			}
			if ew.err == nil {
				_, ew.err = fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\n", s.Label, s.Form, s.Slack, mark)
			}
		}
		if err := tw.Flush(); ew.err == nil {
			ew.err = err
		}
	}

	wi := a.WhatIf
	ew.printf("\nWhat-if: %s right-hand side %d → %d\n", wi.Label, wi.OldRHS, wi.NewRHS)
	if wi.After.Found() {
		ew.printf("  New optimum: %s with objective %g\n", wi.After.Best(), wi.After.BestScore())
	} else {
		ew.printf("  New optimum: none (infeasible)\n")
	}
	if d, ok := wi.Delta(); ok {
		ew.printf("  Objective change: %+g\n", d)
	}
	if p, ok := wi.ShadowPrice(); ok {
		ew.printf("  Shadow price estimate: %g per unit\n", p)
	}

	if a.HasBound {
		ew.printf("\nLP relaxation bound: %.4g\n", a.Bound.Value)
		if g, ok := a.Gap(); ok {
			if math.Abs(g) < gapEpsilon {
				g = 0
			}
			ew.printf("Integrality gap: %.4g\n", g)
		}
	}

	return ew.err
}

// Digits prints a digit analysis, ending with the per-position breakdown.
func Digits(w io.Writer, a digits.Analysis) error {
	ew := &errWriter{w: w}
	ew.printf("Student ID: %s\n", a.ID)
	ew.printf("Digits: %v\n", a.Digits)
	ew.printf("Maximum: %d at index %d\n", a.Max, a.MaxIndex)
	if a.HasSecondMax {
		ew.printf("Second maximum: %d\n", a.SecondMax)
	} else {
		ew.printf("Second maximum: none\n")
	}
	ew.printf("Distinct digits: %v (%d)\n", a.Distinct, len(a.Distinct))
	ew.printf("Smaller counts: %v\n", a.Smaller)
	for i, d := range a.Digits {
		ew.printf("  position %d: digit %d has %d smaller\n", i, d, a.Smaller[i])
	}

	return ew.err
}
