package report_test

import (
	"os"

	"github.com/fatih/color"

	"github.com/katalvlaran/bruteopt/problem"
	"github.com/katalvlaran/bruteopt/report"
)

// ExampleVerification checks the canonical optimum against every constraint.
func ExampleVerification() {
	color.NoColor = true
	pb := problem.ProductMix()
	sol, _ := pb.Solve()
	_ = report.Verification(os.Stdout, pb.Verify(sol.Best()))
	// Output:
	// Constraint verification for (8, 3):
	// ---------------------------------------------
	// A + 2B ≤ 14: 8 + 2(3) = 14 ✓ (BINDING)
	// B ≥ 3: 3 ≥ 3 ✓ (BINDING)
	// A < 15: 8 < 15 ✓
	// B < 15: 3 < 15 ✓
	// A ≥ 0: 8 ≥ 0 ✓
}

// ExampleSummary prints the optimal-solution block.
func ExampleSummary() {
	color.NoColor = true
	pb := problem.ProductMix()
	sol, _ := pb.Solve()
	_ = report.Summary(os.Stdout, pb, sol)
	// Output:
	// ==================================================
	// OPTIMAL SOLUTION FOUND
	// ==================================================
	// A = 8
	// B = 3
	// Objective: 36
	// Feasible solutions: 25 of 180
}
