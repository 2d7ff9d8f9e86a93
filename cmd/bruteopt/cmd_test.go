package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bruteopt/enumerate"
	"github.com/katalvlaran/bruteopt/problem"
	"github.com/katalvlaran/bruteopt/sensitivity"
	"github.com/katalvlaran/bruteopt/space"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestSolve(t *testing.T) {
	out, _, err := run(t, "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "A = 8\nB = 3\n")
	assert.Contains(t, out, "Objective: 36")
	assert.NotContains(t, out, "Point (A, B)")
}

func TestSolve_Limit(t *testing.T) {
	out, _, err := run(t, "solve", "--limit", "16")
	require.NoError(t, err)
	assert.Contains(t, out, "A = 10\nB = 3\n")
	assert.Contains(t, out, "Feasible solutions: 36 of 180")

	out, _, err = run(t, "solve", "--rhs", "transportation=16")
	require.NoError(t, err)
	assert.Contains(t, out, "Objective: 42")
}

func TestSolve_Verbose(t *testing.T) {
	out, _, err := run(t, "solve", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Maximize: Z = 3A + 4B")
	assert.Contains(t, out, "Point (A, B)")
	assert.Contains(t, out, "OPTIMAL SOLUTION FOUND")
	assert.Contains(t, out, "A + 2B ≤ 14: 8 + 2(3) = 14 ✓ (BINDING)")
}

func TestSolve_File(t *testing.T) {
	out, _, err := run(t, "solve", "--file", "../../problem/testdata/product_mix.yaml", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "Objective: 36")

	_, _, err = run(t, "solve", "--file", "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "solve", "--rhs", "budget=3")
	assert.ErrorIs(t, err, sensitivity.ErrUnknownConstraint)

	_, _, err = run(t, "solve", "--max-candidates", "10")
	assert.ErrorIs(t, err, enumerate.ErrSpaceTooLarge)

	_, _, err = run(t, "solve", "extra")
	assert.Error(t, err)
}

func TestSolve_DebugLogging(t *testing.T) {
	_, errOut, err := run(t, "solve", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "solve started")
	assert.Contains(t, errOut, "solve done")

	_, errOut, err = run(t, "solve")
	require.NoError(t, err)
	assert.Empty(t, errOut, "warn level hides progress logs")

	_, errOut, err = run(t, "solve", "--log-level", "chatty")
	require.NoError(t, err)
	assert.Contains(t, errOut, "unknown log level")
}

func TestVerify(t *testing.T) {
	out, _, err := run(t, "verify", "8", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "B ≥ 3: 3 ≥ 3 ✓ (BINDING)")
	assert.Contains(t, out, "Objective: 36")

	out, _, err = run(t, "verify", "10", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "✗")
	assert.NotContains(t, out, "Objective:")

	_, _, err = run(t, "verify", "8")
	assert.ErrorIs(t, err, space.ErrDimensionMismatch)

	_, _, err = run(t, "verify", "eight", "3")
	assert.Error(t, err)
}

func TestSensitivity(t *testing.T) {
	out, _, err := run(t, "sensitivity")
	require.NoError(t, err)
	assert.Contains(t, out, "New optimum: (10, 3) with objective 42")
	assert.Contains(t, out, "Shadow price estimate: 3 per unit")

	_, _, err = run(t, "sensitivity", "--constraint", "budget")
	assert.ErrorIs(t, err, sensitivity.ErrUnknownConstraint)
}

func TestDigits(t *testing.T) {
	out, _, err := run(t, "digits", "s225187913", "--from", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Reversed: [3 1 9 7 8 1 5 2 2 s]")
	assert.Contains(t, out, "Reversed from index 3: s223197815")
	assert.Contains(t, out, "Maximum: 9 at index 6")

	_, _, err = run(t, "digits", "225187913")
	assert.Error(t, err)
	_, _, err = run(t, "digits", "s123", "--from", "9")
	assert.Error(t, err)
}

func TestExport_RoundTrip(t *testing.T) {
	out, _, err := run(t, "export")
	require.NoError(t, err)

	pb, err := problem.Parse([]byte(out))
	require.NoError(t, err)
	sol, err := pb.Solve()
	require.NoError(t, err)
	assert.Equal(t, space.Point{8, 3}, sol.Best())
	assert.Equal(t, 25, sol.NumFeasible())
}
