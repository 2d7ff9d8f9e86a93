package report_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bruteopt/digits"
	"github.com/katalvlaran/bruteopt/enumerate"
	"github.com/katalvlaran/bruteopt/problem"
	"github.com/katalvlaran/bruteopt/report"
	"github.com/katalvlaran/bruteopt/sensitivity"
	"github.com/katalvlaran/bruteopt/space"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// failWriter fails every write.
type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Header(&buf, problem.ProductMix()))
	out := buf.String()
	assert.Contains(t, out, "product-mix")
	assert.Contains(t, out, "Maximize: Z = 3A + 4B")
	assert.Contains(t, out, "Subject to: A + 2B ≤ 14, B ≥ 3, A < 15, B < 15, A ≥ 0")
	assert.Contains(t, out, "A ∈ [0, 14]")
	assert.Contains(t, out, "B ∈ [3, 14]")
}

func TestHeader_EmptyRange(t *testing.T) {
	pb := problem.ProductMix()
	pb.Space[0] = space.HalfOpen("A", 4, 4)

	var buf bytes.Buffer
	require.NoError(t, report.Header(&buf, pb))
	assert.Contains(t, buf.String(), "A ∈ ∅\n")
	assert.NotContains(t, buf.String(), "[4, 3]")
	assert.Contains(t, buf.String(), "B ∈ [3, 14]")
}

func TestFeasible(t *testing.T) {
	sol, err := problem.ProductMix().Solve()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Feasible(&buf, sol.Feasible(), []string{"A", "B"}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+25)
	assert.True(t, strings.HasPrefix(lines[0], "Point (A, B)"))
	assert.True(t, strings.HasPrefix(lines[1], "(0, 3)"))
	assert.True(t, strings.HasSuffix(lines[1], "12"))
	assert.True(t, strings.HasPrefix(lines[25], "(8, 3)"))
	assert.True(t, strings.HasSuffix(lines[25], "36"))
}

func TestTable_StreamsFromHook(t *testing.T) {
	var buf bytes.Buffer
	tab := report.NewTable(&buf, []string{"A", "B"})
	_, err := problem.ProductMix().Solve(enumerate.WithOnFeasible(tab.Row))
	require.NoError(t, err)
	require.NoError(t, tab.Flush())
	assert.Equal(t, 25, tab.Rows())
	assert.Equal(t, 26, strings.Count(buf.String(), "\n"))
}

func TestSummary(t *testing.T) {
	pb := problem.ProductMix()
	sol, err := pb.Solve()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Summary(&buf, pb, sol))
	out := buf.String()
	assert.Contains(t, out, "OPTIMAL SOLUTION FOUND")
	assert.Contains(t, out, "A = 8\nB = 3\n")
	assert.Contains(t, out, "Objective: 36\n")
	assert.Contains(t, out, "Feasible solutions: 25 of 180\n")

	pb = problem.ProductMixWithLimit(5)
	sol, err = pb.Solve()
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, report.Summary(&buf, pb, sol))
	assert.Contains(t, buf.String(), "NO FEASIBLE SOLUTION")
	assert.Contains(t, buf.String(), "Visited: 180")
}

func TestVerification_Infeasible(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Verification(&buf, problem.ProductMix().Verify(space.Point{10, 3})))
	assert.Contains(t, buf.String(), "A + 2B ≤ 14: 10 + 2(3) = 16 ✗\n")
	assert.Contains(t, buf.String(), "B ≥ 3: 3 ≥ 3 ✓ (BINDING)\n")
}

func TestSensitivity(t *testing.T) {
	a, err := sensitivity.Analyze(problem.ProductMix(), problem.Transportation, 16)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Sensitivity(&buf, a))
	out := buf.String()
	assert.Contains(t, out, "Slack at (8, 3):")
	assert.Regexp(t, `transportation\s+A \+ 2B ≤ 14\s+0\s+BINDING`, out)
	assert.Regexp(t, `non_negativity\s+A ≥ 0\s+8`, out)
	assert.Contains(t, out, "What-if: transportation right-hand side 14 → 16")
	assert.Contains(t, out, "New optimum: (10, 3) with objective 42")
	assert.Contains(t, out, "Objective change: +6")
	assert.Contains(t, out, "Shadow price estimate: 3 per unit")
	assert.Contains(t, out, "LP relaxation bound: 36")
	assert.Contains(t, out, "Integrality gap: 0")
}

func TestDigits(t *testing.T) {
	a, err := digits.Analyze("s225187913")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Digits(&buf, a))
	out := buf.String()
	assert.Contains(t, out, "Maximum: 9 at index 6")
	assert.Contains(t, out, "Second maximum: 8")
	assert.Contains(t, out, "Distinct digits: [2 5 1 8 7 9 3] (7)")
	assert.Contains(t, out, "position 3: digit 1 has 0 smaller")
}

func TestWriteErrorsPropagate(t *testing.T) {
	pb := problem.ProductMix()
	sol, err := pb.Solve()
	require.NoError(t, err)

	assert.ErrorIs(t, report.Header(failWriter{}, pb), errWrite)
	assert.ErrorIs(t, report.Summary(failWriter{}, pb, sol), errWrite)
	assert.ErrorIs(t, report.Verification(failWriter{}, pb.Verify(sol.Best())), errWrite)
	assert.ErrorIs(t, report.Feasible(failWriter{}, sol.Feasible(), pb.Names()), errWrite)
}
