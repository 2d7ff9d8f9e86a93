package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/katalvlaran/bruteopt/constraint"
	"github.com/katalvlaran/bruteopt/enumerate"
	"github.com/katalvlaran/bruteopt/problem"
)

const (
	ruleWidth = 50
	okMark    = "✓"
	failMark  = "✗"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// former is implemented by objectives and constraints that can print themselves.
type former interface {
	Form(names []string) string
}

// errWriter remembers the first write error so renderers can print freely.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) rule(ch string) { e.printf("%s\n", strings.Repeat(ch, ruleWidth)) }

// title prints a heading framed by '=' rules.
func (e *errWriter) title(s string) {
	e.rule("=")
	e.printf("%s\n", bold(s))
	e.rule("=")
}

// Header prints the problem statement: objective and constraint list.
func Header(w io.Writer, pb problem.Problem) error {
	ew := &errWriter{w: w}
	names := pb.Names()
	name := pb.Name
	if name == "" {
		name = "problem"
	}
	ew.printf("%s\n", bold(name))
	ew.rule("=")
	if f, ok := pb.Objective.(former); ok {
		ew.printf("Maximize: Z = %s\n", f.Form(names))
	}
	forms := make([]string, 0, len(pb.Constraints))
	for _, c := range pb.Constraints {
		if f, ok := c.(former); ok {
			forms = append(forms, f.Form(names))
		} else {
			forms = append(forms, c.Label())
		}
	}
	ew.printf("Subject to: %s\n", strings.Join(forms, ", "))
	for i, r := range pb.Space {
		if r.Len() == 0 {
			ew.printf("  %s ∈ ∅\n", names[i])
			continue
		}
		ew.printf("  %s ∈ [%d, %d]\n", names[i], r.Lo, r.Hi-1)
	}

	return ew.err
}

// Table streams feasible candidates as aligned rows. Call Flush when done.
type Table struct {
	tw    *tabwriter.Writer
	names []string
	rows  int
	err   error
}

// NewTable writes the column header and returns a Table ready for rows.
func NewTable(w io.Writer, names []string) *Table {
	t := &Table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0), names: names}
	_, t.err = fmt.Fprintf(t.tw, "Point (%s)\tFeasible\tObjective\n", strings.Join(names, ", "))

	return t
}

// Row appends one feasible candidate.
func (t *Table) Row(c enumerate.Candidate) {
	if t.err != nil {
		return
	}
	t.rows++
	_, t.err = fmt.Fprintf(t.tw, "%s\t%s\t%g\n", c.Point, green(okMark), c.Score)
}

// Rows returns the number of rows written so far.
func (t *Table) Rows() int { return t.rows }

// Flush aligns and writes the buffered rows, returning the first error seen.
func (t *Table) Flush() error {
	if err := t.tw.Flush(); t.err == nil {
		t.err = err
	}

	return t.err
}

// Feasible prints cands as a table.
func Feasible(w io.Writer, cands []enumerate.Candidate, names []string) error {
	t := NewTable(w, names)
	for _, c := range cands {
		t.Row(c)
	}

	return t.Flush()
}

// Summary prints the optimal point, its objective and the search counters.
func Summary(w io.Writer, pb problem.Problem, sol enumerate.Solution) error {
	ew := &errWriter{w: w}
	if !sol.Found() {
		ew.title("NO FEASIBLE SOLUTION")
		ew.printf("Visited: %d\n", sol.Visited())
		return ew.err
	}
	ew.title("OPTIMAL SOLUTION FOUND")
	names := pb.Names()
	best := sol.Best()
	for i, v := range best {
		ew.printf("%s = %d\n", names[i], v)
	}
	ew.printf("Objective: %g\n", sol.BestScore())
	ew.printf("Feasible solutions: %d of %d\n", sol.NumFeasible(), sol.Visited())

	return ew.err
}

// Verification prints one line per constraint:
//
//	A + 2B ≤ 14: 8 + 2(3) = 14 ✓ (BINDING)
func Verification(w io.Writer, rep constraint.Report) error {
	ew := &errWriter{w: w}
	ew.printf("Constraint verification for %s:\n", rep.Point)
	ew.printf("%s\n", strings.Repeat("-", 45))
	for _, s := range rep.Statuses {
		mark := green(okMark)
		if !s.Satisfied {
			mark = red(failMark)
		}
		suffix := ""
		if s.Binding {
			suffix = " " + yellow("(BINDING)")
		}
		ew.printf("%s: %s %s%s\n", s.Form, s.Expression, mark, suffix)
	}

	return ew.err
}
