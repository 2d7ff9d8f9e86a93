package constraint

import (
	"fmt"

	"github.com/katalvlaran/bruteopt/space"
)

// Set is an ordered collection of constraints. The zero value is an empty set
// under which every point is feasible.
type Set []Constraint

// Validate checks that no entry is nil and that every Dimensioned entry
// matches dims.
func (s Set) Validate(dims int) error {
	for i, c := range s {
		if c == nil {
			return fmt.Errorf("constraint %d: %w", i, ErrNilConstraint)
		}
		d, ok := c.(Dimensioned)
		if ok && d.Dims() != dims {
			return fmt.Errorf("constraint %d (%s) has %d coefficients, space has %d dimensions: %w",
				i, c.Label(), d.Dims(), dims, space.ErrDimensionMismatch)
		}
	}

	return nil
}

// Feasible reports whether every constraint holds at p. Nil entries are
// skipped; Validate reports them.
func (s Set) Feasible(p space.Point) bool {
	for _, c := range s {
		if c != nil && !c.Holds(p) {
			return false
		}
	}

	return true
}

// Index returns the position of the first constraint labelled label, or -1.
func (s Set) Index(label string) int {
	for i, c := range s {
		if c != nil && c.Label() == label {
			return i
		}
	}

	return -1
}

// Labels returns the constraint labels in order, skipping nil entries.
func (s Set) Labels() []string {
	out := make([]string, 0, len(s))
	for _, c := range s {
		if c != nil {
			out = append(out, c.Label())
		}
	}

	return out
}

// Replace returns a copy of s with the constraint at index i swapped for c.
func (s Set) Replace(i int, c Constraint) Set {
	out := make(Set, len(s))
	copy(out, s)
	out[i] = c

	return out
}

// Check verifies p against every constraint and returns the per-constraint
// report. names label the coordinates in symbolic forms; nil falls back to
// x1, x2, …. Nil entries are skipped.
func (s Set) Check(p space.Point, names []string) Report {
	rep := Report{Point: p.Clone(), Statuses: make([]Status, 0, len(s))}
	for _, c := range s {
		if c == nil {
			continue
		}
		st := Status{Label: c.Label(), Form: c.Label(), Satisfied: c.Holds(p)}
		if e, ok := c.(Explainer); ok {
			st.Form = e.Form(names)
			st.Expression = e.Expression(p, names)
			st.Binding = st.Satisfied && e.Binding(p)
		}
		rep.Statuses = append(rep.Statuses, st)
	}

	return rep
}

// AllSatisfied reports whether every status is satisfied, i.e. the point is feasible.
func (r Report) AllSatisfied() bool {
	for _, st := range r.Statuses {
		if !st.Satisfied {
			return false
		}
	}

	return true
}

// Binding returns the labels of the binding constraints, in order.
func (r Report) Binding() []string {
	var out []string
	for _, st := range r.Statuses {
		if st.Binding {
			out = append(out, st.Label)
		}
	}

	return out
}

// Status returns the status for label.
func (r Report) Status(label string) (Status, bool) {
	for _, st := range r.Statuses {
		if st.Label == label {
			return st, true
		}
	}

	return Status{}, false
}
