package sensitivity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/bruteopt/constraint"
	"github.com/katalvlaran/bruteopt/objective"
	"github.com/katalvlaran/bruteopt/problem"
)

// Bound is the optimum of the continuous relaxation of a linear problem.
type Bound struct {
	Value float64   // upper bound on the integer optimum
	Point []float64 // a relaxed optimum, in the problem's coordinates
}

// RelaxationBound drops integrality and solves the resulting LP with
// gonum's simplex.
//
// Reformulation (n variables, standard form min cᵀx, Ax = b, x ≥ 0):
//  1. Shift every variable to y = x − Lo, so y ≥ 0, and add y ≤ Hi−1−Lo.
//  2. Tighten strict inequalities over integers: Σ < r → Σ ≤ r−1, Σ > r → Σ ≥ r+1.
//  3. Turn ≥ rows into ≤ rows by negation; split = into ≤ and ≥.
//  4. Give every row its own slack column, then flip rows with negative b.
//
// Errors: problem.ErrNotLinear for non-linear problems, ErrRelaxation
// (wrapping the gonum error) for empty spaces or LP failures.
//
// Complexity: one simplex solve on an m×(n+m) system, m = n + #rows.
func RelaxationBound(pb problem.Problem) (Bound, error) {
	if !pb.Linear() {
		return Bound{}, problem.ErrNotLinear
	}
	if err := pb.Validate(); err != nil {
		return Bound{}, err
	}
	if pb.Space.Size() == 0 {
		return Bound{}, fmt.Errorf("%w: empty search space", ErrRelaxation)
	}

	n := pb.Space.Dims()
	lo := make([]int, n)
	for i, r := range pb.Space {
		lo[i] = r.Lo
	}

	// Stage 1: collect ≤ rows over y.
	type row struct {
		a   []float64
		rhs float64
	}
	var rows []row
	for i, r := range pb.Space {
		a := make([]float64, n)
		a[i] = 1
		rows = append(rows, row{a: a, rhs: float64(r.Hi - 1 - r.Lo)})
	}
	for _, c := range pb.Constraints {
		lin := c.(constraint.Linear)
		rhs := lin.RHS
		for i, k := range lin.Coeffs {
			rhs -= k * lo[i]
		}
		switch lin.Op {
		case constraint.LE:
			rows = append(rows, row{a: toFloats(lin.Coeffs, 1), rhs: float64(rhs)})
		case constraint.LT:
			rows = append(rows, row{a: toFloats(lin.Coeffs, 1), rhs: float64(rhs - 1)})
		case constraint.GE:
			rows = append(rows, row{a: toFloats(lin.Coeffs, -1), rhs: float64(-rhs)})
		case constraint.GT:
			rows = append(rows, row{a: toFloats(lin.Coeffs, -1), rhs: float64(-rhs - 1)})
		case constraint.EQ:
			rows = append(rows,
				row{a: toFloats(lin.Coeffs, 1), rhs: float64(rhs)},
				row{a: toFloats(lin.Coeffs, -1), rhs: float64(-rhs)})
		}
	}

	// Stage 2: standard form with one slack per row.
	m := len(rows)
	cols := n + m
	A := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	for i, r := range rows {
		sign := 1.0
		if r.rhs < 0 {
			sign = -1
		}
		for j, v := range r.a {
			A.Set(i, j, sign*v)
		}
		A.Set(i, n+i, sign)
		b[i] = sign * r.rhs
	}

	obj := pb.Objective.(objective.Linear)
	c := make([]float64, cols)
	offset := float64(obj.Constant)
	for j, k := range obj.Coeffs {
		c[j] = -float64(k)
		offset += float64(k * lo[j])
	}

	// Stage 3: solve and map back.
	optF, x, err := lp.Simplex(c, A, b, 0, nil)
	if err != nil {
		return Bound{}, fmt.Errorf("%w: %w", ErrRelaxation, err)
	}
	pt := make([]float64, n)
	for j := range pt {
		pt[j] = float64(lo[j]) + x[j]
	}

	return Bound{Value: offset - optF, Point: pt}, nil
}

// toFloats returns sign·coeffs as float64.
func toFloats(coeffs []int, sign float64) []float64 {
	out := make([]float64, len(coeffs))
	for i, k := range coeffs {
		out[i] = sign * float64(k)
	}

	return out
}
