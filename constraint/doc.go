// Package constraint implements the feasibility side of the brute-force
// solver: an ordered Set of side-effect-free predicates over a space.Point,
// and a verifier that explains, constraint by constraint, why a point is or
// is not feasible.
//
// Two implementations are provided:
//
//   - Linear: Σ coeffs[i]·p[i] op RHS with op one of ≤ < ≥ > =.
//     Linear constraints know their slack and can tell whether they are
//     binding (satisfied with equality). Strict inequalities are never binding.
//   - Func: any labelled predicate, with an optional symbolic form and an
//     optional binding test.
//
// A point is feasible iff every constraint of the Set holds. Evaluation order
// follows the Set order; because predicates are pure, short-circuiting does
// not change the answer.
//
//	set := constraint.Set{
//	  constraint.NewLinear("transportation", []int{1, 2}, constraint.LE, 14),
//	  constraint.NewLinear("min_B", []int{0, 1}, constraint.GE, 3),
//	}
//	set.Feasible(space.Point{8, 3})                 // true
//	rep := set.Check(space.Point{8, 3}, []string{"A", "B"})
//	rep.Binding()                                   // [transportation min_B]
package constraint
