// Package sensitivity answers "what if" questions about a solved problem.Problem:
//
//   - Slacks: how far each linear constraint is from its boundary at a point;
//     zero slack on a non-strict constraint means it is binding.
//   - Relax: re-solve with one constraint's right-hand side changed and
//     compare the optima; the objective change per unit of RHS is the
//     shadow-price estimate.
//   - Bound: the continuous (LP) relaxation of a linear problem, solved with
//     gonum's simplex. It is an upper bound on the integer optimum; the
//     difference is the integrality gap.
//
// Every re-solve goes through the brute-force enumerator; Bound is a
// diagnostic and never replaces it.
package sensitivity
