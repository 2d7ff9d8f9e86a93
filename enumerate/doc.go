// Package enumerate is the brute-force constrained-optimization engine.
//
// Solve visits every point of a finite space.Space in nested ascending order
// (first dimension outermost, last dimension fastest). For each point it
//
//  1. evaluates the constraint.Set and skips infeasible points,
//  2. scores feasible points with the objective.Objective and records
//     (point, score) in traversal order,
//  3. keeps a running best, replaced only on a strictly greater score.
//
// The strict comparison is the tie-break contract: among feasible points that
// share the maximal score, the one met first in traversal order wins.
//
// The result is an immutable Solution. When the space is empty or nothing is
// feasible, the Solution reports NumFeasible() == 0 and Found() == false, its
// Best() is nil and its BestScore() is -Inf; that is a valid answer, not an
// error. Errors are reserved for malformed requests (inverted bounds, arity
// mismatches, nil objective, bad options) and cancellation.
//
// Usage:
//
//	sol, err := enumerate.Solve(sp, set, obj)
//	if err != nil {
//	  // malformed request
//	}
//	if !sol.Found() {
//	  // no feasible point
//	}
//	best, score := sol.Best(), sol.BestScore()
//
// Complexity: O(|space| · (|constraints| + 1)) time, O(|feasible|) memory.
package enumerate
