// Package bruteopt is a small toolkit for solving bounded integer programs by
// exhaustive enumeration, plus a few hand-written digit routines.
//
// What is inside?
//
//	space/          integer ranges, search spaces, nested-order traversal
//	constraint/     linear and predicate constraints, feasibility, verification
//	objective/      linear and functional objectives
//	enumerate/      the brute-force Solve and its immutable Solution
//	problem/        problem bundle, canonical product mix, YAML files
//	sensitivity/    slacks, what-if on a right-hand side, LP relaxation bound
//	report/         text rendering of all of the above
//	digits/         student-ID reversal and digit scans
//	cmd/bruteopt/   command-line driver
//
// The canonical instance:
//
//	maximise  Z = 3A + 4B
//	s.t.      A + 2B ≤ 14, B ≥ 3, A < 15, B < 15, A ≥ 0
//
// has its optimum at (8, 3) with Z = 36, among 25 feasible points.
//
// Every point is visited in nested ascending order and ties keep the first
// point found, so results are deterministic. The search is exponential in the
// number of variables; it is meant for spaces small enough to enumerate.
//
//	go install github.com/katalvlaran/bruteopt/cmd/bruteopt@latest
package bruteopt
