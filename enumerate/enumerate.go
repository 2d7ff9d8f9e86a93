package enumerate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bruteopt/constraint"
	"github.com/katalvlaran/bruteopt/objective"
	"github.com/katalvlaran/bruteopt/space"
)

// Solve exhaustively searches sp for the feasible point maximising obj.
//
// Steps:
//  1. Apply options; surface any recorded option error.
//  2. Validate the request: non-nil objective, well-formed space, constraint
//     and objective arity equal to sp.Dims(), size within MaxCandidates.
//  3. Walk sp in nested ascending order; keep feasible candidates in order
//     and replace the running best only on a strictly greater score.
//
// An empty space or an infeasible problem yields a Solution with
// NumFeasible() == 0 and a nil error. Cancellation of the context, checked
// whenever the outermost coordinate advances, aborts with the context error
// wrapped and an empty Solution.
//
// Complexity: O(|sp| · (|set| + 1)) time, O(|feasible|) memory.
func Solve(sp space.Space, set constraint.Set, obj objective.Objective, opts ...Option) (Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return emptySolution(0), o.err
	}

	size, err := validate(sp, set, obj, o)
	if err != nil {
		return emptySolution(0), err
	}

	log := o.Logger.With().Str("component", "enumerate").Logger()
	log.Debug().
		Int("dims", sp.Dims()).
		Int("candidates", size).
		Int("constraints", len(set)).
		Msg("solve started")

	var (
		best      space.Point
		bestScore = math.Inf(-1)
		feasible  []Candidate
		visited   int
		outer     int
	)
	for it := sp.Iter(); it.Next(); visited++ {
		p := it.Point()
		if visited > 0 && p[0] != outer {
			if err = o.Ctx.Err(); err != nil {
				log.Debug().Int("visited", visited).Err(err).Msg("solve cancelled")
				return emptySolution(visited), fmt.Errorf("enumerate: cancelled at %s: %w", p, err)
			}
		}
		outer = p[0]

		if !set.Feasible(p) {
			continue
		}
		c := Candidate{Point: p.Clone(), Score: obj.Score(p)}
		feasible = append(feasible, c)
		o.OnFeasible(Candidate{Point: c.Point.Clone(), Score: c.Score})

		if c.Score > bestScore {
			bestScore = c.Score
			best = c.Point
		}
	}

	sol := Solution{best: best.Clone(), bestScore: bestScore, feasible: feasible, visited: visited}
	log.Debug().
		Int("visited", visited).
		Int("feasible", len(feasible)).
		Bool("found", sol.Found()).
		Float64("best_score", bestScore).
		Msg("solve finished")

	return sol, nil
}

// validate checks the request in a fixed order (objective, space, constraints,
// objective arity, size limit, context) and returns the space size. A size
// that saturates int is always too large, with or without MaxCandidates.
func validate(sp space.Space, set constraint.Set, obj objective.Objective, o Options) (int, error) {
	if obj == nil {
		return 0, ErrNilObjective
	}
	if f, ok := obj.(objective.Func); ok && f == nil {
		return 0, ErrNilObjective
	}
	if err := sp.Validate(); err != nil {
		return 0, err
	}
	if err := set.Validate(sp.Dims()); err != nil {
		return 0, err
	}
	if d, ok := obj.(objective.Dimensioned); ok && d.Dims() != sp.Dims() {
		return 0, fmt.Errorf("objective has %d coefficients, space has %d dimensions: %w",
			d.Dims(), sp.Dims(), space.ErrDimensionMismatch)
	}

	size := sp.Size()
	if size == math.MaxInt {
		return 0, fmt.Errorf("candidate count overflows int: %w", ErrSpaceTooLarge)
	}
	if o.MaxCandidates > 0 && size > o.MaxCandidates {
		return 0, fmt.Errorf("%d candidates, limit %d: %w", size, o.MaxCandidates, ErrSpaceTooLarge)
	}
	if err := o.Ctx.Err(); err != nil {
		return 0, fmt.Errorf("enumerate: %w", err)
	}

	return size, nil
}
