package enumerate

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/bruteopt/space"
)

// Sentinel errors for Solve.
var (
	// ErrNilObjective is returned when no objective is supplied.
	ErrNilObjective = errors.New("enumerate: objective is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enumerate: invalid option supplied")

	// ErrSpaceTooLarge is returned when the space exceeds WithMaxCandidates.
	ErrSpaceTooLarge = errors.New("enumerate: search space exceeds candidate limit")
)

// Option configures Solve via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds the parameters and hooks of a single Solve call.
type Options struct {
	// Ctx is checked for cancellation each time the outermost coordinate advances.
	Ctx context.Context

	// OnFeasible is called for every feasible candidate, in traversal order.
	OnFeasible func(c Candidate)

	// MaxCandidates, if > 0, rejects spaces with more points than this.
	MaxCandidates int

	// Logger receives debug tracing; zerolog.Nop() by default.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns Options with a background context, no hook,
// no candidate limit and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnFeasible:    func(Candidate) {},
		MaxCandidates: 0,
		Logger:        zerolog.Nop(),
	}
}

// WithContext sets a context for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnFeasible registers a hook run for each feasible candidate.
// The candidate passed in is a private copy.
func WithOnFeasible(fn func(c Candidate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFeasible = fn
		}
	}
}

// WithMaxCandidates bounds the size of the search space.
//
//	n > 0: reject spaces with more than n points (ErrSpaceTooLarge)
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCandidates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCandidates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCandidates = n
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Candidate is one feasible point with its objective value.
type Candidate struct {
	Point space.Point
	Score float64
}

// Solution is the immutable outcome of Solve. All accessors return copies.
type Solution struct {
	best      space.Point
	bestScore float64
	feasible  []Candidate
	visited   int
}

// emptySolution is the result for an empty space or an infeasible problem.
func emptySolution(visited int) Solution {
	return Solution{bestScore: math.Inf(-1), visited: visited}
}

// Found reports whether an optimum was recorded. For objectives that never
// return NaN or -Inf this is the same as NumFeasible() > 0.
func (s Solution) Found() bool { return s.best != nil }

// Best returns a copy of the optimal point, or nil when nothing is feasible.
func (s Solution) Best() space.Point { return s.best.Clone() }

// BestScore returns the optimal objective value, or -Inf when nothing is feasible.
func (s Solution) BestScore() float64 { return s.bestScore }

// NumFeasible returns the number of feasible points.
func (s Solution) NumFeasible() int { return len(s.feasible) }

// Visited returns the number of candidate points examined.
func (s Solution) Visited() int { return s.visited }

// Feasible returns a deep copy of the feasible candidates in traversal order.
func (s Solution) Feasible() []Candidate {
	out := make([]Candidate, len(s.feasible))
	for i, c := range s.feasible {
		out[i] = Candidate{Point: c.Point.Clone(), Score: c.Score}
	}

	return out
}
