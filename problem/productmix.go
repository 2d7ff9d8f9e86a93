package problem

import (
	"github.com/katalvlaran/bruteopt/constraint"
	"github.com/katalvlaran/bruteopt/objective"
	"github.com/katalvlaran/bruteopt/space"
)

// Labels of the product-mix constraints.
const (
	Transportation = "transportation"
	MinB           = "min_B"
	MaxA           = "max_A"
	MaxB           = "max_B"
	NonNegativity  = "non_negativity"
)

// DefaultTransportLimit is the transportation capacity of the canonical instance.
const DefaultTransportLimit = 14

// ProductMix returns the canonical instance:
//
//	maximise  Z = 3A + 4B        (revenue)
//	s.t.      A + 2B ≤ 14        (transportation)
//	          B ≥ 3              (minimum B units)
//	          A < 15, B < 15     (maximum units)
//	          A ≥ 0              (non-negativity)
//
// searched over A ∈ [0, 14], B ∈ [3, 14]. The optimum is (8, 3) with Z = 36.
func ProductMix() Problem { return ProductMixWithLimit(DefaultTransportLimit) }

// ProductMixWithLimit is ProductMix with a different transportation capacity.
func ProductMixWithLimit(limit int) Problem {
	return Problem{
		Name: "product-mix",
		Space: space.Space{
			space.HalfOpen("A", 0, 15),
			space.HalfOpen("B", 3, 15),
		},
		Constraints: constraint.Set{
			constraint.NewLinear(Transportation, []int{1, 2}, constraint.LE, limit),
			constraint.NewLinear(MinB, []int{0, 1}, constraint.GE, 3),
			constraint.NewLinear(MaxA, []int{1, 0}, constraint.LT, 15),
			constraint.NewLinear(MaxB, []int{0, 1}, constraint.LT, 15),
			constraint.NewLinear(NonNegativity, []int{1, 0}, constraint.GE, 0),
		},
		Objective: objective.NewLinear([]int{3, 4}, 0),
	}
}
