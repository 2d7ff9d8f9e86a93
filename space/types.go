package space

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Sentinel errors for search-space validation.
var (
	// ErrNoDimensions indicates a Space with zero ranges.
	ErrNoDimensions = errors.New("space: search space has no dimensions")

	// ErrInvertedRange indicates a range whose lower bound exceeds its upper bound.
	ErrInvertedRange = errors.New("space: lower bound exceeds upper bound")

	// ErrDimensionMismatch indicates a point or coefficient vector whose length
	// does not match the number of dimensions it is used with.
	ErrDimensionMismatch = errors.New("space: dimension mismatch")

	// ErrDuplicateName indicates two ranges sharing the same non-empty name.
	ErrDuplicateName = errors.New("space: duplicate dimension name")

	// ErrRangeOverflow indicates a range whose bounds or length do not fit in int.
	ErrRangeOverflow = errors.New("space: range bounds overflow int")
)

// Point is a candidate decision vector, one coordinate per dimension.
type Point []int

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}

	return slices.Clone(p)
}

// Equal reports whether p and q hold the same coordinates.
func (p Point) Equal(q Point) bool { return slices.Equal(p, q) }

// String renders p as "(8, 3)".
func (p Point) String() string {
	s := "("
	for i, v := range p {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(v)
	}

	return s + ")"
}

// Range is one dimension of a Space: the integers in [Lo, Hi).
type Range struct {
	Name string // display name, e.g. "A"; may be empty
	Lo   int    // inclusive lower bound
	Hi   int    // exclusive upper bound

	wrapped bool // Closed upper bound was math.MaxInt
}

// HalfOpen returns the range [lo, hi).
func HalfOpen(name string, lo, hi int) Range {
	return Range{Name: name, Lo: lo, Hi: hi}
}

// Closed returns the range [lo, hi], i.e. [lo, hi+1).
// hi == math.MaxInt has no half-open form; Validate reports ErrRangeOverflow.
func Closed(name string, lo, hi int) Range {
	if hi == math.MaxInt {
		return Range{Name: name, Lo: lo, Hi: hi, wrapped: true}
	}

	return Range{Name: name, Lo: lo, Hi: hi + 1}
}

// Len returns the number of integers in r; inverted ranges have length 0.
// A length beyond math.MaxInt saturates.
func (r Range) Len() int {
	if r.wrapped {
		if r.Lo > 0 {
			return math.MaxInt - r.Lo + 1
		}

		return math.MaxInt
	}
	if r.Hi <= r.Lo {
		return 0
	}
	if r.overflows() {
		return math.MaxInt
	}

	return r.Hi - r.Lo
}

// overflows reports whether Hi−Lo exceeds math.MaxInt.
func (r Range) overflows() bool {
	return r.Lo < 0 && r.Hi > math.MaxInt+r.Lo
}

// Contains reports whether v lies in r.
func (r Range) Contains(v int) bool { return v >= r.Lo && v < r.Hi }

// Space is a box-bounded integer search space.
type Space []Range
