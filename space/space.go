package space

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Validate checks that s has at least one dimension, that no range is
// inverted or overflows int, and that named dimensions are unique.
//
// Errors are wrapped with the offending dimension so callers can report it;
// match them with errors.Is.
func (s Space) Validate() error {
	if len(s) == 0 {
		return ErrNoDimensions
	}

	seen := make(map[string]struct{}, len(s))
	for i, r := range s {
		if r.wrapped || (r.Lo <= r.Hi && r.overflows()) {
			return fmt.Errorf("dimension %d (%s) from %d: %w", i, r.Name, r.Lo, ErrRangeOverflow)
		}
		if r.Lo > r.Hi {
			return fmt.Errorf("dimension %d (%s) [%d, %d): %w", i, r.Name, r.Lo, r.Hi, ErrInvertedRange)
		}
		if r.Name == "" {
			continue
		}
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("dimension %d (%s): %w", i, r.Name, ErrDuplicateName)
		}
		seen[r.Name] = struct{}{}
	}

	return nil
}

// Dims returns the number of dimensions.
func (s Space) Dims() int { return len(s) }

// Names returns the dimension names. Unnamed dimensions are called x1, x2, ….
func (s Space) Names() []string {
	names := make([]string, len(s))
	for i, r := range s {
		if r.Name == "" {
			names[i] = fmt.Sprintf("x%d", i+1)
			continue
		}
		names[i] = r.Name
	}

	return names
}

// Size returns the number of points in s. It saturates at math.MaxInt and
// returns 0 for a space without dimensions or with any empty range.
// A saturated size cannot be enumerated; Iter yields nothing for it.
func (s Space) Size() int {
	if len(s) == 0 {
		return 0
	}
	card := 1
	for _, r := range s {
		l := r.Len()
		if l == 0 {
			return 0
		}
		if card > math.MaxInt/l {
			return math.MaxInt
		}
		card *= l
	}

	return card
}

// Contains reports whether p lies inside every range of s.
func (s Space) Contains(p Point) bool {
	if len(p) != len(s) {
		return false
	}
	for i, r := range s {
		if !r.Contains(p[i]) {
			return false
		}
	}

	return true
}

// Iterator walks a Space in nested ascending order.
//
// The Point returned by Point is reused between calls to Next; clone it to
// keep it.
type Iterator struct {
	space Space
	gen   *combin.CartesianGenerator
	idx   []int
	pt    Point
}

// Iter returns an Iterator positioned before the first point of s.
// An empty or saturated space yields an iterator whose Next is immediately
// false; callers that must tell the two apart check Size first.
func (s Space) Iter() *Iterator {
	it := &Iterator{space: s}
	if n := s.Size(); n == 0 || n == math.MaxInt {
		return it
	}
	lens := make([]int, len(s))
	for i, r := range s {
		lens[i] = r.Len()
	}
	it.gen = combin.NewCartesianGenerator(lens)
	it.idx = make([]int, len(s))
	it.pt = make(Point, len(s))

	return it
}

// Next advances to the next point and reports whether one exists.
func (it *Iterator) Next() bool {
	if it.gen == nil || !it.gen.Next() {
		return false
	}
	it.idx = it.gen.Product(it.idx)
	for i, r := range it.space {
		it.pt[i] = r.Lo + it.idx[i]
	}

	return true
}

// Point returns the current point.
func (it *Iterator) Point() Point { return it.pt }
