package digits

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidID indicates an ID that does not start with 's' or 'S'.
	ErrInvalidID = errors.New("digits: student ID must start with 's'")

	// ErrIndexOutOfRange indicates a reversal index outside the ID.
	ErrIndexOutOfRange = errors.New("digits: index out of range")

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("digits: empty input")
)

// validID reports whether id starts with 's' or 'S'.
func validID(id string) bool {
	return len(id) > 0 && (id[0] == 's' || id[0] == 'S')
}

// ReverseID returns the characters of id in reverse order, one per element.
//
// Complexity: O(n) time and memory.
func ReverseID(id string) ([]string, error) {
	if !validID(id) {
		return nil, fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	r := []rune(id)
	out := make([]string, len(r))
	for i := range r {
		out[i] = string(r[len(r)-1-i])
	}

	return out, nil
}

// ReverseFrom keeps the first i characters of id and appends the rest reversed.
//
//	ReverseFrom("s123456", 3)    == "s126543"
//	ReverseFrom("s225187913", 1) == "s319781522"
//
// i counts characters (runes), as ReverseID does.
func ReverseFrom(id string, i int) (string, error) {
	if !validID(id) {
		return "", fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	r := []rune(id)
	if i < 0 || i >= len(r) {
		return "", fmt.Errorf("index %d for length %d: %w", i, len(r), ErrIndexOutOfRange)
	}
	for lo, hi := i, len(r)-1; lo < hi; lo, hi = lo+1, hi-1 {
		r[lo], r[hi] = r[hi], r[lo]
	}

	return string(r), nil
}

// Extract returns the decimal digits of s in order; other characters are skipped.
func Extract(s string) []int {
	out := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
		}
	}

	return out
}

// Max returns the largest value and the index of its first occurrence.
//
// Complexity: O(n) time, O(1) memory.
func Max(ds []int) (val, idx int, err error) {
	if len(ds) == 0 {
		return 0, 0, ErrEmpty
	}
	val = ds[0]
	for i := 1; i < len(ds); i++ {
		if ds[i] > val {
			val, idx = ds[i], i
		}
	}

	return val, idx, nil
}

// SecondMax returns the largest value strictly below the maximum. ok is false
// when ds holds fewer than two distinct values.
//
// Complexity: O(n) time, O(1) memory.
func SecondMax(ds []int) (val int, ok bool) {
	var first int
	haveFirst := false
	for _, d := range ds {
		switch {
		case !haveFirst || d > first:
			if haveFirst {
				val, ok = first, true
			}
			first, haveFirst = d, true
		case d != first && (!ok || d > val):
			val, ok = d, true
		}
	}

	return val, ok
}

// Distinct returns the first occurrence of every value, in input order.
//
// Complexity: O(n·k) time for k distinct values, O(k) memory.
func Distinct(ds []int) []int {
	out := make([]int, 0, len(ds))
	for _, d := range ds {
		seen := false
		for _, u := range out {
			if u == d {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, d)
		}
	}

	return out
}

// CountSmaller returns, for every element, how many elements of ds are
// strictly smaller.
//
// Complexity: O(n²) time, O(n) memory.
func CountSmaller(ds []int) []int {
	out := make([]int, len(ds))
	for i, cur := range ds {
		for _, other := range ds {
			if other < cur {
				out[i]++
			}
		}
	}

	return out
}

// Analysis is the combined digit report of one ID.
type Analysis struct {
	ID           string
	Digits       []int
	Max          int
	MaxIndex     int
	SecondMax    int
	HasSecondMax bool
	Distinct     []int
	Smaller      []int
}

// Analyze runs every scan over the digits of id. Unlike the reversal
// functions it accepts any prefix; an ID without digits yields ErrEmpty.
func Analyze(id string) (Analysis, error) {
	ds := Extract(id)
	mx, idx, err := Max(ds)
	if err != nil {
		return Analysis{}, fmt.Errorf("%q: %w", id, err)
	}
	second, ok := SecondMax(ds)

	return Analysis{
		ID:           id,
		Digits:       ds,
		Max:          mx,
		MaxIndex:     idx,
		SecondMax:    second,
		HasSecondMax: ok,
		Distinct:     Distinct(ds),
		Smaller:      CountSmaller(ds),
	}, nil
}
