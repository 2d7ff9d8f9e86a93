// Package space describes the finite integer search spaces explored by the
// brute-force enumerator.
//
// A Space is an ordered list of per-dimension integer ranges. Every Range is
// half-open, [Lo, Hi), the same convention as a for-loop bound:
//
//	sp := space.Space{
//	  space.Closed("A", 0, 14), // 0…14
//	  space.Closed("B", 3, 14), // 3…14
//	}
//
// Points are visited in nested ascending order: the first dimension is the
// outermost loop, the last dimension varies fastest. For the space above the
// traversal is (0,3), (0,4), …, (0,14), (1,3), …, (14,14).
//
// A dimension with Lo == Hi is empty and makes the whole space empty; this is
// a valid (if unproductive) search request. Lo > Hi is malformed and Validate
// reports ErrInvertedRange, so callers can tell "nothing to search" apart from
// "bad request".
//
// Complexity:
//   - Size:     O(d)
//   - Iterator: O(1) amortized per point, O(d) memory.
package space
