// Package digits holds small string and array routines over student IDs such
// as "s225187913": reversal, suffix reversal, digit extraction and a handful of
// single-pass or quadratic scans (maximum, second maximum, distinct values,
// count of smaller elements).
//
// The scans are written as explicit loops without sorting or hashing; each
// function documents its complexity.
//
// Example:
//
//	a, err := digits.Analyze("s225187913")
//	// a.Digits   == [2 2 5 1 8 7 9 1 3]
//	// a.Max      == 9, a.MaxIndex == 6
//	// a.Distinct == [2 5 1 8 7 9 3]
package digits
