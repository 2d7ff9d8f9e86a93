package space_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bruteopt/space"
)

// TestValidate_Errors checks the sentinel returned for each malformed space.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		sp   space.Space
		want error
	}{
		{"no dimensions", space.Space{}, space.ErrNoDimensions},
		{"nil space", nil, space.ErrNoDimensions},
		{"inverted", space.Space{space.HalfOpen("A", 5, 2)}, space.ErrInvertedRange},
		{"inverted closed", space.Space{space.Closed("A", 0, 3), space.Closed("B", 4, 2)}, space.ErrInvertedRange},
		{"duplicate name", space.Space{space.Closed("A", 0, 1), space.Closed("A", 0, 1)}, space.ErrDuplicateName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.sp.Validate(), tc.want)
		})
	}
}

// TestValidate_Overflow checks bounds whose length or closed form does not fit in int.
func TestValidate_Overflow(t *testing.T) {
	cases := []struct {
		name string
		r    space.Range
		size int
	}{
		{"full int span", space.HalfOpen("A", math.MinInt, math.MaxInt), math.MaxInt},
		{"negative low, large high", space.HalfOpen("A", -2, math.MaxInt-1), math.MaxInt},
		{"closed at MaxInt", space.Closed("A", 0, math.MaxInt), math.MaxInt},
		{"closed single MaxInt", space.Closed("A", math.MaxInt, math.MaxInt), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sp := space.Space{tc.r}
			err := sp.Validate()
			assert.ErrorIs(t, err, space.ErrRangeOverflow)
			assert.NotErrorIs(t, err, space.ErrInvertedRange)
			assert.Equal(t, tc.size, sp.Size())
		})
	}

	edge := space.Space{space.Closed("A", math.MaxInt-2, math.MaxInt-1), space.HalfOpen("B", -1, math.MaxInt-1)}
	require.NoError(t, edge.Validate())
	assert.Equal(t, 2, edge[0].Len())
	assert.Equal(t, math.MaxInt, edge[1].Len())
}

// TestIter_SaturatedSizeYieldsNothing documents that callers must check Size.
func TestIter_SaturatedSizeYieldsNothing(t *testing.T) {
	const n = 1 << 22
	sp := space.Space{space.HalfOpen("x", 0, n), space.HalfOpen("y", 0, n), space.HalfOpen("z", 0, n)}
	require.NoError(t, sp.Validate())
	assert.Equal(t, math.MaxInt, sp.Size())
	assert.False(t, sp.Iter().Next())
}

// TestValidate_EmptyRangeIsValid ensures Lo == Hi is a well-formed, empty request.
func TestValidate_EmptyRangeIsValid(t *testing.T) {
	sp := space.Space{space.HalfOpen("A", 3, 3), space.Closed("B", 0, 4)}
	require.NoError(t, sp.Validate())
	assert.Equal(t, 0, sp.Size())
	assert.False(t, sp.Iter().Next(), "empty space must yield no points")
}

// TestRange_Len covers closed and half-open constructors.
func TestRange_Len(t *testing.T) {
	assert.Equal(t, 15, space.Closed("A", 0, 14).Len())
	assert.Equal(t, 15, space.HalfOpen("A", 0, 15).Len())
	assert.Equal(t, 0, space.HalfOpen("A", 2, 1).Len())
	assert.True(t, space.Closed("A", 0, 14).Contains(14))
	assert.False(t, space.HalfOpen("A", 0, 15).Contains(15))
}

// TestSize covers the product rule and saturation.
func TestSize(t *testing.T) {
	sp := space.Space{space.Closed("A", 0, 14), space.Closed("B", 3, 14)}
	assert.Equal(t, 15*12, sp.Size())

	huge := space.Space{
		space.HalfOpen("", 0, math.MaxInt32),
		space.HalfOpen("", 0, math.MaxInt32),
		space.HalfOpen("", 0, math.MaxInt32),
	}
	assert.Equal(t, math.MaxInt, huge.Size())
	assert.Equal(t, 0, space.Space{}.Size())
}

// TestIter_NestedAscendingOrder checks that the last dimension varies fastest.
func TestIter_NestedAscendingOrder(t *testing.T) {
	sp := space.Space{space.Closed("A", 1, 2), space.Closed("B", -1, 1)}
	var got []space.Point
	for it := sp.Iter(); it.Next(); {
		got = append(got, it.Point().Clone())
	}
	want := []space.Point{
		{1, -1}, {1, 0}, {1, 1},
		{2, -1}, {2, 0}, {2, 1},
	}
	assert.Equal(t, want, got)
}

// TestIter_ThreeDimensions checks the count and the first/last points in 3-D.
func TestIter_ThreeDimensions(t *testing.T) {
	sp := space.Space{space.Closed("x", 0, 1), space.Closed("y", 0, 2), space.Closed("z", 5, 8)}
	n := 0
	var first, last space.Point
	for it := sp.Iter(); it.Next(); n++ {
		if n == 0 {
			first = it.Point().Clone()
		}
		last = it.Point().Clone()
	}
	assert.Equal(t, sp.Size(), n)
	assert.Equal(t, space.Point{0, 0, 5}, first)
	assert.Equal(t, space.Point{1, 2, 8}, last)
}

// TestNamesAndContains covers naming fallbacks and membership.
func TestNamesAndContains(t *testing.T) {
	sp := space.Space{space.Closed("A", 0, 3), space.Closed("", 0, 3)}
	assert.Equal(t, []string{"A", "x2"}, sp.Names())
	assert.True(t, sp.Contains(space.Point{3, 0}))
	assert.False(t, sp.Contains(space.Point{4, 0}))
	assert.False(t, sp.Contains(space.Point{1}))
}

// TestPoint_Helpers covers Clone, Equal and String.
func TestPoint_Helpers(t *testing.T) {
	p := space.Point{8, 3}
	q := p.Clone()
	q[0] = 0
	assert.Equal(t, 8, p[0], "clone must not alias")
	assert.True(t, p.Equal(space.Point{8, 3}))
	assert.Equal(t, "(8, 3)", p.String())
	assert.Nil(t, space.Point(nil).Clone())
}
