package iterator

import (
	"math"
	"testing"

	"github.com/go-leo/gox/mathx/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestRange(t *testing.T) {
	r := NewRange(1, 5)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, Collect[int](r))

	assert.False(t, r.HasNext())
	assert.Zero(t, r.Len())
	_, err := r.Next()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestRangeStepByStep(t *testing.T) {
	r := NewRange[int8](-2, 1)

	for _, want := range []int8{-2, -1, 0} {
		require.True(t, r.HasNext())
		v, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	for i := 0; i < 3; i++ {
		assert.False(t, r.HasNext())
		_, err := r.Next()
		assert.ErrorIs(t, err, ErrExhausted)
	}
}

func TestRangeEmpty(t *testing.T) {
	for _, r := range []*Range[int]{NewRange(3, 3), NewRange(5, 1), NewRange(0, math.MinInt)} {
		assert.False(t, r.HasNext())
		assert.Zero(t, r.Len())
		_, err := r.Next()
		assert.ErrorIs(t, err, ErrExhausted)
	}
}

func TestRangeUnsigned(t *testing.T) {
	assert.Equal(t, []uint{7, 8, 9}, Collect[uint](NewRange[uint](7, 10)))
	assert.Empty(t, Collect[uint](NewRange[uint](10, 7)))
	assert.Equal(t, []uint8{253, 254}, Collect[uint8](NewRange[uint8](253, math.MaxUint8)))
}

func TestRangeRandomBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		start := randx.Int63n(200) - 100
		end := randx.Int63n(200) - 100

		values := Collect[int64](NewRange(start, end))

		if start >= end {
			assert.Empty(t, values)
			continue
		}
		require.Len(t, values, int(end-start))
		assert.True(t, slices.IsSorted(values))
		assert.Equal(t, start, values[0])
		assert.Equal(t, end-1, values[len(values)-1])
	}
}

func TestRangeFreshInstanceRestarts(t *testing.T) {
	newRange := func() *Range[int] { return NewRange(0, 3) }

	first := newRange()
	assert.Equal(t, 3, Count[int](first))
	assert.Zero(t, Count[int](first))
	assert.Equal(t, []int{0, 1, 2}, Collect[int](newRange()))
}

func TestRangeLenWideBounds(t *testing.T) {
	r8 := NewRange[int8](-100, 100)
	assert.Equal(t, 200, r8.Len())
	assert.Equal(t, 200, Count[int8](r8))

	assert.Equal(t, 255, NewRange[uint8](0, math.MaxUint8).Len())
	assert.Equal(t, math.MaxUint16, NewRange[int16](math.MinInt16, math.MaxInt16).Len())
	assert.Equal(t, math.MaxInt, NewRange[int64](math.MinInt64, math.MaxInt64).Len())
	assert.Equal(t, math.MaxInt, NewRange[uint64](0, math.MaxUint64).Len())

	r := NewRange[int64](math.MaxInt64-2, math.MaxInt64)
	assert.Equal(t, 2, r.Len())
	_, _ = r.Next()
	assert.Equal(t, 1, r.Len())
}
