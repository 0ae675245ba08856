package sequence_test

import (
	"testing"

	"github.com/katalvlaran/lvseq/sequence"
	"github.com/stretchr/testify/assert"
)

// TestExtend_PadsBothToUnion verifies that both operands end up on the common range.
func TestExtend_PadsBothToUnion(t *testing.T) {
	x := sequence.FromValues([]int{1}, -2)
	y := sequence.FromValues([]int{7, 8}, 1)

	sequence.Extend(x, y)

	assert.Equal(t, []int{1, 0, 0, 0, 0}, x.Values())
	assert.Equal(t, -2, x.Offset())
	assert.Equal(t, []int{0, 0, 0, 7, 8}, y.Values())
	assert.Equal(t, -2, y.Offset())
}

// TestExtend_KeepsLogicalPositions checks that samples stay at their logical index.
func TestExtend_KeepsLogicalPositions(t *testing.T) {
	x := sequence.FromValues([]float64{1, 2}, 0)
	y := sequence.FromValues([]float64{5}, 3)
	before := map[int]float64{0: 1, 1: 2}

	sequence.Extend(x, y)

	for n, want := range before {
		got, err := x.At(n)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, []float64{1, 2, 0, 0}, x.Values())
	assert.Equal(t, []float64{0, 0, 0, 5}, y.Values())
	assert.Equal(t, x.First(), y.First())
	assert.Equal(t, x.Last(), y.Last())
}

// TestExtend_SameRangeNoop ensures aligned operands are left as they are.
func TestExtend_SameRangeNoop(t *testing.T) {
	x := sequence.FromValues([]int{1, 2}, 4)
	y := sequence.FromValues([]int{3, 4}, 4)

	sequence.Extend(x, y)

	assert.Equal(t, []int{1, 2}, x.Values())
	assert.Equal(t, []int{3, 4}, y.Values())
}

// TestExtend_Nested pads only the inner operand.
func TestExtend_Nested(t *testing.T) {
	outer := sequence.FromValues([]int{1, 2, 3, 4, 5}, -2)
	inner := sequence.FromValues([]int{9}, 0)

	sequence.Extend(outer, inner)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, outer.Values())
	assert.Equal(t, []int{0, 0, 9, 0, 0}, inner.Values())
	assert.Equal(t, -2, inner.Offset())
}

// TestExtend_EmptyOperands treats empty sequences as contributing no range.
func TestExtend_EmptyOperands(t *testing.T) {
	x := sequence.New(0, 0, 10)
	y := sequence.FromValues([]int{1, 2}, -1)

	sequence.Extend(x, y)
	assert.Equal(t, []int{0, 0}, x.Values())
	assert.Equal(t, -1, x.Offset())
	assert.Equal(t, []int{1, 2}, y.Values())

	a := sequence.New(0, 0, 3)
	b := sequence.New(0, 0, -3)
	sequence.Extend(a, b)
	assert.True(t, a.Empty())
	assert.True(t, b.Empty())
	assert.Equal(t, 3, a.Offset())
	assert.Equal(t, -3, b.Offset())
}
