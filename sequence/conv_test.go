package sequence_test

import (
	"testing"

	"github.com/katalvlaran/lvseq/sequence"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

// TestConv_Basic verifies a small hand-computed convolution.
func TestConv_Basic(t *testing.T) {
	x := sequence.FromValues([]int{1, 2, 3}, 0)
	h := sequence.FromValues([]int{1, 1}, 0)

	got := sequence.Conv(x, h)

	assert.Equal(t, []int{1, 3, 5, 3}, got.Values())
	assert.Equal(t, 0, got.Offset())
}

// TestConv_IgnoresOffsets documents that Conv reads both operands from index 0.
func TestConv_IgnoresOffsets(t *testing.T) {
	x := sequence.FromValues([]int{1, 2, 3}, 5)
	h := sequence.FromValues([]int{1, 1}, -2)

	got := sequence.Conv(x, h)

	assert.Equal(t, []int{1, 3, 5, 3}, got.Values())
	assert.Equal(t, 0, got.Offset())
}

// TestConv_NotTrimmed keeps zero samples at the ends of the result.
func TestConv_NotTrimmed(t *testing.T) {
	x := sequence.FromValues([]int{0, 1, 0}, 0)
	h := sequence.FromValues([]int{2}, 0)

	got := sequence.Conv(x, h)

	assert.Equal(t, []int{0, 2, 0}, got.Values())
}

// TestConv_LengthAndSumLaw checks len = N+M-1 and Σconv = Σx·Σy.
func TestConv_LengthAndSumLaw(t *testing.T) {
	xs := [][]float64{{1}, {1, -2, 0.5}, {3, 3, 3, 3, 3, 3}}
	ys := [][]float64{{2}, {0.25, 4}, {1, 0, -1, 0, 1}}
	for _, xv := range xs {
		for _, yv := range ys {
			got := sequence.Conv(sequence.FromValues(xv, 0), sequence.FromValues(yv, 0))

			assert.Equal(t, len(xv)+len(yv)-1, got.Len())
			assert.InDelta(t, floats.Sum(xv)*floats.Sum(yv), floats.Sum(got.Values()), 1e-9)
		}
	}
}

// TestConv_Commutative checks conv(x, y) == conv(y, x).
func TestConv_Commutative(t *testing.T) {
	x := sequence.FromValues([]int{1, -1, 2}, 0)
	y := sequence.FromValues([]int{3, 0, 0, 1}, 0)

	assert.True(t, sequence.Equal(sequence.Conv(x, y), sequence.Conv(y, x)))
}

// TestConv_Empty returns an empty result when either operand is empty.
func TestConv_Empty(t *testing.T) {
	x := sequence.FromValues([]int{1, 2}, 0)
	empty := sequence.New(0, 0, 0)

	assert.True(t, sequence.Conv(x, empty).Empty())
	assert.True(t, sequence.Conv(empty, x).Empty())
	assert.True(t, sequence.ConvShifted(empty, x).Empty())
}

// TestConvShifted_AddsOffsets places the result at x.offset + y.offset.
func TestConvShifted_AddsOffsets(t *testing.T) {
	x := sequence.FromValues([]int{1, 2, 3}, 2)
	h := sequence.FromValues([]int{1, 1}, -1)

	got := sequence.ConvShifted(x, h)

	assert.Equal(t, []int{1, 3, 5, 3}, got.Values())
	assert.Equal(t, 1, got.Offset())
}

// TestConvShifted_DelayIdentity checks that convolving with a shifted unit impulse delays x.
func TestConvShifted_DelayIdentity(t *testing.T) {
	x := sequence.FromValues([]float64{4, 5, 6}, -1)
	delta := sequence.FromValues([]float64{1}, 3)

	got := sequence.ConvShifted(x, delta)
	want := x.Clone().Shift(3)

	assert.True(t, sequence.Equal(want, got), "want %v got %v", want, got)
}
