package sequence

// Conv returns the discrete convolution of x and y:
//
//	result[k] = Σ x[i]·y[k-i],  0 ≤ i < N, 0 ≤ k-i < M
//
// Both operands are read as if they started at index 0; their offsets are
// ignored and the result has offset 0 and length N+M-1. The result is not
// trimmed. If either operand is empty the result is empty.
//
// Use ConvShifted when the operands' offsets should carry into the result.
//
// Complexity: O(N·M) time, O(N+M) memory.
func Conv[T Number](x, y *Sequence[T]) *Sequence[T] {
	n, m := len(x.data), len(y.data)
	if n == 0 || m == 0 {
		return &Sequence[T]{}
	}

	result := make([]T, n+m-1)
	for i, xv := range x.data {
		for j, yv := range y.data {
			result[i+j] += xv * yv
		}
	}

	return FromSlice(result, 0)
}

// ConvShifted is Conv with the result placed at offset x.Offset()+y.Offset(),
// which is where the convolution of two offset sequences starts.
func ConvShifted[T Number](x, y *Sequence[T]) *Sequence[T] {
	out := Conv(x, y)
	if out.Empty() {
		return out
	}

	return out.Shift(x.offset + y.offset)
}
