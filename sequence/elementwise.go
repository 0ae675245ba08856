// SPDX-License-Identifier: MIT
// Package: sequence
//
// Purpose:
//   - Provide alignment-aware elementwise arithmetic (Add/Sub/Mul) on top of a
//     single generic kernel, Combine, so the union-range loop lives in one place.
//
// Design:
//   - Combine owns range computation, seeding and the op loop; Add/Sub/Mul are
//     thin wrappers that only pick the BinaryOp.
//   - Mode and trimming come from Options (DefaultOptions + Option setters).
//
// Determinism & Performance:
//   - Fixed loop order over the flat result buffer (0..n-1).
//   - Operands are never mutated; the only allocation is the result
//     (plus a padded copy of y in ZeroExtended mode). O(right-left+1) time and space.

package sequence

// Combine applies op position by position between x and y over the union of
// their logical ranges and returns the result as a new sequence.
//
// Algorithm (Overlay, the default):
//  1. Allocate a zero result on [min(x.First, y.First), max(x.Last, y.Last)].
//  2. Copy x's samples to their logical positions.
//  3. For each logical index p of y: result[p] = op(result[p], y[p]).
//  4. Trim the result.
//
// Positions covered by x but not by y keep x's raw value; op never sees an
// implicit zero for y there. With WithMode(ZeroExtended) step 3 runs over
// the whole union range with y zero-padded, so Mul yields zero outside the
// overlap.
//
// Empty operands contribute no range. If both are empty the result is an
// empty sequence at offset 0.
//
// Complexity: O(right-left+1).
func Combine[T Number](x, y *Sequence[T], op BinaryOp[T], opts ...Option) *Sequence[T] {
	o := gatherOptions(opts)
	if x.Empty() && y.Empty() {
		return &Sequence[T]{}
	}

	left, right := unionRange(x, y)
	result := make([]T, right-left+1)
	if !x.Empty() {
		copy(result[x.offset-left:], x.data)
	}

	switch o.Mode {
	case ZeroExtended:
		padded := make([]T, len(result))
		if !y.Empty() {
			copy(padded[y.offset-left:], y.data)
		}
		for p := range result {
			result[p] = op(result[p], padded[p])
		}
	default:
		base := y.offset - left
		for i, v := range y.data {
			result[base+i] = op(result[base+i], v)
		}
	}

	out := FromSlice(result, left)
	if o.NoTrim {
		return out
	}

	return out.Trim()
}

// unionRange is span tolerant of a single empty operand.
func unionRange[T Number](x, y *Sequence[T]) (left, right int) {
	switch {
	case x.Empty():
		return y.First(), y.Last()
	case y.Empty():
		return x.First(), x.Last()
	default:
		return span(x, y)
	}
}

// Add returns x + y. See Combine for range and trimming rules.
func Add[T Number](x, y *Sequence[T], opts ...Option) *Sequence[T] {
	return Combine(x, y, Plus[T], opts...)
}

// Sub returns x - y. See Combine for range and trimming rules.
func Sub[T Number](x, y *Sequence[T], opts ...Option) *Sequence[T] {
	return Combine(x, y, Minus[T], opts...)
}

// Mul returns the elementwise product of x and y. Under the default Overlay
// mode samples of x outside y's range pass through unchanged; use
// WithMode(ZeroExtended) for the zero-padded product.
func Mul[T Number](x, y *Sequence[T], opts ...Option) *Sequence[T] {
	return Combine(x, y, Times[T], opts...)
}
