package sequence

import "gonum.org/v1/gonum/floats"

// EqualApprox reports whether x and y agree sample by sample within tol,
// using an absolute-or-relative tolerance test.
//
// Operands are compared over their union range with zero padding, so
// sequences that differ only by trailing or leading near-zero samples are
// still equal. Neither operand is modified.
//
// Complexity: O(right-left+1).
func EqualApprox(x, y *Sequence[float64], tol float64) bool {
	xc, yc := x.Clone(), y.Clone()
	Extend(xc, yc)

	return floats.EqualApprox(xc.data, yc.data, tol)
}
