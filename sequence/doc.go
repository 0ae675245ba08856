// Package sequence implements offset-indexed discrete time series.
//
// 🚀 What is a Sequence?
//
//	A Sequence is a dense run of samples x[n] tagged with the logical index
//	of its first sample (the offset). Logical indices may be negative, so a
//	signal such as
//
//	  n:    -1  0  1  2
//	  x[n]:  4  2  0  7
//
//	is stored as data=[4 2 0 7], offset=-1. Callers always address samples
//	by logical index; the physical position is n - offset.
//
// ✨ Key features:
//   - checked element access (At/Set/Ref) plus an unchecked MustAt fast path
//   - in-place chainable transforms: Flip (x[-n]), Shift (x[n-n0]), Trim
//   - Extend: zero-pad two sequences onto their common index range
//   - elementwise Add/Sub/Mul over the union range, via the generic Combine
//   - discrete convolution (Conv, ConvShifted)
//   - a canonical text form: "<len> <offset> <v0> ... <vL-1>" (Write/Read)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvseq/sequence"
//
//	a := sequence.New(5, 1.0, 0)
//	if err := a.Set(3, 3); err != nil { // a = 1 1 1 3 1 offset: 0
//	  return err                        // ErrOutOfRange
//	}
//	b := sequence.New(10, 2.0, -1)   // ten 2's starting at n = -1
//	p := sequence.Mul(a, b)          // p = 2 2 2 6 2 offset: 0
//	c := sequence.Conv(a, b)         // len(c) == 5 + 10 - 1
//
// Element type:
//
//	Any integer or floating-point type (see Number). The zero value of T is
//	the padding sample and the value Trim strips.
//
// Performance:
//
//   - Construction, transforms, Extend, Combine, Write/Read: O(N)
//   - Conv: O(N·M)
//
// Sequences are plain values without internal locking; do not share one
// between goroutines while mutating it.
package sequence
