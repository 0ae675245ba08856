// Package lvseq is an in-memory toolkit for discrete time series: dense
// sample runs tagged with the logical index of their first sample.
//
// 🚀 What is in lvseq?
//
//	• sequence/ — Sequence[T], an offset-indexed sample array with
//	  checked access, Flip/Shift/Trim, Extend (zero-pad to a common range),
//	  elementwise Add/Sub/Mul, convolution and a canonical text form
//	• cmd/seqdemo — console demo printing example sequences and combining
//	  sequences read from a file
//
// ✨ Why lvseq?
//
//   - Negative indices are first class: x[-3] is just another sample
//   - Generic over every integer and floating-point type
//   - Errors, not panics: out-of-range access and short input are reported
//
// Quick ASCII example:
//
//	n:     -1   0   1   2
//	x[n]:   4   2   0   7      data=[4 2 0 7] offset=-1
//
//	go get github.com/katalvlaran/lvseq/sequence
package lvseq
