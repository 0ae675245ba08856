// Package sequence defines the Sequence type, its element constraint and the
// options that steer elementwise arithmetic.
package sequence

import "golang.org/x/exp/constraints"

// Number is the element constraint of a Sequence: any integer or
// floating-point type. Such types support + - *, compare against their zero
// value, and default to zero.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sequence is an offset-indexed dense array of samples.
//
// Fields:
//   - data   — samples in logical order; data[0] is logical index offset.
//   - offset — logical index of data[0]. May be negative. Preserved even
//     when data is empty.
//
// The zero value is an empty sequence at offset 0 and is ready to use.
type Sequence[T Number] struct {
	data   []T // backing store, owned by the sequence
	offset int // logical index of data[0]
}

// BinaryOp combines two samples into one. Plus, Minus and Times are the
// operators behind Add, Sub and Mul.
type BinaryOp[T Number] func(a, b T) T

// Plus returns a + b.
func Plus[T Number](a, b T) T { return a + b }

// Minus returns a - b.
func Minus[T Number](a, b T) T { return a - b }

// Times returns a * b.
func Times[T Number](a, b T) T { return a * b }

// CombineMode selects how Combine treats samples outside y's range.
//
//   - Overlay      — result is seeded with x, then op(result[p], y[p]) is applied
//     only over y's own range. Positions covered by x alone keep x's raw
//     value. This is the historical behaviour and the default.
//
//   - ZeroExtended — both operands are treated as zero outside their range and
//     op is applied over the whole union range. For Mul this zeroes every
//     position outside the overlap.
type CombineMode int

const (
	// Overlay applies op only where y has samples.
	Overlay CombineMode = iota

	// ZeroExtended applies op over the full union range with zero padding.
	ZeroExtended
)

// String returns the mode name.
func (m CombineMode) String() string {
	switch m {
	case Overlay:
		return "overlay"
	case ZeroExtended:
		return "zero-extended"
	default:
		return "unknown"
	}
}

// Options configures Combine and the arithmetic helpers built on it.
//
// Fields:
//   - Mode    — Overlay (default) or ZeroExtended, see CombineMode.
//   - NoTrim  — keep the union range as is instead of trimming zero padding
//     from the result.
type Options struct {
	Mode   CombineMode
	NoTrim bool
}

// DefaultOptions returns the options used when none are given:
// Overlay mode with trimming enabled.
func DefaultOptions() Options {
	return Options{Mode: Overlay}
}

// Option mutates Options; pass any number of them to Combine/Add/Sub/Mul.
type Option func(*Options)

// WithMode selects the CombineMode.
func WithMode(m CombineMode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithoutTrim disables the final Trim of a combined result.
func WithoutTrim() Option {
	return func(o *Options) { o.NoTrim = true }
}

// gatherOptions folds opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
