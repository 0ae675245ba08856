// File: sequence.go
// Role: construction, element access and copying.
// Index contract:
//   - Logical index n maps to data[n-offset]; valid n lie in [First(), Last()].
//   - At/Set/Ref check bounds and return ErrOutOfRange; MustAt does not.

package sequence

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRef = "Ref"
)

// New returns a sequence of count samples, all equal to value, whose first
// sample sits at logical index offset. A negative count yields an empty
// sequence that still carries offset.
//
// Complexity: O(count).
func New[T Number](count int, value T, offset int) *Sequence[T] {
	s := &Sequence[T]{}

	return s.Assign(count, value, offset)
}

// FromValues returns a sequence holding a copy of values, first sample at
// logical index offset.
//
// Complexity: O(len(values)).
func FromValues[T Number](values []T, offset int) *Sequence[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Sequence[T]{data: data, offset: offset}
}

// FromSlice wraps data without copying; the sequence takes ownership of the
// slice and the caller must not use it afterwards.
//
// Complexity: O(1).
func FromSlice[T Number](data []T, offset int) *Sequence[T] {
	return &Sequence[T]{data: data, offset: offset}
}

// Assign discards the current samples and replaces them with count copies of
// value starting at logical index offset. It returns s for chaining.
//
// Implementation:
//   - Stage 1: clamp negative count to zero.
//   - Stage 2: reuse the backing array when its capacity suffices.
//   - Stage 3: fill with value and store offset.
//
// Complexity: O(count).
func (s *Sequence[T]) Assign(count int, value T, offset int) *Sequence[T] {
	if count < 0 {
		count = 0
	}
	if cap(s.data) >= count {
		s.data = s.data[:count]
	} else {
		s.data = make([]T, count)
	}
	for i := range s.data {
		s.data[i] = value
	}
	s.offset = offset

	return s
}

// Len returns the number of samples.
func (s *Sequence[T]) Len() int { return len(s.data) }

// Empty reports whether s has no samples.
func (s *Sequence[T]) Empty() bool { return len(s.data) == 0 }

// Offset returns the logical index of the first sample.
func (s *Sequence[T]) Offset() int { return s.offset }

// First returns the smallest valid logical index (equal to Offset).
func (s *Sequence[T]) First() int { return s.offset }

// Last returns the largest valid logical index, offset+Len()-1.
// For an empty sequence Last() == First()-1.
func (s *Sequence[T]) Last() int { return s.offset + len(s.data) - 1 }

// Contains reports whether n is a valid logical index of s.
func (s *Sequence[T]) Contains(n int) bool {
	// uint keeps n-offset exact when the int subtraction wraps.
	return n >= s.offset && uint(n-s.offset) < uint(len(s.data))
}

// At returns the sample at logical index n.
//
// Errors:
//   - ErrOutOfRange (wrapped) if n is outside [First(), Last()].
//
// Complexity: O(1).
func (s *Sequence[T]) At(n int) (T, error) {
	if !s.Contains(n) {
		var zero T

		return zero, indexErrorf(ctxAt, n, ErrOutOfRange)
	}

	return s.data[n-s.offset], nil
}

// Set stores v at logical index n.
//
// Errors:
//   - ErrOutOfRange (wrapped) if n is outside [First(), Last()].
//
// Complexity: O(1).
func (s *Sequence[T]) Set(n int, v T) error {
	if !s.Contains(n) {
		return indexErrorf(ctxSet, n, ErrOutOfRange)
	}
	s.data[n-s.offset] = v

	return nil
}

// Ref returns a pointer to the sample at logical index n, allowing in-place
// updates such as *p += v. The pointer is invalidated by any operation that
// reallocates storage (Assign, Extend, Trim).
//
// Errors:
//   - ErrOutOfRange (wrapped) if n is outside [First(), Last()].
func (s *Sequence[T]) Ref(n int) (*T, error) {
	if !s.Contains(n) {
		return nil, indexErrorf(ctxRef, n, ErrOutOfRange)
	}

	return &s.data[n-s.offset], nil
}

// MustAt is the unchecked fast path of At. Out-of-range n triggers the
// runtime's slice bounds panic.
func (s *Sequence[T]) MustAt(n int) T {
	return s.data[n-s.offset]
}

// Values returns a copy of the samples in logical order.
func (s *Sequence[T]) Values() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)

	return out
}

// Clone returns an independent deep copy of s.
//
// Complexity: O(Len()).
func (s *Sequence[T]) Clone() *Sequence[T] {
	return FromValues(s.data, s.offset)
}

// Equal reports whether x and y hold identical samples at identical logical
// indices. Two empty sequences are equal regardless of offset.
func Equal[T Number](x, y *Sequence[T]) bool {
	if len(x.data) != len(y.data) {
		return false
	}
	if len(x.data) == 0 {
		return true
	}
	if x.offset != y.offset {
		return false
	}
	for i := range x.data {
		if x.data[i] != y.data[i] {
			return false
		}
	}

	return true
}
