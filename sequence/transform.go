// File: transform.go
// Role: in-place structural transforms. Each mutates the receiver and returns
// it, so calls chain: s.Flip().Shift(2).Trim().

package sequence

import "slices"

// Flip time-reverses s in place so that the new x[n] equals the old x[-n].
//
// A sequence on [o, o+L-1] ends up on [-(o+L-1), -o] with its samples
// reversed. The offset formula is applied to empty sequences as well.
//
// Complexity: O(Len()).
func (s *Sequence[T]) Flip() *Sequence[T] {
	slices.Reverse(s.data)
	s.offset = -(s.offset + len(s.data) - 1)

	return s
}

// Shift delays s by n0 samples (advances it for negative n0): the new x[n]
// equals the old x[n-n0]. Only the offset changes.
//
// Complexity: O(1).
func (s *Sequence[T]) Shift(n0 int) *Sequence[T] {
	s.offset += n0

	return s
}

// Trim strips zero samples from both ends of s and moves the offset forward
// by the number of leading zeros removed.
//
// An empty or all-zero sequence is left untouched, so Trim never collapses a
// sequence to zero length.
//
// Complexity: O(Len()).
func (s *Sequence[T]) Trim() *Sequence[T] {
	var zero T
	head := slices.IndexFunc(s.data, func(v T) bool { return v != zero })
	if head < 0 {
		return s
	}
	tail := len(s.data) - 1
	for s.data[tail] == zero {
		tail--
	}
	s.data = s.data[head : tail+1]
	s.offset += head

	return s
}
