package sequence

// Extend zero-pads x and y in place so that both cover the same logical
// range [min(x.First, y.First), max(x.Last, y.Last)].
//
// Samples never move relative to their logical index; only zeros are added
// at the front and/or back of each backing store.
//
// Empty operands contribute no range: when exactly one operand is empty it
// becomes an all-zero sequence on the other's range; when both are empty
// nothing changes.
//
// Complexity: O(Len(x) + Len(y)) after padding.
func Extend[T Number](x, y *Sequence[T]) {
	switch {
	case x.Empty() && y.Empty():
		return
	case x.Empty():
		x.data = make([]T, len(y.data))
		x.offset = y.offset

		return
	case y.Empty():
		y.data = make([]T, len(x.data))
		y.offset = x.offset

		return
	}

	left, right := span(x, y)
	x.padTo(left, right)
	y.padTo(left, right)
}

// span returns the union range of x and y. Both must be non-empty.
func span[T Number](x, y *Sequence[T]) (left, right int) {
	return min(x.First(), y.First()), max(x.Last(), y.Last())
}

// padTo grows s with zeros so that it covers [left, right]. The target range
// must contain s's current range.
func (s *Sequence[T]) padTo(left, right int) {
	lead := s.offset - left
	tail := right - s.Last()
	if lead == 0 && tail == 0 {
		return
	}
	buf := make([]T, right-left+1)
	copy(buf[lead:], s.data)
	s.data = buf
	s.offset = left
}
