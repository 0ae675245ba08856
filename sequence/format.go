// File: format.go
// Role: textual forms of a Sequence.
//   - String/Format: diagnostic "v0 v1 ... offset: n".
//   - Write/Read/Parse: canonical "<len> <offset> <v0> ... <vL-1>", round-trips.

package sequence

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep    = " "
	_fmtOffset = "offset: "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sequence[float64])(nil)

// String renders s as its samples in logical order, each followed by a
// space, then "offset: <n>". For example "1 1 1 3 1 offset: 0".
//
// Complexity: O(Len()).
func (s *Sequence[T]) String() string {
	return Format(s)
}

// Format is the free-function form of String.
func Format[T Number](s *Sequence[T]) string {
	var b strings.Builder
	for _, v := range s.data {
		fmt.Fprint(&b, v)
		b.WriteString(_fmtSep)
	}
	b.WriteString(_fmtOffset)
	fmt.Fprint(&b, s.offset)

	return b.String()
}

// Write emits s in the canonical text form followed by a newline:
//
//	<len> <offset> <v0> <v1> ... <vL-1>
//
// Read parses this form back into an equal sequence.
func Write[T Number](w io.Writer, s *Sequence[T]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, len(s.data), _fmtSep, s.offset)
	for _, v := range s.data {
		bw.WriteString(_fmtSep)
		fmt.Fprint(bw, v)
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// MaxReadLength bounds the length a text header may declare. Longer headers
// are rejected with ErrMalformedHeader before any allocation.
const MaxReadLength = 1 << 24

// readChunk caps the up-front allocation of Read; storage grows with the
// samples actually scanned.
const readChunk = 4096

// Read consumes one sequence in canonical text form from r. Tokens are
// separated by any whitespace, newlines included.
//
// Implementation:
//   - Stage 1: read the length and offset header; reject negative or oversized lengths.
//   - Stage 2: scan samples one by one, growing storage as they arrive.
//   - Stage 3: on a scan failure, zero-fill up to the declared length.
//
// Errors:
//   - ErrMalformedHeader (wrapped) when the header cannot be read or the
//     length is negative or above MaxReadLength; the returned sequence is nil.
//   - *ParseError when fewer than length samples parse. The returned
//     sequence is fully sized: samples read so far followed by zeros.
//
// When r is not an io.RuneScanner it is wrapped in a bufio.Reader, which may
// read ahead past the sequence.
func Read[T Number](r io.Reader) (*Sequence[T], error) {
	rs := r
	if _, ok := r.(io.RuneScanner); !ok {
		rs = bufio.NewReader(r)
	}

	var length, offset int
	if _, err := fmt.Fscan(rs, &length); err != nil {
		return nil, fmt.Errorf("%w: length: %v", ErrMalformedHeader, err)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrMalformedHeader, length)
	}
	if length > MaxReadLength {
		return nil, fmt.Errorf("%w: length %d exceeds %d", ErrMalformedHeader, length, MaxReadLength)
	}
	if _, err := fmt.Fscan(rs, &offset); err != nil {
		return nil, fmt.Errorf("%w: offset: %v", ErrMalformedHeader, err)
	}

	data := make([]T, 0, min(length, readChunk))
	for len(data) < length {
		var v T
		if _, err := fmt.Fscan(rs, &v); err != nil {
			read := len(data)
			data = append(data, make([]T, length-read)...)

			return FromSlice(data, offset), &ParseError{Want: length, Read: read, Err: err}
		}
		data = append(data, v)
	}

	return FromSlice(data, offset), nil
}

// Parse is Read over a string.
func Parse[T Number](text string) (*Sequence[T], error) {
	return Read[T](strings.NewReader(text))
}
