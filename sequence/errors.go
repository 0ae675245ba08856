// SPDX-License-Identifier: MIT
// Package sequence: sentinel error set.
// Public accessors and Read return these sentinels (possibly wrapped with
// call-site context via %w); tests match them with errors.Is / errors.As.

package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a logical index outside [First(), Last()].
	// At/Set/Ref return it wrapped with the offending index.
	ErrOutOfRange = errors.New("sequence: index out of range")

	// ErrMalformedHeader indicates that the "<len> <offset>" header of the
	// text form is missing, unparsable, or declares a negative length.
	ErrMalformedHeader = errors.New("sequence: malformed header")

	// ErrShortInput indicates that fewer samples than the header declared
	// could be read. It is always delivered inside a *ParseError.
	ErrShortInput = errors.New("sequence: short input")
)

// indexErrorf wraps err with the method name and logical index.
func indexErrorf(method string, n int, err error) error {
	return fmt.Errorf("Sequence.%s(%d): %w", method, n, err)
}

// ParseError reports a partially read sequence.
//
// Want is the length declared by the header, Read the number of samples
// parsed before Err stopped the scan. errors.Is(err, ErrShortInput) holds
// for every ParseError.
type ParseError struct {
	Want int
	Read int
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("sequence: read %d of %d samples: %v", e.Read, e.Want, e.Err)
}

// Unwrap exposes both ErrShortInput and the underlying scan error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrShortInput, e.Err}
}
