// Package cstr provides error types for checked buffer contracts.
package cstr

import (
	"errors"
	"fmt"
)

// Common contract errors
var (
	// ErrBufferTooSmall indicates a destination or span is shorter than the
	// operation needs.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrNegativeCount indicates a negative byte count.
	ErrNegativeCount = errors.New("negative count")

	// ErrOverlap indicates overlapping regions passed to Memcpy.
	ErrOverlap = errors.New("overlapping regions")

	// ErrUnterminated indicates a sequence with no NUL terminator.
	ErrUnterminated = errors.New("unterminated sequence")

	// ErrCharRange indicates a character argument outside the byte range.
	ErrCharRange = errors.New("character out of byte range")

	// ErrIncompleteInput indicates tokenization stopped before the end of the stream.
	ErrIncompleteInput = errors.New("tokenization stopped before end of input")
)

// CapacityError reports a violated buffer precondition.
// Need and Have are byte counts. For ErrNegativeCount, Need holds the count;
// for ErrOverlap, Need and Have both hold the region length.
type CapacityError struct {
	// Op is the name of the operation, e.g. "strcpy".
	Op string
	// Need is the number of bytes the operation requires.
	Need int
	// Have is the number of bytes available.
	Have int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with the size information.
func (e *CapacityError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNegativeCount):
		return fmt.Sprintf("%s: %v %d", e.Op, e.Err, e.Need)
	case errors.Is(e.Err, ErrOverlap):
		return fmt.Sprintf("%s: %v of %d bytes", e.Op, e.Err, e.Need)
	}
	return fmt.Sprintf("%s: need %d bytes, have %d: %v", e.Op, e.Need, e.Have, e.Err)
}

// Unwrap returns the underlying error.
func (e *CapacityError) Unwrap() error {
	return e.Err
}

func tooSmall(op string, need, have int) error {
	return &CapacityError{Op: op, Need: need, Have: have, Err: ErrBufferTooSmall}
}

// checkCount validates a count n against a span of length have.
func checkCount(op string, n, have int) error {
	if n < 0 {
		return &CapacityError{Op: op, Need: n, Have: have, Err: ErrNegativeCount}
	}
	if n > have {
		return tooSmall(op, n, have)
	}
	return nil
}
