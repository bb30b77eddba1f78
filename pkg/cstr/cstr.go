// Package cstr provides the C string.h primitives over Go byte slices.
//
// The package implements length, copy, concatenation, comparison, search,
// tokenization and raw memory operations with the observable semantics of
// the standard C contract: unsigned byte ordering, NUL-terminated sequences,
// NUL padding for bounded copies, destructive tokenization.
//
// # Sequences and spans
//
// A NUL-terminated sequence is a []byte whose logical content ends at the
// first 0x00 byte. The end of the slice acts as an implicit terminator, so
// readers never look past memory the caller owns:
//
//	s := []byte("hello\x00garbage")
//	cstr.Strlen(s)          // 5
//	cstr.Strlen([]byte("hi")) // 2, no terminator needed
//
// An explicit-length span is a []byte plus a count n. The Mem* functions
// treat NUL as ordinary data.
//
// # Destination buffers
//
// Writers take a destination slice whose len is its capacity. They never
// allocate or grow it. A write that does not fit returns a *CapacityError
// wrapping ErrBufferTooSmall and leaves the destination untouched:
//
//	dst := make([]byte, 4)
//	if _, err := cstr.Strcpy(dst, []byte("hello")); errors.Is(err, cstr.ErrBufferTooSmall) {
//	    // handle error
//	}
//
// # Positions
//
// Search functions return an index into the slice that was passed in, or
// NotFound (-1).
//
// # Thread Safety
//
// All functions are safe for concurrent use on independent buffers.
// Strtok keeps one package-wide cursor for drop-in compatibility with C;
// interleaved scans from different goroutines corrupt each other's position.
// Use a Cursor per scan instead.
//
//	// Safe: one Cursor per goroutine
//	go func() {
//	    c := cstr.NewCursor(buf1)
//	    for tok := c.Next(delims); tok != nil; tok = c.Next(delims) {
//	        // ...
//	    }
//	}()
package cstr

import "github.com/shapestone/shape-cstr/internal/scan"

// NotFound is returned by search functions when there is no match.
const NotFound = -1

// Strlen returns the number of bytes preceding the first NUL in s.
// If s has no NUL, the end of the slice terminates it and Strlen returns len(s).
func Strlen(s []byte) int {
	if i := scan.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}

// Strnlen is Strlen limited to the first n bytes of s.
// It returns n when no NUL occurs before position n.
func Strnlen(s []byte, n int) int {
	if n <= 0 {
		return 0
	}
	if n < len(s) {
		s = s[:n]
	}
	return Strlen(s)
}

// CString returns a new buffer holding s followed by a NUL terminator.
// Content after an embedded NUL in s is kept but is not part of the
// logical sequence.
func CString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// GoString returns the logical content of b as a string.
func GoString(b []byte) string {
	return string(b[:Strlen(b)])
}

// Terminated reports whether b contains a NUL terminator.
//
// Strncpy does not terminate its output when the source is at least n
// bytes long; callers check the result with Terminated.
func Terminated(b []byte) bool {
	return scan.IndexByte(b, 0) >= 0
}

// Validate returns ErrUnterminated if b has no NUL terminator.
func Validate(b []byte) error {
	if !Terminated(b) {
		return ErrUnterminated
	}
	return nil
}
