package cstr

// ByteSet is a membership table for a set of byte values.
// The zero value is the empty set.
type ByteSet [256]bool

// NewByteSet builds a ByteSet from the sequence in set. Bytes after the
// terminator are not members, and NUL itself is never a member.
func NewByteSet(set []byte) *ByteSet {
	var s ByteSet
	for _, b := range set[:Strlen(set)] {
		s[b] = true
	}
	return &s
}

// Contains reports whether b is in the set.
func (s *ByteSet) Contains(b byte) bool {
	return s[b]
}

// Span returns the length of the prefix of the sequence in seq made only of
// members of s.
func (s *ByteSet) Span(seq []byte) int {
	for i, b := range seq {
		if !s[b] {
			return i
		}
	}
	return len(seq)
}

// CSpan returns the length of the prefix of the sequence in seq made only of
// bytes that are not members of s. The terminator ends the prefix.
func (s *ByteSet) CSpan(seq []byte) int {
	for i, b := range seq {
		if b == 0 || s[b] {
			return i
		}
	}
	return len(seq)
}
