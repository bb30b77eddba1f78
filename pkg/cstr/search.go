package cstr

import "github.com/shapestone/shape-cstr/internal/scan"

// Strchr returns the index of the first c in the sequence s, or NotFound.
// Searching for NUL finds the terminator, which is Strlen(s) even when the
// terminator is the implicit end of the slice.
func Strchr(s []byte, c byte) int {
	i := scan.IndexByteOrZero(s, c)
	if i < 0 {
		if c == 0 {
			return len(s)
		}
		return NotFound
	}
	if s[i] != c {
		return NotFound
	}
	return i
}

// Strrchr returns the index of the last c in the sequence s, or NotFound.
// Searching for NUL finds the terminator, as with Strchr.
func Strrchr(s []byte, c byte) int {
	n := Strlen(s)
	if c == 0 {
		return n
	}
	return scan.LastIndexByte(s[:n], c)
}

// Strspn returns the length of the longest prefix of s made only of bytes
// in the sequence accept.
func Strspn(s, accept []byte) int {
	return NewByteSet(accept).Span(s)
}

// Strcspn returns the length of the longest prefix of s made only of bytes
// not in the sequence reject.
func Strcspn(s, reject []byte) int {
	return NewByteSet(reject).CSpan(s)
}

// Strpbrk returns the index of the first byte of s that is in the sequence
// set, or NotFound.
func Strpbrk(s, set []byte) int {
	i := Strcspn(s, set)
	if i == len(s) || s[i] == 0 {
		return NotFound
	}
	return i
}

// Strstr returns the index of the first occurrence of the sequence needle in
// the sequence haystack, or NotFound. Terminators are not compared. An empty
// needle matches at 0.
//
// The search is Knuth-Morris-Pratt, linear in len(haystack)+len(needle).
// The failure table lives on the stack for needles up to maxStackNeedle
// bytes; longer needles allocate it.
func Strstr(haystack, needle []byte) int {
	h := haystack[:Strlen(haystack)]
	p := needle[:Strlen(needle)]

	switch {
	case len(p) == 0:
		return 0
	case len(p) > len(h):
		return NotFound
	case len(p) == 1:
		return scan.IndexByte(h, p[0])
	}

	var table [maxStackNeedle]int
	var fail []int
	if len(p) <= maxStackNeedle {
		fail = table[:len(p)]
	} else {
		fail = make([]int, len(p))
	}
	failureTable(p, fail)

	k := 0
	for i, b := range h {
		for k > 0 && b != p[k] {
			k = fail[k-1]
		}
		if b == p[k] {
			k++
		}
		if k == len(p) {
			return i - len(p) + 1
		}
	}
	return NotFound
}

const maxStackNeedle = 256

// failureTable fills fail with the KMP prefix function of p: fail[i] is the
// length of the longest proper prefix of p[:i+1] that is also its suffix.
func failureTable(p []byte, fail []int) {
	fail[0] = 0
	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = fail[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		fail[i] = k
	}
}
