package cstr

// Strcpy copies the sequence in src, including its terminator, into dst and
// returns dst.
//
// dst must hold at least Strlen(src)+1 bytes. The result for overlapping
// dst and src is unspecified.
func Strcpy(dst, src []byte) ([]byte, error) {
	n := Strlen(src)
	if len(dst) < n+1 {
		return dst, tooSmall("strcpy", n+1, len(dst))
	}
	copy(dst, src[:n])
	dst[n] = 0
	return dst, nil
}

// Strncpy writes exactly n bytes to dst: the first n bytes of the sequence
// in src, then NUL padding up to n.
//
// If src has no terminator within its first n bytes, dst is not terminated.
// Check the result with Terminated when that matters.
func Strncpy(dst, src []byte, n int) ([]byte, error) {
	if err := checkCount("strncpy", n, len(dst)); err != nil {
		return dst, err
	}
	l := Strnlen(src, n)
	copy(dst, src[:l])
	clear(dst[l:n])
	return dst, nil
}

// Strcat appends the sequence in src, including its terminator, at the
// logical end of dst and returns dst.
//
// dst must hold at least Strlen(dst)+Strlen(src)+1 bytes. A dst without a
// terminator has no free room and always fails.
func Strcat(dst, src []byte) ([]byte, error) {
	return cat("strcat", dst, src, Strlen(src))
}

// Strncat appends at most n bytes of src at the logical end of dst, stopping
// early at the terminator of src, then writes one terminator. Unlike
// Strncpy, the result is always terminated and never padded.
func Strncat(dst, src []byte, n int) ([]byte, error) {
	if n < 0 {
		return dst, &CapacityError{Op: "strncat", Need: n, Have: len(dst), Err: ErrNegativeCount}
	}
	return cat("strncat", dst, src, Strnlen(src, n))
}

func cat(op string, dst, src []byte, n int) ([]byte, error) {
	end := Strlen(dst)
	if need := end + n + 1; need > len(dst) {
		return dst, tooSmall(op, need, len(dst))
	}
	copy(dst[end:], src[:n])
	dst[end+n] = 0
	return dst, nil
}
