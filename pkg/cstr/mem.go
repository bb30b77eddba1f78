package cstr

import (
	"unsafe"

	"github.com/shapestone/shape-cstr/internal/scan"
)

// Memchr returns the index of the first c within the first n bytes of s, or
// NotFound. NUL has no special meaning.
func Memchr(s []byte, c byte, n int) (int, error) {
	if err := checkCount("memchr", n, len(s)); err != nil {
		return NotFound, err
	}
	return scan.IndexByte(s[:n], c), nil
}

// Memcmp compares the first n bytes of a and b as unsigned bytes.
// It returns the difference of the first differing pair, or 0.
func Memcmp(a, b []byte, n int) (int, error) {
	if err := checkCount("memcmp", n, len(a)); err != nil {
		return 0, err
	}
	if err := checkCount("memcmp", n, len(b)); err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i]), nil
		}
	}
	return 0, nil
}

// Memset writes c into the first n bytes of dst and returns dst.
func Memset(dst []byte, c byte, n int) ([]byte, error) {
	if err := checkCount("memset", n, len(dst)); err != nil {
		return dst, err
	}
	for i := range dst[:n] {
		dst[i] = c
	}
	return dst, nil
}

// Memcpy copies the first n bytes of src into dst and returns dst.
//
// The regions must not overlap; overlapping regions are reported as
// ErrOverlap and nothing is copied. Use Memmove for overlapping regions.
func Memcpy(dst, src []byte, n int) ([]byte, error) {
	if err := checkSpans("memcpy", dst, src, n); err != nil {
		return dst, err
	}
	if n == 0 {
		return dst, nil
	}
	d, s := addr(dst), addr(src)
	if d < s+uintptr(n) && s < d+uintptr(n) {
		return dst, &CapacityError{Op: "memcpy", Need: n, Have: n, Err: ErrOverlap}
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	return dst, nil
}

// Memmove copies the first n bytes of src into dst and returns dst.
// The result is correct for overlapping regions: the copy runs forward when
// dst starts before src and backward when it starts after.
func Memmove(dst, src []byte, n int) ([]byte, error) {
	if err := checkSpans("memmove", dst, src, n); err != nil {
		return dst, err
	}
	if n == 0 {
		return dst, nil
	}

	d, s := addr(dst), addr(src)
	switch {
	case d == s:
	case d < s:
		for i := 0; i < n; i++ {
			dst[i] = src[i]
		}
	default:
		for i := n - 1; i >= 0; i-- {
			dst[i] = src[i]
		}
	}
	return dst, nil
}

func checkSpans(op string, dst, src []byte, n int) error {
	if err := checkCount(op, n, len(dst)); err != nil {
		return err
	}
	return checkCount(op, n, len(src))
}

// addr returns the address of the first element of b.
func addr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
