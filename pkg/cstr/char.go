package cstr

import (
	"fmt"

	"fortio.org/safecast"
)

// Char converts a C-style int character argument to a byte the way C does:
// the value is truncated to unsigned char, so Char(-1) == 0xFF and
// Char(0x141) == 0x41.
func Char(c int) byte {
	return byte(c)
}

// CheckedChar converts c to a byte, rejecting values outside 0..255 instead
// of truncating them.
func CheckedChar(c int) (byte, error) {
	b, err := safecast.Conv[byte](c)
	if err != nil {
		return 0, fmt.Errorf("%w: %d", ErrCharRange, c)
	}
	return b, nil
}
