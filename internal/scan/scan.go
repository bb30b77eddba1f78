// Package scan provides chunked byte classification for the cstr primitives.
//
// The implementation uses the two-stage layout of a SIMD scanner:
// Stage 1: classify a 64-byte chunk into bitmasks (target byte, NUL byte)
// Stage 2: locate the first interesting position with a trailing-zero count
//
// Classification is pure Go. Stage 1 has no early exit inside a chunk.
package scan

import "math/bits"

// ChunkSize is the number of bytes classified per stage 1 pass.
// One bit per byte fits a uint64 mask.
const ChunkSize = 64

// Bitmasks holds the classified positions of a chunk.
// Bit i corresponds to byte i of the chunk.
type Bitmasks struct {
	Match uint64 // positions equal to the target byte
	Zero  uint64 // positions holding the NUL terminator
}

// Classify marks target and NUL positions in a chunk of at most ChunkSize bytes.
// Bytes beyond ChunkSize are ignored.
func Classify(chunk []byte, target byte) Bitmasks {
	var masks Bitmasks

	n := len(chunk)
	if n > ChunkSize {
		n = ChunkSize
	}
	for i := 0; i < n; i++ {
		c := chunk[i]
		if c == target {
			masks.Match |= 1 << uint(i)
		}
		if c == 0 {
			masks.Zero |= 1 << uint(i)
		}
	}

	return masks
}

// IndexByte returns the index of the first c in data, or -1.
// NUL bytes have no special meaning.
func IndexByte(data []byte, c byte) int {
	for offset := 0; offset < len(data); offset += ChunkSize {
		end := offset + ChunkSize
		if end > len(data) {
			end = len(data)
		}
		masks := Classify(data[offset:end], c)
		if masks.Match != 0 {
			return offset + bits.TrailingZeros64(masks.Match)
		}
	}
	return -1
}

// IndexByteOrZero returns the index of the first byte that is either c or NUL,
// or -1 when data holds neither.
func IndexByteOrZero(data []byte, c byte) int {
	for offset := 0; offset < len(data); offset += ChunkSize {
		end := offset + ChunkSize
		if end > len(data) {
			end = len(data)
		}
		masks := Classify(data[offset:end], c)
		if hits := masks.Match | masks.Zero; hits != 0 {
			return offset + bits.TrailingZeros64(hits)
		}
	}
	return -1
}

// LastIndexByte returns the index of the last c in data, or -1.
// Chunks are visited from the end so the scan stops at the first hit.
func LastIndexByte(data []byte, c byte) int {
	if len(data) == 0 {
		return -1
	}
	offset := (len(data) - 1) / ChunkSize * ChunkSize
	for ; offset >= 0; offset -= ChunkSize {
		end := offset + ChunkSize
		if end > len(data) {
			end = len(data)
		}
		masks := Classify(data[offset:end], c)
		if masks.Match != 0 {
			return offset + 63 - bits.LeadingZeros64(masks.Match)
		}
	}
	return -1
}
