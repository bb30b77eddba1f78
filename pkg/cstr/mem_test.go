package cstr

import (
	"bytes"
	"errors"
	"testing"
)

// TestMemchr tests bounded byte search.
func TestMemchr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		c     byte
		n     int
		want  int
	}{
		{"found", "hello", 'l', 5, 2},
		{"outside n", "hello", 'o', 4, NotFound},
		{"NUL is data", "ab\x00cd", 'c', 5, 3},
		{"search for NUL", "ab\x00cd", 0, 5, 2},
		{"zero count", "abc", 'a', 0, NotFound},
		{"high byte", "\x01\xff", 0xFF, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Memchr([]byte(tt.input), tt.c, tt.n)
			if err != nil {
				t.Fatalf("Memchr error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Memchr(%q, %q, %d) = %d, want %d", tt.input, tt.c, tt.n, got, tt.want)
			}
		})
	}

	if _, err := Memchr([]byte("ab"), 'a', 3); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("n > len: expected ErrBufferTooSmall, got %v", err)
	}
	if _, err := Memchr([]byte("ab"), 'a', -1); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("negative n: expected ErrNegativeCount, got %v", err)
	}
}

// TestMemcmp tests bounded byte comparison.
func TestMemcmp(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		n    int
		want int
	}{
		{"equal", "abc", "abc", 3, 0},
		{"NUL does not stop", "a\x00b", "a\x00c", 3, -1},
		{"difference beyond n", "abX", "abY", 2, 0},
		{"unsigned", "\x80", "\x01", 1, 0x7f},
		{"zero count", "a", "b", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Memcmp([]byte(tt.a), []byte(tt.b), tt.n)
			if err != nil {
				t.Fatalf("Memcmp error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Memcmp(%q, %q, %d) = %d, want %d", tt.a, tt.b, tt.n, got, tt.want)
			}
		})
	}

	if _, err := Memcmp([]byte("abc"), []byte("ab"), 3); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("short b: expected ErrBufferTooSmall, got %v", err)
	}
}

// TestMemset tests filling a region.
func TestMemset(t *testing.T) {
	buf := bytes.Repeat([]byte{0xAB}, 16)

	got, err := Memset(buf, 0, 10)
	if err != nil {
		t.Fatalf("Memset error: %v", err)
	}
	for i := 0; i < 10; i++ {
		if got[i] != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, got[i])
		}
	}
	for i := 10; i < len(buf); i++ {
		if buf[i] != 0xAB {
			t.Fatalf("Memset wrote byte %d past n", i)
		}
	}

	if _, err := Memset(buf, 'x', 17); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("expected ErrBufferTooSmall, got %v", err)
	}
}

// TestMemcpy tests non-overlapping copies.
func TestMemcpy(t *testing.T) {
	src := []byte("a\x00b\x00c")
	dst := make([]byte, 8)

	got, err := Memcpy(dst, src, len(src))
	if err != nil {
		t.Fatalf("Memcpy error: %v", err)
	}
	if !bytes.Equal(got[:len(src)], src) {
		t.Errorf("Memcpy = %q, want %q", got[:len(src)], src)
	}

	// Adjacent, non-overlapping halves of one buffer.
	buf := []byte("abcdef")
	if _, err := Memcpy(buf[:3], buf[3:], 3); err != nil {
		t.Fatalf("adjacent regions: %v", err)
	}
	if string(buf) != "defdef" {
		t.Errorf("buf = %q, want defdef", buf)
	}
}

// TestMemcpy_Overlap tests that overlapping regions are rejected.
func TestMemcpy_Overlap(t *testing.T) {
	buf := []byte("abcdef")

	_, err := Memcpy(buf[1:], buf, 3)
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
	if string(buf) != "abcdef" {
		t.Errorf("buffer modified on error: %q", buf)
	}

	if _, err := Memcpy(buf, buf, 0); err != nil {
		t.Errorf("zero-length copy: unexpected error %v", err)
	}
}

// TestMemmove tests copies with overlapping regions.
func TestMemmove(t *testing.T) {
	tests := []struct {
		name     string
		dstStart int
		srcStart int
		n        int
	}{
		{"forward overlap", 0, 2, 6},
		{"backward overlap", 2, 0, 6},
		{"same address", 3, 3, 4},
		{"disjoint", 0, 8, 4},
		{"zero count", 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte("0123456789AB")
			want := append([]byte(nil), buf...)
			copy(want[tt.dstStart:tt.dstStart+tt.n], append([]byte(nil), buf[tt.srcStart:tt.srcStart+tt.n]...))

			if _, err := Memmove(buf[tt.dstStart:], buf[tt.srcStart:], tt.n); err != nil {
				t.Fatalf("Memmove error: %v", err)
			}
			if !bytes.Equal(buf, want) {
				t.Errorf("Memmove = %q, want %q", buf, want)
			}
		})
	}
}

// TestMemmove_Errors tests count validation.
func TestMemmove_Errors(t *testing.T) {
	buf := []byte("abc")
	if _, err := Memmove(buf[1:], buf, 3); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("expected ErrBufferTooSmall, got %v", err)
	}
	if _, err := Memmove(buf, buf[1:], -1); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("expected ErrNegativeCount, got %v", err)
	}
}
