package cstr

import (
	"sync"
	"testing"
)

// TestStrtok tests the package-wide tokenizer.
func TestStrtok(t *testing.T) {
	buf := CString("a,b,,c")
	delims := []byte(",")

	var got []string
	for tok := Strtok(buf, delims); tok != nil; tok = Strtok(nil, delims) {
		got = append(got, string(tok))
	}

	want := []string{"a", "b", "c"}
	if !equalStrings(got, want) {
		t.Fatalf("tokens = %q, want %q", got, want)
	}

	// Exhausted scan keeps returning nil.
	if tok := Strtok(nil, delims); tok != nil {
		t.Errorf("expected nil after exhaustion, got %q", tok)
	}

	// Delimiters ending tokens were overwritten in place.
	if string(buf) != "a\x00b\x00,c\x00" {
		t.Errorf("buffer after scan = %q", buf)
	}
}

// TestStrtok_NewInputDiscardsState tests that a non-nil input restarts the scan.
func TestStrtok_NewInputDiscardsState(t *testing.T) {
	first := CString("x y z")
	if tok := Strtok(first, []byte(" ")); string(tok) != "x" {
		t.Fatalf("first token = %q", tok)
	}

	second := CString("p q")
	if tok := Strtok(second, []byte(" ")); string(tok) != "p" {
		t.Fatalf("restarted token = %q", tok)
	}
	if tok := Strtok(nil, []byte(" ")); string(tok) != "q" {
		t.Errorf("resumed token = %q, want q", tok)
	}
	if tok := Strtok(nil, []byte(" ")); tok != nil {
		t.Errorf("expected nil, got %q", tok)
	}
}

// TestCursor tests explicit cursor scans.
func TestCursor(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		delims string
		want   []string
	}{
		{"consecutive delimiters", "a,b,,c", ",", []string{"a", "b", "c"}},
		{"leading and trailing", ",,a,,", ",", []string{"a"}},
		{"only delimiters", ",,,", ",", nil},
		{"empty input", "", ",", nil},
		{"no delimiters", "abc", ",", []string{"abc"}},
		{"empty delimiter set", "a b", "", []string{"a b"}},
		{"multiple delimiters", "GET /x HTTP/1.1\r\n", " \r\n", []string{"GET", "/x", "HTTP/1.1"}},
		{"stops at terminator", "a b\x00c d", " ", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(CString(tt.input))
			var got []string
			for tok := c.Next([]byte(tt.delims)); tok != nil; tok = c.Next([]byte(tt.delims)) {
				got = append(got, string(tok))
			}
			if !equalStrings(got, tt.want) {
				t.Errorf("tokens = %q, want %q", got, tt.want)
			}
			if c.Active() {
				t.Error("cursor still active after exhaustion")
			}
		})
	}
}

// TestCursor_ImplicitTerminator tests scanning a slice without a NUL.
func TestCursor_ImplicitTerminator(t *testing.T) {
	buf := []byte("k=v")
	c := NewCursor(buf)

	if tok := c.Next([]byte("=")); string(tok) != "k" {
		t.Fatalf("first token = %q", tok)
	}
	if tok := c.Next([]byte("=")); string(tok) != "v" {
		t.Fatalf("second token = %q", tok)
	}
	if c.Active() {
		t.Error("cursor should finish at the end of the slice")
	}
	if string(buf) != "k\x00v" {
		t.Errorf("buffer = %q", buf)
	}
}

// TestCursor_ChangingDelims tests a different delimiter set per call.
func TestCursor_ChangingDelims(t *testing.T) {
	c := NewCursor(CString("key=a b"))

	if tok := c.Next([]byte("=")); string(tok) != "key" {
		t.Fatalf("key = %q", tok)
	}
	if tok := c.Next([]byte(" ")); string(tok) != "a" {
		t.Fatalf("first value = %q", tok)
	}
	if tok := c.Next([]byte(" ")); string(tok) != "b" {
		t.Fatalf("second value = %q", tok)
	}
}

// TestCursor_Offset tests token positions.
func TestCursor_Offset(t *testing.T) {
	c := NewCursor(CString("  ab  cd"))
	if c.Offset() != NotFound {
		t.Errorf("Offset before Next = %d", c.Offset())
	}

	c.Next([]byte(" "))
	if c.Offset() != 2 {
		t.Errorf("Offset = %d, want 2", c.Offset())
	}
	c.Next([]byte(" "))
	if c.Offset() != 6 {
		t.Errorf("Offset = %d, want 6", c.Offset())
	}
}

// TestCursor_FinalToken tests the token that ends a scan.
func TestCursor_FinalToken(t *testing.T) {
	tests := []struct {
		name       string
		buf        []byte
		wantTok    string
		wantOffset int
	}{
		{"explicit terminator", CString("a,b,,c"), "c", 5},
		{"implicit terminator", []byte("a,b,,cd"), "cd", 5},
		{"single token", CString("word"), "word", 0},
		{"trailing delimiters", CString("x,,"), "x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.buf)
			var last []byte
			for tok := c.Next([]byte(",")); tok != nil; tok = c.Next([]byte(",")) {
				last = tok
			}
			if string(last) != tt.wantTok {
				t.Errorf("final token = %q, want %q", last, tt.wantTok)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("Offset after scan = %d, want %d", c.Offset(), tt.wantOffset)
			}
			if c.Active() {
				t.Error("cursor still active after final token")
			}
			if tok := c.Next([]byte(",")); tok != nil {
				t.Errorf("Next after scan = %q, want nil", tok)
			}
		})
	}
}

// TestStrtok_FinalToken tests that Strtok returns the token ending the input.
func TestStrtok_FinalToken(t *testing.T) {
	buf := []byte("k v")
	if tok := Strtok(buf, []byte(" ")); string(tok) != "k" {
		t.Fatalf("first token = %q", tok)
	}
	tok := Strtok(nil, []byte(" "))
	if string(tok) != "v" {
		t.Fatalf("final token = %q, want v", tok)
	}
	if cap(tok) != len(tok) {
		t.Errorf("final token capacity = %d, want %d", cap(tok), len(tok))
	}
	if tok := Strtok(nil, []byte(" ")); tok != nil {
		t.Errorf("expected nil after final token, got %q", tok)
	}
}

// TestCursor_ZeroValue tests that an unset cursor yields nothing.
func TestCursor_ZeroValue(t *testing.T) {
	var c Cursor
	if tok := c.Next([]byte(",")); tok != nil {
		t.Errorf("zero Cursor returned %q", tok)
	}

	c.Reset(nil)
	if c.Active() {
		t.Error("Reset(nil) should leave the cursor inactive")
	}
}

// TestCursor_TokenCapacity tests that tokens cannot be appended into the buffer.
func TestCursor_TokenCapacity(t *testing.T) {
	buf := CString("ab,cd")
	tok := NewCursor(buf).Next([]byte(","))
	if cap(tok) != len(tok) {
		t.Errorf("token capacity = %d, want %d", cap(tok), len(tok))
	}
}

// TestCursor_Concurrent tests independent cursors in parallel.
func TestCursor_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 8)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := NewCursor(CString("one two three four"))
			var got []string
			for tok := c.Next([]byte(" ")); tok != nil; tok = c.Next([]byte(" ")) {
				got = append(got, string(tok))
			}
			if len(got) != 4 {
				errs <- "unexpected token count"
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
