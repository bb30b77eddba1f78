package cstr

import "sync"

// Cursor holds the state of one destructive tokenization scan.
//
// Each call to Next skips a run of delimiter bytes, returns the token that
// follows and overwrites the delimiter ending it with NUL. A Cursor belongs
// to one scan; independent scans each use their own Cursor.
//
// The zero value is an inactive cursor; Next returns nil until Reset.
type Cursor struct {
	buf    []byte
	pos    int
	last   int
	active bool
}

// NewCursor returns a Cursor positioned at the start of s.
func NewCursor(s []byte) *Cursor {
	c := &Cursor{}
	c.Reset(s)
	return c
}

// Reset starts a new scan over s, discarding any previous state.
// A nil s leaves the cursor inactive.
func (c *Cursor) Reset(s []byte) {
	c.buf = s
	c.pos = 0
	c.last = NotFound
	c.active = s != nil
}

// Active reports whether the scan may still yield tokens.
func (c *Cursor) Active() bool {
	return c.active
}

// Offset returns the index in the scanned buffer of the token most recently
// returned by Next, or NotFound.
func (c *Cursor) Offset() int {
	return c.last
}

// Next returns the next token of the scan, or nil when no token remains.
// The delimiter set may differ between calls.
//
// The returned slice aliases the scanned buffer and excludes the NUL that
// Next wrote after it; its capacity is clipped to its length.
func (c *Cursor) Next(delims []byte) []byte {
	if !c.active {
		return nil
	}
	set := NewByteSet(delims)

	start := c.pos + set.Span(c.buf[c.pos:])
	if start >= len(c.buf) || c.buf[start] == 0 {
		c.finish()
		return nil
	}

	end := start + set.CSpan(c.buf[start:])
	tok := c.buf[start:end:end]
	c.last = start
	if end < len(c.buf) && c.buf[end] != 0 {
		c.buf[end] = 0
		c.pos = end + 1
	} else {
		c.finish()
	}
	return tok
}

// finish ends the scan. The offset of the last token stays readable.
func (c *Cursor) finish() {
	c.buf = nil
	c.pos = 0
	c.active = false
}

var (
	strtokMu     sync.Mutex
	strtokCursor Cursor
)

// Strtok is the C strtok contract over one package-wide Cursor.
//
// A non-nil s starts a new scan over s; a nil s resumes the current scan and
// returns nil if none is active. Strtok returns nil when no token remains.
//
// Strtok is not reentrant: two interleaved scans share the cursor and
// corrupt each other. Calls are serialized so the cursor itself is never
// raced, but only one scan can be in progress at a time. Prefer Cursor.
func Strtok(s, delims []byte) []byte {
	strtokMu.Lock()
	defer strtokMu.Unlock()

	if s != nil {
		strtokCursor.Reset(s)
	}
	return strtokCursor.Next(delims)
}
