package tokenizer

import (
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Delims is the delimiter set. Every byte of the string is a delimiter;
	// order and repetition do not matter. Default: " \t\n"
	Delims string
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Delims: " \t\n",
	}
}

// DelimSet is a byte membership table for a delimiter set.
type DelimSet [256]bool

// NewDelimSet builds a DelimSet from the bytes of delims.
func NewDelimSet(delims string) *DelimSet {
	var set DelimSet
	for i := 0; i < len(delims); i++ {
		set[delims[i]] = true
	}
	return &set
}

// Contains reports whether b is a delimiter.
func (s *DelimSet) Contains(b byte) bool {
	return s[b]
}

// containsRune reports whether r is a delimiter. Only single-byte runes can
// be members; multi-byte delimiters are handled by the byte path.
func (s *DelimSet) containsRune(r rune) bool {
	return r < utf8.RuneSelf && s[byte(r)]
}

// NewTokenizer creates a tokenizer with the default whitespace delimiter set.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer for a custom delimiter set.
//
// Matchers in order of specificity:
// 1. NUL terminator (ends the logical input)
// 2. Delimiter run
// 3. Word (any run of non-delimiter bytes)
//
// The three matchers cover every byte, so tokenization only stops at the
// end of the stream.
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	set := NewDelimSet(opts.Delims)
	// NUL can never be a delimiter; it terminates the input.
	set[0] = false

	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNUL, "\x00"),
		DelimMatcher(set),
		WordMatcher(set),
	)
}

// NewTokenizerWithStream creates a tokenizer using a pre-configured stream.
// This is used internally to support streaming from io.Reader.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	return NewTokenizerWithStreamAndOptions(stream, DefaultOptions())
}

// NewTokenizerWithStreamAndOptions creates a tokenizer from a stream with custom options.
func NewTokenizerWithStreamAndOptions(stream tokenizer.Stream, opts Options) tokenizer.Tokenizer {
	tok := NewTokenizerWithOptions(opts)
	tok.InitializeFromStream(stream)
	return tok
}

// DelimMatcher creates a matcher for a run of delimiter bytes.
//
// Grammar:
//
//	Delim = Delimiter+ ;
func DelimMatcher(set *DelimSet) tokenizer.Matcher {
	return runMatcher(TokenDelim, func(b byte) bool { return set.Contains(b) }, set.containsRune)
}

// WordMatcher creates a matcher for a run of word bytes.
//
// Grammar:
//
//	Word = Character+ ;
//	Character = <any byte except a delimiter or NUL> ;
//
// Performance: Uses ByteStream for fast scanning when available.
func WordMatcher(set *DelimSet) tokenizer.Matcher {
	return runMatcher(TokenWord,
		func(b byte) bool { return b != 0 && !set.Contains(b) },
		func(r rune) bool { return r != 0 && !set.containsRune(r) },
	)
}

// runMatcher builds a matcher that consumes the longest run accepted by the
// byte predicate, falling back to the rune predicate for plain streams.
func runMatcher(kind string, acceptByte func(byte) bool, acceptRune func(rune) bool) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return runMatcherByte(byteStream, kind, acceptByte)
		}
		return runMatcherRune(stream, kind, acceptRune)
	}
}

// runMatcherByte uses ByteStream for optimal performance.
func runMatcherByte(stream tokenizer.ByteStream, kind string, accept func(byte) bool) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || !accept(b) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(kind, []rune(string(value)))
}

// runMatcherRune is the fallback rune-based implementation.
func runMatcherRune(stream tokenizer.Stream, kind string, accept func(rune) bool) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || !accept(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(kind, value)
}
