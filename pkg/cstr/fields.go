package cstr

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-cstr/internal/tokenizer"
)

// Fields returns the tokens a Strtok scan of input with delims would yield,
// without modifying anything. The scan stops at the first NUL in input;
// delims is cut at its first NUL as well.
//
// Input is read as UTF-8: an invalid byte comes back as U+FFFD, so the
// result matches Strtok only for ASCII or valid UTF-8 input and ASCII
// delimiters. Use Cursor for arbitrary binary data.
//
// Example:
//
//	cstr.Fields("a,b,,c", ",") // ["a" "b" "c"]
func Fields(input, delims string) []string {
	fields := make([]string, 0, 8)
	// A string stream always reaches its end, so the error is always nil.
	_ = scanWords(shapetokenizer.NewStream(input), delims, func(tok *shapetokenizer.Token) {
		fields = append(fields, tok.ValueString())
	})
	return fields
}

// Tokenize splits input like Fields and returns the tokens as an AST.
//
// Returns an *ast.ArrayDataNode whose elements are *ast.LiteralNode values
// holding each token as a string, positioned at the token's offset, row and
// column in input.
//
// Example:
//
//	node, err := cstr.Tokenize("GET /index.html HTTP/1.1", " ")
//	tokens := node.(*ast.ArrayDataNode).Elements()
//	// tokens[1].(*ast.LiteralNode).Value() == "/index.html"
func Tokenize(input, delims string) (ast.SchemaNode, error) {
	return tokenizeStream(shapetokenizer.NewStream(input), delims)
}

// TokenizeReader is Tokenize over an io.Reader with streaming support.
// Reading stops at the first NUL byte or at the end of the reader.
//
// Example:
//
//	file, err := os.Open("words.txt")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	node, err := cstr.TokenizeReader(file, " \t\n")
func TokenizeReader(r io.Reader, delims string) (ast.SchemaNode, error) {
	return tokenizeStream(shapetokenizer.NewStreamFromReader(r), delims)
}

func tokenizeStream(stream shapetokenizer.Stream, delims string) (ast.SchemaNode, error) {
	tokens := make([]ast.SchemaNode, 0, 16)
	err := scanWords(stream, delims, func(tok *shapetokenizer.Token) {
		pos := ast.NewPosition(tok.Offset(), tok.Row(), tok.Column())
		tokens = append(tokens, ast.NewLiteralNode(tok.ValueString(), pos))
	})
	if err != nil {
		return nil, err
	}
	return ast.NewArrayDataNode(tokens, ast.ZeroPosition()), nil
}

// scanWords feeds every word token of stream to emit, stopping at a NUL
// token or at the end of the stream.
func scanWords(stream shapetokenizer.Stream, delims string, emit func(*shapetokenizer.Token)) error {
	tok := tokenizer.NewTokenizerWithStreamAndOptions(stream, tokenizer.Options{
		Delims: delims[:Strlen([]byte(delims))],
	})

	for {
		token, ok := tok.NextToken()
		if !ok {
			break
		}
		switch token.Kind() {
		case tokenizer.TokenWord:
			emit(token)
		case tokenizer.TokenNUL:
			return nil
		}
	}

	if !stream.IsEos() {
		return fmt.Errorf("tokenize: %w", ErrIncompleteInput)
	}
	return nil
}
