// Package tokenizer provides delimiter-set tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for delimiter-separated input.
//
// Note: The tokenizer emits delimiter runs as single tokens, the way a
// strtok scan skips them as a whole. Callers that only want the tokens
// themselves keep TokenWord and drop everything else.
const (
	// Structural tokens
	TokenDelim = "Delim" // run of one or more delimiter bytes
	TokenNUL   = "NUL"   // \x00 (logical end of input)

	// Content token
	TokenWord = "Word" // run of non-delimiter, non-NUL bytes

	// Special token
	TokenEOF = "EOF" // End of file
)
