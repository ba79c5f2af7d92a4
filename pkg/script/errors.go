package script

import "fmt"

// LexError reports a malformed token stream: an unterminated string literal,
// an unrecognized character, an out-of-range integer, or a bare '&'/'|'.
type LexError struct {
	Pos int
	Msg string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Pos, e.Msg)
}

// ParseError reports a token sequence that violates the grammar, naming the
// unexpected token and, where applicable, the expected one.
type ParseError struct {
	Pos      int
	Got      TokenType
	Expected string // expected token or construct, "" when open-ended
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("parse error at position %d: unexpected token %s", e.Pos, e.Got)
	}
	return fmt.Sprintf("parse error at position %d: unexpected token %s, expected %s", e.Pos, e.Got, e.Expected)
}
