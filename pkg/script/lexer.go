package script

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes Tinker source text. It is a pull-based producer: each
// NextToken call scans exactly one token. Once the end of input is reached
// it returns TokenEOF forever, so the parser can always request one more
// token safely.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token from the input or a *LexError.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespaceAndComments()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}, nil
	}

	ch := l.input[l.pos]

	// String literals. No escape processing: a literal '"' cannot appear
	// inside a string.
	if ch == '"' {
		return l.readString()
	}

	// Number literals
	if ch >= '0' && ch <= '9' {
		return l.readNumber()
	}

	// Two-character operators
	if l.pos+1 < len(l.input) {
		two := l.input[l.pos : l.pos+2]
		switch two {
		case "==":
			l.pos += 2
			return Token{Type: TokenEq, Value: "==", Pos: l.pos - 2}, nil
		case "!=":
			l.pos += 2
			return Token{Type: TokenNeq, Value: "!=", Pos: l.pos - 2}, nil
		case "<=":
			l.pos += 2
			return Token{Type: TokenLte, Value: "<=", Pos: l.pos - 2}, nil
		case ">=":
			l.pos += 2
			return Token{Type: TokenGte, Value: ">=", Pos: l.pos - 2}, nil
		case "&&":
			l.pos += 2
			return Token{Type: TokenAnd, Value: "&&", Pos: l.pos - 2}, nil
		case "||":
			l.pos += 2
			return Token{Type: TokenOr, Value: "||", Pos: l.pos - 2}, nil
		}
	}

	// Single-character operators and punctuation
	switch ch {
	case '+':
		l.pos++
		return Token{Type: TokenPlus, Value: "+", Pos: l.pos - 1}, nil
	case '-':
		l.pos++
		return Token{Type: TokenMinus, Value: "-", Pos: l.pos - 1}, nil
	case '*':
		l.pos++
		return Token{Type: TokenStar, Value: "*", Pos: l.pos - 1}, nil
	case '/':
		l.pos++
		return Token{Type: TokenSlash, Value: "/", Pos: l.pos - 1}, nil
	case '=':
		l.pos++
		return Token{Type: TokenAssign, Value: "=", Pos: l.pos - 1}, nil
	case '!':
		l.pos++
		return Token{Type: TokenNot, Value: "!", Pos: l.pos - 1}, nil
	case '<':
		l.pos++
		return Token{Type: TokenLt, Value: "<", Pos: l.pos - 1}, nil
	case '>':
		l.pos++
		return Token{Type: TokenGt, Value: ">", Pos: l.pos - 1}, nil
	case '&', '|':
		// Bare '&' or '|' is never valid; the paired forms were handled above.
		return Token{}, &LexError{Pos: l.pos, Msg: fmt.Sprintf("expected %q", string(ch)+string(ch))}
	case ';':
		l.pos++
		return Token{Type: TokenSemicolon, Value: ";", Pos: l.pos - 1}, nil
	case ',':
		l.pos++
		return Token{Type: TokenComma, Value: ",", Pos: l.pos - 1}, nil
	case '(':
		l.pos++
		return Token{Type: TokenLParen, Value: "(", Pos: l.pos - 1}, nil
	case ')':
		l.pos++
		return Token{Type: TokenRParen, Value: ")", Pos: l.pos - 1}, nil
	case '[':
		l.pos++
		return Token{Type: TokenLBracket, Value: "[", Pos: l.pos - 1}, nil
	case ']':
		l.pos++
		return Token{Type: TokenRBracket, Value: "]", Pos: l.pos - 1}, nil
	case '{':
		l.pos++
		return Token{Type: TokenLBrace, Value: "{", Pos: l.pos - 1}, nil
	case '}':
		l.pos++
		return Token{Type: TokenRBrace, Value: "}", Pos: l.pos - 1}, nil
	}

	// Identifiers and keywords
	if isWordStart(ch) {
		return l.readWord(), nil
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return Token{}, &LexError{Pos: l.pos, Msg: fmt.Sprintf("unknown character %q", string(r))}
}

// skipWhitespaceAndComments advances past whitespace and // line comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if unicode.IsSpace(rune(ch)) {
			l.pos++
			continue
		}
		if ch == '/' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '/' {
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
			continue
		}
		return
	}
}

// readString reads a double-quoted string literal.
func (l *Lexer) readString() (Token, error) {
	start := l.pos
	l.pos++ // skip opening quote

	for l.pos < len(l.input) {
		if l.input[l.pos] == '"' {
			l.pos++ // skip closing quote
			return Token{
				Type:    TokenString,
				Value:   l.input[start:l.pos],
				TextVal: l.input[start+1 : l.pos-1],
				Pos:     start,
			}, nil
		}
		l.pos++
	}

	return Token{}, &LexError{Pos: start, Msg: "unterminated string literal"}
}

// readNumber reads a maximal run of decimal digits as a 64-bit signed
// integer. No sign, no floats.
func (l *Lexer) readNumber() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		l.pos++
	}

	raw := l.input[start:l.pos]
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Token{}, &LexError{Pos: start, Msg: fmt.Sprintf("invalid integer %q", raw)}
	}
	return Token{Type: TokenNumber, Value: raw, NumVal: n, Pos: start}, nil
}

// readWord reads an identifier or keyword and maps it through the keyword
// table. Unrecognized words become TokenIdent.
func (l *Lexer) readWord() Token {
	start := l.pos
	for l.pos < len(l.input) && isWordPart(l.input[l.pos]) {
		l.pos++
	}

	word := l.input[start:l.pos]
	if tt, ok := keywords[word]; ok {
		return Token{Type: tt, Value: word, Pos: start}
	}
	return Token{Type: TokenIdent, Value: word, Pos: start}
}

func isWordStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isWordPart(ch byte) bool {
	return isWordStart(ch)
}
