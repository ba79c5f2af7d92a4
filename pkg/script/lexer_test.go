package script

import "testing"

// collect drains the lexer into a token slice, failing on lex errors.
func collect(t *testing.T, input string) []Token {
	t.Helper()
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("lex error: %v", err)
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

func TestLexerTokenTypes(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenType
	}{
		{"1 + 2;", []TokenType{TokenNumber, TokenPlus, TokenNumber, TokenSemicolon, TokenEOF}},
		{"x = 10;", []TokenType{TokenIdent, TokenAssign, TokenNumber, TokenSemicolon, TokenEOF}},
		{`print "hi";`, []TokenType{TokenPrint, TokenString, TokenSemicolon, TokenEOF}},
		{"a == b != c", []TokenType{TokenIdent, TokenEq, TokenIdent, TokenNeq, TokenIdent, TokenEOF}},
		{"< <= > >=", []TokenType{TokenLt, TokenLte, TokenGt, TokenGte, TokenEOF}},
		{"a && b || !c", []TokenType{TokenIdent, TokenAnd, TokenIdent, TokenOr, TokenNot, TokenIdent, TokenEOF}},
		{"[1, 2]", []TokenType{TokenLBracket, TokenNumber, TokenComma, TokenNumber, TokenRBracket, TokenEOF}},
		{"if x { } elseif y { } else { }", []TokenType{
			TokenIf, TokenIdent, TokenLBrace, TokenRBrace,
			TokenElseIf, TokenIdent, TokenLBrace, TokenRBrace,
			TokenElse, TokenLBrace, TokenRBrace, TokenEOF,
		}},
		{"while for true false", []TokenType{TokenWhile, TokenFor, TokenTrue, TokenFalse, TokenEOF}},
		{"join split count length", []TokenType{TokenJoin, TokenSplit, TokenCount, TokenLength, TokenEOF}},
		{"uppercase lowercase trim replace", []TokenType{TokenUppercase, TokenLowercase, TokenTrim, TokenReplace, TokenEOF}},
		{"push pop first last read_file write_file", []TokenType{
			TokenPush, TokenPop, TokenFirst, TokenLast, TokenReadFile, TokenWriteFile, TokenEOF,
		}},
		{"(a / b) * c - d", []TokenType{
			TokenLParen, TokenIdent, TokenSlash, TokenIdent, TokenRParen,
			TokenStar, TokenIdent, TokenMinus, TokenIdent, TokenEOF,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := collect(t, tt.input)
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.want))
			}
			for i, tok := range tokens {
				if tok.Type != tt.want[i] {
					t.Errorf("token %d: got %s, want %s", i, tok.Type, tt.want[i])
				}
			}
		})
	}
}

func TestLexerLiteralValues(t *testing.T) {
	tokens := collect(t, `42 "hello world" answer`)

	if tokens[0].Type != TokenNumber || tokens[0].NumVal != 42 {
		t.Errorf("number literal: got %+v", tokens[0])
	}
	if tokens[1].Type != TokenString || tokens[1].TextVal != "hello world" {
		t.Errorf("string literal: got %+v", tokens[1])
	}
	if tokens[2].Type != TokenIdent || tokens[2].Value != "answer" {
		t.Errorf("identifier: got %+v", tokens[2])
	}
}

func TestLexerSkipsCommentsAndWhitespace(t *testing.T) {
	input := "// leading comment\n  x = 1; // trailing\n// final"
	tokens := collect(t, input)
	want := []TokenType{TokenIdent, TokenAssign, TokenNumber, TokenSemicolon, TokenEOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Type, want[i])
		}
	}
}

func TestLexerEOFRepeats(t *testing.T) {
	l := NewLexer("x")
	if tok, _ := l.NextToken(); tok.Type != TokenIdent {
		t.Fatalf("got %s, want IDENT", tok.Type)
	}
	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("lex error after end of input: %v", err)
		}
		if tok.Type != TokenEOF {
			t.Fatalf("call %d after end: got %s, want EOF", i, tok.Type)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated string", `"never closed`},
		{"bare ampersand", "a & b"},
		{"bare pipe", "a | b"},
		{"unknown character", "a # b"},
		{"integer overflow", "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLexer(tt.input)
			for {
				tok, err := l.NextToken()
				if err != nil {
					if _, ok := err.(*LexError); !ok {
						t.Fatalf("got %T, want *LexError", err)
					}
					return
				}
				if tok.Type == TokenEOF {
					t.Fatal("expected a lex error, reached EOF")
				}
			}
		})
	}
}
