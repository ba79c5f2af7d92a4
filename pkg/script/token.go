// Package script implements the Tinker language pipeline: lexical analysis,
// recursive-descent parsing, and tree-walking evaluation of the resulting
// syntax tree.
package script

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Literals
	TokenNumber TokenType = iota // integer literal
	TokenString                  // string literal

	// Identifiers
	TokenIdent // identifier (variable name)

	// Operators and punctuation
	TokenAssign    // =
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenEq        // ==
	TokenNeq       // !=
	TokenLt        // <
	TokenGt        // >
	TokenLte       // <=
	TokenGte       // >=
	TokenAnd       // &&
	TokenOr        // ||
	TokenNot       // !
	TokenSemicolon // ;
	TokenComma     // ,
	TokenLParen    // (
	TokenRParen    // )
	TokenLBracket  // [
	TokenRBracket  // ]
	TokenLBrace    // {
	TokenRBrace    // }

	// Keywords
	TokenPrint  // print
	TokenTrue   // true
	TokenFalse  // false
	TokenIf     // if
	TokenElse   // else
	TokenElseIf // elseif
	TokenWhile  // while
	TokenFor    // for

	// Built-in function names. These are keywords too; the parser turns
	// them into FunctionCall nodes. Keep the range contiguous so
	// IsBuiltin stays a bounds check.
	TokenJoin      // join
	TokenSplit     // split
	TokenCount     // count
	TokenLength    // length
	TokenUppercase // uppercase
	TokenLowercase // lowercase
	TokenTrim      // trim
	TokenReplace   // replace
	TokenPush      // push
	TokenPop       // pop
	TokenFirst     // first
	TokenLast      // last
	TokenReadFile  // read_file
	TokenWriteFile // write_file

	// Special
	TokenEOF // end of input
)

// Token represents a single lexical token. Tokens are immutable once
// produced by the lexer.
type Token struct {
	Type    TokenType
	Value   string // raw spelling
	NumVal  int64  // parsed integer (for TokenNumber)
	TextVal string // literal contents (for TokenString, no escape processing)
	Pos     int    // byte offset in source
}

// keywords maps identifier spellings to their keyword token types.
// Unrecognized alphabetic words lex as TokenIdent.
var keywords = map[string]TokenType{
	"print":      TokenPrint,
	"true":       TokenTrue,
	"false":      TokenFalse,
	"if":         TokenIf,
	"else":       TokenElse,
	"elseif":     TokenElseIf,
	"while":      TokenWhile,
	"for":        TokenFor,
	"join":       TokenJoin,
	"split":      TokenSplit,
	"count":      TokenCount,
	"length":     TokenLength,
	"uppercase":  TokenUppercase,
	"lowercase":  TokenLowercase,
	"trim":       TokenTrim,
	"replace":    TokenReplace,
	"push":       TokenPush,
	"pop":        TokenPop,
	"first":      TokenFirst,
	"last":       TokenLast,
	"read_file":  TokenReadFile,
	"write_file": TokenWriteFile,
}

// IsBuiltin reports whether the token type names a built-in function.
func (t TokenType) IsBuiltin() bool {
	return t >= TokenJoin && t <= TokenWriteFile
}

// String returns a debug-friendly representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenIdent:
		return "IDENT"
	case TokenAssign:
		return "'='"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenStar:
		return "'*'"
	case TokenSlash:
		return "'/'"
	case TokenEq:
		return "'=='"
	case TokenNeq:
		return "'!='"
	case TokenLt:
		return "'<'"
	case TokenGt:
		return "'>'"
	case TokenLte:
		return "'<='"
	case TokenGte:
		return "'>='"
	case TokenAnd:
		return "'&&'"
	case TokenOr:
		return "'||'"
	case TokenNot:
		return "'!'"
	case TokenSemicolon:
		return "';'"
	case TokenComma:
		return "','"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	case TokenPrint:
		return "print"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenIf:
		return "if"
	case TokenElse:
		return "else"
	case TokenElseIf:
		return "elseif"
	case TokenWhile:
		return "while"
	case TokenFor:
		return "for"
	case TokenJoin:
		return "join"
	case TokenSplit:
		return "split"
	case TokenCount:
		return "count"
	case TokenLength:
		return "length"
	case TokenUppercase:
		return "uppercase"
	case TokenLowercase:
		return "lowercase"
	case TokenTrim:
		return "trim"
	case TokenReplace:
		return "replace"
	case TokenPush:
		return "push"
	case TokenPop:
		return "pop"
	case TokenFirst:
		return "first"
	case TokenLast:
		return "last"
	case TokenReadFile:
		return "read_file"
	case TokenWriteFile:
		return "write_file"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}
