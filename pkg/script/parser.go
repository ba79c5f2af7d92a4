package script

// Parser is a recursive descent parser for Tinker programs. It consumes
// tokens one at a time from the lexer, keeping only the current and
// look-ahead token, and builds the syntax tree bottom-up. Parsing is not
// resumable: the first error aborts the parse.
type Parser struct {
	lexer *Lexer
	cur   Token
	peek  Token
}

// NewParser creates a parser pulling from the given lexer. It primes the
// current and look-ahead tokens, so a lex error at the start of input
// surfaces here.
func NewParser(l *Lexer) (*Parser, error) {
	p := &Parser{lexer: l}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse consumes the full token stream and returns the Program node.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	for p.cur.Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// advance pulls the next token; lex errors propagate to the caller.
func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.cur = p.peek
	p.peek = tok
	return nil
}

// expect consumes a token of the given type or fails naming it.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.cur
	if tok.Type != tt {
		return tok, &ParseError{Pos: tok.Pos, Got: tok.Type, Expected: tt.String()}
	}
	if err := p.advance(); err != nil {
		return tok, err
	}
	return tok, nil
}

// parseStatement parses one statement: `print EXPR;`, `NAME = EXPR;`, an
// if/while/for construct, or a bare expression statement terminated by `;`.
func (p *Parser) parseStatement() (Node, error) {
	switch p.cur.Type {
	case TokenPrint:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}
		return &Print{Value: expr}, nil

	case TokenIf:
		return p.parseIf()

	case TokenWhile:
		return p.parseWhile()

	case TokenFor:
		return p.parseFor()

	case TokenIdent:
		if p.peek.Type == TokenAssign {
			assign, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenSemicolon); err != nil {
				return nil, err
			}
			return assign, nil
		}
	}

	// Bare expression statement.
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseAssign parses `NAME = EXPR` without the trailing semicolon, so the
// for-loop header can reuse it.
func (p *Parser) parseAssign() (*Assign, error) {
	name, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Assign{Name: name.Value, Value: expr}, nil
}

// parseBlock parses `{ statements... }`.
func (p *Parser) parseBlock() ([]Node, error) {
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	var stmts []Node
	for p.cur.Type != TokenRBrace {
		if p.cur.Type == TokenEOF {
			return nil, &ParseError{Pos: p.cur.Pos, Got: TokenEOF, Expected: TokenRBrace.String()}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return stmts, nil
}

// parseIf parses `if cond { ... }` followed by zero or more `elseif` arms
// and an optional `else`. The arms form a flat list, not nested chains.
func (p *Parser) parseIf() (Node, error) {
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	node := &If{Condition: cond, Then: then}

	for p.cur.Type == TokenElseIf {
		if err := p.advance(); err != nil {
			return nil, err
		}
		armCond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		armBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.ElseIfs = append(node.ElseIfs, ElseIfClause{Condition: armCond, Block: armBlock})
	}

	if p.cur.Type == TokenElse {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = elseBlock
	}

	return node, nil
}

// parseWhile parses `while cond { ... }`.
func (p *Parser) parseWhile() (Node, error) {
	if err := p.advance(); err != nil { // consume 'while'
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &While{Condition: cond, Body: body}, nil
}

// parseFor parses `for init; cond; update { ... }` where init and update
// are assignments.
func (p *Parser) parseFor() (Node, error) {
	if err := p.advance(); err != nil { // consume 'for'
		return nil, err
	}
	init, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	update, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &For{Init: init, Condition: cond, Update: update, Body: body}, nil
}

// parseExpression is the entry point for the precedence ladder, lowest to
// highest:
//
//	||
//	&&
//	==, !=
//	<, >, <=, >=
//	+, -
//	*, /
//	unary !
//	postfix index [...]
//	primary
//
// All binary layers are left-associative.
func (p *Parser) parseExpression() (Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &LogicalOp{Op: TokenOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &LogicalOp{Op: TokenAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseEquality() (Node, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenEq || p.cur.Type == TokenNeq {
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &Comparison{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseRelational() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenLt || p.cur.Type == TokenGt ||
		p.cur.Type == TokenLte || p.cur.Type == TokenGte {
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &Comparison{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenPlus || p.cur.Type == TokenMinus {
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenStar || p.cur.Type == TokenSlash {
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary handles logical not. There is no unary minus in the language.
func (p *Parser) parseUnary() (Node, error) {
	if p.cur.Type == TokenNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Not{Operand: operand}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenLBracket {
		if err := p.advance(); err != nil {
			return nil, err
		}
		index, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRBracket); err != nil {
			return nil, err
		}
		node = &IndexAccess{Array: node, Index: index}
	}
	return node, nil
}

func (p *Parser) parsePrimary() (Node, error) {
	tok := p.cur

	switch {
	case tok.Type == TokenNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NumberLiteral{Value: tok.NumVal}, nil

	case tok.Type == TokenString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &StringLiteral{Value: tok.TextVal}, nil

	case tok.Type == TokenTrue, tok.Type == TokenFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BooleanLiteral{Value: tok.Type == TokenTrue}, nil

	case tok.Type == TokenIdent:
		if err := p.advance(); err != nil {
			return nil, err
		}
		// An identifier followed by '(' parses as a call so the unknown
		// function name surfaces during evaluation.
		if p.cur.Type == TokenLParen {
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			return &FunctionCall{Name: tok.Value, Args: args}, nil
		}
		return &Identifier{Name: tok.Value}, nil

	case tok.Type.IsBuiltin():
		if err := p.advance(); err != nil {
			return nil, err
		}
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return &FunctionCall{Name: tok.Value, Args: args}, nil

	case tok.Type == TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil

	case tok.Type == TokenLBracket:
		return p.parseArrayLiteral()
	}

	return nil, &ParseError{Pos: tok.Pos, Got: tok.Type, Expected: "expression"}
}

// parseArrayLiteral parses `[expr, expr, ...]`.
func (p *Parser) parseArrayLiteral() (Node, error) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	var elements []Node
	for p.cur.Type != TokenRBracket {
		if len(elements) > 0 {
			if _, err := p.expect(TokenComma); err != nil {
				return nil, err
			}
		}
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
	}
	if _, err := p.expect(TokenRBracket); err != nil {
		return nil, err
	}
	return &ArrayLiteral{Elements: elements}, nil
}

// parseArgList parses `(expr, expr, ...)`.
func (p *Parser) parseArgList() ([]Node, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	var args []Node
	for p.cur.Type != TokenRParen {
		if len(args) > 0 {
			if _, err := p.expect(TokenComma); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return args, nil
}
