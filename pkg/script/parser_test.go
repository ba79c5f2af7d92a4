package script

import "testing"

// parse is a test helper running the full lex+parse pipeline.
func parse(t *testing.T, input string) *Program {
	t.Helper()
	p, err := NewParser(NewLexer(input))
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func TestParseAllStatementsKept(t *testing.T) {
	prog := parse(t, "a = 1; b = 2; print a;")
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].(*Assign); !ok {
		t.Errorf("statement 0: got %T, want *Assign", prog.Statements[0])
	}
	if _, ok := prog.Statements[2].(*Print); !ok {
		t.Errorf("statement 2: got %T, want *Print", prog.Statements[2])
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3).
	prog := parse(t, "1 + 2 * 3;")
	add, ok := prog.Statements[0].(*BinaryOp)
	if !ok || add.Op != TokenPlus {
		t.Fatalf("root: got %T, want + BinaryOp", prog.Statements[0])
	}
	mul, ok := add.Right.(*BinaryOp)
	if !ok || mul.Op != TokenStar {
		t.Fatalf("right child: got %T, want * BinaryOp", add.Right)
	}

	// (1 + 2) * 3 must parse as (1 + 2) * 3.
	prog = parse(t, "(1 + 2) * 3;")
	mul, ok = prog.Statements[0].(*BinaryOp)
	if !ok || mul.Op != TokenStar {
		t.Fatalf("root: got %T, want * BinaryOp", prog.Statements[0])
	}
	if inner, ok := mul.Left.(*BinaryOp); !ok || inner.Op != TokenPlus {
		t.Fatalf("left child: got %T, want + BinaryOp", mul.Left)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// 10 - 3 - 2 must parse as (10 - 3) - 2.
	prog := parse(t, "10 - 3 - 2;")
	outer, ok := prog.Statements[0].(*BinaryOp)
	if !ok || outer.Op != TokenMinus {
		t.Fatalf("root: got %T, want - BinaryOp", prog.Statements[0])
	}
	if _, ok := outer.Left.(*BinaryOp); !ok {
		t.Fatalf("left child: got %T, want nested BinaryOp", outer.Left)
	}
	if _, ok := outer.Right.(*NumberLiteral); !ok {
		t.Fatalf("right child: got %T, want NumberLiteral", outer.Right)
	}
}

func TestParseLogicalLadder(t *testing.T) {
	// a || b && c == d parses as a || (b && (c == d)).
	prog := parse(t, "a || b && c == d;")
	or, ok := prog.Statements[0].(*LogicalOp)
	if !ok || or.Op != TokenOr {
		t.Fatalf("root: got %T, want || LogicalOp", prog.Statements[0])
	}
	and, ok := or.Right.(*LogicalOp)
	if !ok || and.Op != TokenAnd {
		t.Fatalf("or right: got %T, want && LogicalOp", or.Right)
	}
	if cmp, ok := and.Right.(*Comparison); !ok || cmp.Op != TokenEq {
		t.Fatalf("and right: got %T, want == Comparison", and.Right)
	}
}

func TestParseEqualityBindsLooserThanRelational(t *testing.T) {
	// a < b == c < d parses as (a < b) == (c < d).
	prog := parse(t, "a < b == c < d;")
	eq, ok := prog.Statements[0].(*Comparison)
	if !ok || eq.Op != TokenEq {
		t.Fatalf("root: got %T, want == Comparison", prog.Statements[0])
	}
	if lt, ok := eq.Left.(*Comparison); !ok || lt.Op != TokenLt {
		t.Fatalf("left child: got %T, want < Comparison", eq.Left)
	}
}

func TestParseIfConstruct(t *testing.T) {
	prog := parse(t, `
		if a < 1 { print 1; }
		elseif a < 2 { print 2; }
		elseif a < 3 { print 3; }
		else { print 4; }
	`)
	node, ok := prog.Statements[0].(*If)
	if !ok {
		t.Fatalf("got %T, want *If", prog.Statements[0])
	}
	if len(node.ElseIfs) != 2 {
		t.Errorf("got %d elseif arms, want 2", len(node.ElseIfs))
	}
	if node.Else == nil || len(node.Else) != 1 {
		t.Errorf("else block: got %v", node.Else)
	}
	if len(node.Then) != 1 {
		t.Errorf("then block: got %d statements, want 1", len(node.Then))
	}
}

func TestParseIfWithoutElse(t *testing.T) {
	prog := parse(t, "if x == 1 { print x; }")
	node := prog.Statements[0].(*If)
	if node.Else != nil {
		t.Errorf("else block should be nil, got %v", node.Else)
	}
	if len(node.ElseIfs) != 0 {
		t.Errorf("got %d elseif arms, want 0", len(node.ElseIfs))
	}
}

func TestParseLoops(t *testing.T) {
	prog := parse(t, "while i < 3 { i = i + 1; }")
	w, ok := prog.Statements[0].(*While)
	if !ok {
		t.Fatalf("got %T, want *While", prog.Statements[0])
	}
	if len(w.Body) != 1 {
		t.Errorf("while body: got %d statements, want 1", len(w.Body))
	}

	prog = parse(t, "for i = 0; i < 3; i = i + 1 { print i; }")
	f, ok := prog.Statements[0].(*For)
	if !ok {
		t.Fatalf("got %T, want *For", prog.Statements[0])
	}
	if _, ok := f.Init.(*Assign); !ok {
		t.Errorf("for init: got %T, want *Assign", f.Init)
	}
	if _, ok := f.Update.(*Assign); !ok {
		t.Errorf("for update: got %T, want *Assign", f.Update)
	}
}

func TestParseArraysAndIndex(t *testing.T) {
	prog := parse(t, "[1, 2, 3][1];")
	idx, ok := prog.Statements[0].(*IndexAccess)
	if !ok {
		t.Fatalf("got %T, want *IndexAccess", prog.Statements[0])
	}
	arr, ok := idx.Array.(*ArrayLiteral)
	if !ok {
		t.Fatalf("array: got %T, want *ArrayLiteral", idx.Array)
	}
	if len(arr.Elements) != 3 {
		t.Errorf("got %d elements, want 3", len(arr.Elements))
	}

	// Index chains are postfix and left-nested.
	prog = parse(t, "m[0][1];")
	outer := prog.Statements[0].(*IndexAccess)
	if _, ok := outer.Array.(*IndexAccess); !ok {
		t.Errorf("chained index: got %T, want *IndexAccess", outer.Array)
	}
}

func TestParseCalls(t *testing.T) {
	prog := parse(t, `join(",", split("a,b", ","));`)
	call, ok := prog.Statements[0].(*FunctionCall)
	if !ok {
		t.Fatalf("got %T, want *FunctionCall", prog.Statements[0])
	}
	if call.Name != "join" || len(call.Args) != 2 {
		t.Fatalf("got %s/%d args, want join/2", call.Name, len(call.Args))
	}
	if inner, ok := call.Args[1].(*FunctionCall); !ok || inner.Name != "split" {
		t.Errorf("nested call: got %+v", call.Args[1])
	}

	// Unknown names parse as calls too; they fail at evaluation.
	prog = parse(t, "mystery(1);")
	call = prog.Statements[0].(*FunctionCall)
	if call.Name != "mystery" {
		t.Errorf("got name %q, want mystery", call.Name)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing semicolon", "print 1"},
		{"missing close paren", "print (1 + 2;"},
		{"missing block", "if true print 1;"},
		{"unterminated block", "while true { print 1;"},
		{"missing for update", "for i = 0; i < 3 { }"},
		{"dangling operator", "1 + ;"},
		{"lone elseif", "elseif x { }"},
		{"missing comma in array", "[1 2];"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser(NewLexer(tt.input))
			if err != nil {
				t.Fatalf("lex error: %v", err)
			}
			if _, err := p.Parse(); err == nil {
				t.Fatal("expected a parse error, got none")
			} else if _, ok := err.(*ParseError); !ok {
				t.Fatalf("got %T, want *ParseError", err)
			}
		})
	}
}
