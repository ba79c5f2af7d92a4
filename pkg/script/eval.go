package script

import (
	"fmt"
	"io"

	"github.com/tinkerlang/tinker/pkg/types"
)

// Scope provides variable storage and built-in function dispatch for
// evaluation. The evaluator never reaches around it: every identifier read,
// assignment, and call goes through this interface.
type Scope interface {
	// GetVariable returns the value bound to a name.
	GetVariable(name string) (types.Value, error)

	// SetVariable creates or overwrites a binding.
	SetVariable(name string, value types.Value)

	// CallFunction dispatches a built-in by name with evaluated arguments.
	CallFunction(name string, args []types.Value) (types.Value, error)
}

// Evaluator walks a syntax tree against a shared Scope, writing print
// output to Out. It holds no other state; the tree is read-only.
type Evaluator struct {
	scope Scope
	out   io.Writer
}

// NewEvaluator creates an evaluator over the given scope and output sink.
func NewEvaluator(scope Scope, out io.Writer) *Evaluator {
	return &Evaluator{scope: scope, out: out}
}

// Eval interprets one node, returning its result value. Purely
// side-effecting constructs yield types.Null.
func (e *Evaluator) Eval(node Node) (types.Value, error) {
	switch n := node.(type) {
	case *Program:
		return e.evalSequence(n.Statements)
	case *NumberLiteral:
		return types.NewNumber(n.Value), nil
	case *StringLiteral:
		return types.NewText(n.Value), nil
	case *BooleanLiteral:
		return types.NewBool(n.Value), nil
	case *Identifier:
		return e.scope.GetVariable(n.Name)
	case *Assign:
		return e.evalAssign(n)
	case *Print:
		return e.evalPrint(n)
	case *BinaryOp:
		return e.evalBinary(n)
	case *Comparison:
		return e.evalComparison(n)
	case *LogicalOp:
		return e.evalLogical(n)
	case *Not:
		return e.evalNot(n)
	case *ArrayLiteral:
		return e.evalArray(n)
	case *IndexAccess:
		return e.evalIndex(n)
	case *FunctionCall:
		return e.evalCall(n)
	case *If:
		return e.evalIf(n)
	case *While:
		return e.evalWhile(n)
	case *For:
		return e.evalFor(n)
	default:
		return types.Null, fmt.Errorf("unsupported syntax node type: %T", node)
	}
}

// evalSequence runs statements in order; its value is the value of the last
// statement, or null for an empty sequence.
func (e *Evaluator) evalSequence(stmts []Node) (types.Value, error) {
	result := types.Null
	for _, stmt := range stmts {
		v, err := e.Eval(stmt)
		if err != nil {
			return types.Null, err
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) evalAssign(n *Assign) (types.Value, error) {
	value, err := e.Eval(n.Value)
	if err != nil {
		return types.Null, err
	}
	e.scope.SetVariable(n.Name, value)
	return value, nil
}

func (e *Evaluator) evalPrint(n *Print) (types.Value, error) {
	value, err := e.Eval(n.Value)
	if err != nil {
		return types.Null, err
	}
	fmt.Fprintln(e.out, value.String())
	return types.Null, nil
}

func (e *Evaluator) evalBinary(n *BinaryOp) (types.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return types.Null, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return types.Null, err
	}

	if left.Type() != types.TypeNumber || right.Type() != types.TypeNumber {
		return types.Null, types.NewTypeError(
			fmt.Sprintf("unsupported operand types for %s: %s and %s", n.Op, left.Type(), right.Type()))
	}

	a, b := left.AsNumber(), right.AsNumber()
	switch n.Op {
	case TokenPlus:
		return types.NewNumber(a + b), nil
	case TokenMinus:
		return types.NewNumber(a - b), nil
	case TokenStar:
		return types.NewNumber(a * b), nil
	case TokenSlash:
		if b == 0 {
			return types.Null, types.NewZeroDivisionError()
		}
		// Go integer division truncates toward zero, matching the
		// language's division rule.
		return types.NewNumber(a / b), nil
	default:
		return types.Null, fmt.Errorf("unsupported binary operator: %s", n.Op)
	}
}

func (e *Evaluator) evalComparison(n *Comparison) (types.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return types.Null, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return types.Null, err
	}

	if left.Type() == types.TypeNumber && right.Type() == types.TypeNumber {
		a, b := left.AsNumber(), right.AsNumber()
		switch n.Op {
		case TokenEq:
			return types.NewBool(a == b), nil
		case TokenNeq:
			return types.NewBool(a != b), nil
		case TokenLt:
			return types.NewBool(a < b), nil
		case TokenGt:
			return types.NewBool(a > b), nil
		case TokenLte:
			return types.NewBool(a <= b), nil
		case TokenGte:
			return types.NewBool(a >= b), nil
		}
	}

	// Text and boolean operands support equality and inequality only.
	sameEquatable := (left.Type() == types.TypeText && right.Type() == types.TypeText) ||
		(left.Type() == types.TypeBool && right.Type() == types.TypeBool)
	if sameEquatable && (n.Op == TokenEq || n.Op == TokenNeq) {
		eq := left.Equal(right)
		if n.Op == TokenNeq {
			eq = !eq
		}
		return types.NewBool(eq), nil
	}

	return types.Null, types.NewTypeError(
		fmt.Sprintf("cannot compare %s and %s with %s", left.Type(), right.Type(), n.Op))
}

// evalLogical short-circuits: a true left operand of || and a false left
// operand of && decide the result without evaluating the right side.
func (e *Evaluator) evalLogical(n *LogicalOp) (types.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return types.Null, err
	}
	if left.Type() != types.TypeBool {
		return types.Null, types.NewTypeError(
			fmt.Sprintf("left operand of %s must be boolean, got %s", n.Op, left.Type()))
	}

	if n.Op == TokenOr && left.AsBool() {
		return types.NewBool(true), nil
	}
	if n.Op == TokenAnd && !left.AsBool() {
		return types.NewBool(false), nil
	}

	right, err := e.Eval(n.Right)
	if err != nil {
		return types.Null, err
	}
	if right.Type() != types.TypeBool {
		return types.Null, types.NewTypeError(
			fmt.Sprintf("right operand of %s must be boolean, got %s", n.Op, right.Type()))
	}
	return right, nil
}

func (e *Evaluator) evalNot(n *Not) (types.Value, error) {
	operand, err := e.Eval(n.Operand)
	if err != nil {
		return types.Null, err
	}
	if operand.Type() != types.TypeBool {
		return types.Null, types.NewTypeError(
			fmt.Sprintf("operand of ! must be boolean, got %s", operand.Type()))
	}
	return types.NewBool(!operand.AsBool()), nil
}

// evalArray fully evaluates every element before the array value exists.
func (e *Evaluator) evalArray(n *ArrayLiteral) (types.Value, error) {
	elements := make([]types.Value, len(n.Elements))
	for i, elem := range n.Elements {
		v, err := e.Eval(elem)
		if err != nil {
			return types.Null, err
		}
		elements[i] = v
	}
	return types.NewArray(elements), nil
}

func (e *Evaluator) evalIndex(n *IndexAccess) (types.Value, error) {
	obj, err := e.Eval(n.Array)
	if err != nil {
		return types.Null, err
	}
	idx, err := e.Eval(n.Index)
	if err != nil {
		return types.Null, err
	}

	if obj.Type() != types.TypeArray {
		return types.Null, types.NewTypeError(
			fmt.Sprintf("cannot index %s", obj.Type()))
	}
	if idx.Type() != types.TypeNumber {
		return types.Null, types.NewTypeError(
			fmt.Sprintf("array index must be a number, got %s", idx.Type()))
	}

	arr := obj.AsArray()
	i := idx.AsNumber()
	if i < 0 || i >= int64(len(arr)) {
		return types.Null, types.NewIndexError(
			fmt.Sprintf("array index %d out of range (length %d)", i, len(arr)))
	}
	return arr[i], nil
}

func (e *Evaluator) evalCall(n *FunctionCall) (types.Value, error) {
	args := make([]types.Value, len(n.Args))
	for i, arg := range n.Args {
		v, err := e.Eval(arg)
		if err != nil {
			return types.Null, err
		}
		args[i] = v
	}
	return e.scope.CallFunction(n.Name, args)
}

// evalIf runs the first block whose guard is true: the if-condition first,
// then the elseif guards in source order, then the else block if present.
func (e *Evaluator) evalIf(n *If) (types.Value, error) {
	taken, err := e.evalCondition(n.Condition)
	if err != nil {
		return types.Null, err
	}
	if taken {
		return e.evalSequence(n.Then)
	}
	for _, arm := range n.ElseIfs {
		taken, err := e.evalCondition(arm.Condition)
		if err != nil {
			return types.Null, err
		}
		if taken {
			return e.evalSequence(arm.Block)
		}
	}
	if n.Else != nil {
		return e.evalSequence(n.Else)
	}
	return types.Null, nil
}

// evalCondition evaluates a guard expression, which must reduce to a
// boolean.
func (e *Evaluator) evalCondition(cond Node) (bool, error) {
	v, err := e.Eval(cond)
	if err != nil {
		return false, err
	}
	if v.Type() != types.TypeBool {
		return false, types.NewTypeError(
			fmt.Sprintf("condition must be boolean, got %s", v.Type()))
	}
	return v.AsBool(), nil
}

// evalWhile re-evaluates the condition before each iteration. There is no
// break or iteration bound: an always-true condition loops forever.
func (e *Evaluator) evalWhile(n *While) (types.Value, error) {
	for {
		keep, err := e.evalCondition(n.Condition)
		if err != nil {
			return types.Null, err
		}
		if !keep {
			return types.Null, nil
		}
		if _, err := e.evalSequence(n.Body); err != nil {
			return types.Null, err
		}
	}
}

// evalFor runs the init statement once, then loops like while with the
// update statement after each body execution.
func (e *Evaluator) evalFor(n *For) (types.Value, error) {
	if _, err := e.Eval(n.Init); err != nil {
		return types.Null, err
	}
	for {
		keep, err := e.evalCondition(n.Condition)
		if err != nil {
			return types.Null, err
		}
		if !keep {
			return types.Null, nil
		}
		if _, err := e.evalSequence(n.Body); err != nil {
			return types.Null, err
		}
		if _, err := e.Eval(n.Update); err != nil {
			return types.Null, err
		}
	}
}
