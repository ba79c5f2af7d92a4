package script

// Node is the interface for all syntax tree nodes. Nodes are built
// bottom-up by the parser and read-only afterwards; the evaluator shares
// references into the tree while recursing and never mutates it.
type Node interface {
	nodeType() string
}

// Program is the root node: an ordered sequence of statements.
type Program struct {
	Statements []Node
}

func (n *Program) nodeType() string { return "Program" }

// NumberLiteral represents an integer literal.
type NumberLiteral struct {
	Value int64
}

func (n *NumberLiteral) nodeType() string { return "NumberLiteral" }

// StringLiteral represents a string literal.
type StringLiteral struct {
	Value string
}

func (n *StringLiteral) nodeType() string { return "StringLiteral" }

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	Value bool
}

func (n *BooleanLiteral) nodeType() string { return "BooleanLiteral" }

// Identifier represents a variable reference.
type Identifier struct {
	Name string
}

func (n *Identifier) nodeType() string { return "Identifier" }

// Assign represents `name = expr;`.
type Assign struct {
	Name  string
	Value Node
}

func (n *Assign) nodeType() string { return "Assign" }

// Print represents `print expr;`.
type Print struct {
	Value Node
}

func (n *Print) nodeType() string { return "Print" }

// BinaryOp represents an arithmetic operation (+, -, *, /).
type BinaryOp struct {
	Op    TokenType
	Left  Node
	Right Node
}

func (n *BinaryOp) nodeType() string { return "BinaryOp" }

// Comparison represents ==, !=, <, >, <=, >=.
type Comparison struct {
	Op    TokenType
	Left  Node
	Right Node
}

func (n *Comparison) nodeType() string { return "Comparison" }

// LogicalOp represents && or ||, evaluated with short-circuiting.
type LogicalOp struct {
	Op    TokenType
	Left  Node
	Right Node
}

func (n *LogicalOp) nodeType() string { return "LogicalOp" }

// Not represents `!expr`.
type Not struct {
	Operand Node
}

func (n *Not) nodeType() string { return "Not" }

// ArrayLiteral represents `[e1, e2, ...]`.
type ArrayLiteral struct {
	Elements []Node
}

func (n *ArrayLiteral) nodeType() string { return "ArrayLiteral" }

// IndexAccess represents `expr[index]`.
type IndexAccess struct {
	Array Node
	Index Node
}

func (n *IndexAccess) nodeType() string { return "IndexAccess" }

// FunctionCall represents `name(args...)`. The evaluator dispatches the
// name against the built-in registry; an unknown name is an evaluation
// error, not a parse error.
type FunctionCall struct {
	Name string
	Args []Node
}

func (n *FunctionCall) nodeType() string { return "FunctionCall" }

// ElseIfClause is one `elseif cond { block }` arm of an If.
type ElseIfClause struct {
	Condition Node
	Block     []Node
}

// If represents the flat construct
// `if cond { ... } elseif cond { ... } ... else { ... }`.
// ElseIfs may be empty; Else is nil when absent.
type If struct {
	Condition Node
	Then      []Node
	ElseIfs   []ElseIfClause
	Else      []Node
}

func (n *If) nodeType() string { return "If" }

// While represents `while cond { block }`.
type While struct {
	Condition Node
	Body      []Node
}

func (n *While) nodeType() string { return "While" }

// For represents `for init; cond; update { block }`. Init runs once before
// the loop; Update runs after each body execution.
type For struct {
	Init      Node
	Condition Node
	Update    Node
	Body      []Node
}

func (n *For) nodeType() string { return "For" }
