package runtime

import (
	"io"

	"github.com/tinkerlang/tinker/pkg/script"
	"github.com/tinkerlang/tinker/pkg/stdlib"
	"github.com/tinkerlang/tinker/pkg/types"
)

// FunctionRegistry provides built-in dispatch for evaluation.
type FunctionRegistry interface {
	// CallFunction calls a named built-in with the given arguments.
	CallFunction(name string, args []types.Value) (types.Value, error)
}

// ScopeAdapter adapts an Environment plus a FunctionRegistry to the
// script.Scope interface.
type ScopeAdapter struct {
	env   *Environment
	funcs FunctionRegistry
}

// NewScopeAdapter creates a scope adapter for evaluation.
func NewScopeAdapter(env *Environment, funcs FunctionRegistry) *ScopeAdapter {
	return &ScopeAdapter{env: env, funcs: funcs}
}

// GetVariable implements script.Scope.
func (a *ScopeAdapter) GetVariable(name string) (types.Value, error) {
	return a.env.Get(name)
}

// SetVariable implements script.Scope.
func (a *ScopeAdapter) SetVariable(name string, value types.Value) {
	a.env.Set(name, value)
}

// CallFunction implements script.Scope.
func (a *ScopeAdapter) CallFunction(name string, args []types.Value) (types.Value, error) {
	return a.funcs.CallFunction(name, args)
}

// Runner executes programs against one Environment. The environment lives
// for the lifetime of the runner; each Run call shares it, so the CLI uses
// one runner per script and the HTTP surface one per request.
type Runner struct {
	env   *Environment
	funcs FunctionRegistry
	out   io.Writer
}

// NewRunner creates a runner writing print output to out, with a fresh
// environment and the full built-in registry.
func NewRunner(out io.Writer) *Runner {
	return &Runner{
		env:   NewEnvironment(),
		funcs: stdlib.NewRegistry(),
		out:   out,
	}
}

// Env exposes the runner's environment for inspection.
func (r *Runner) Env() *Environment {
	return r.env
}

// Run lexes, parses, and evaluates one program. The stage errors stay
// distinct: *script.LexError and *script.ParseError abort before any
// evaluation; a *types.EvalError halts execution at the failing statement,
// after the side effects of earlier statements.
func (r *Runner) Run(source string) (types.Value, error) {
	parser, err := script.NewParser(script.NewLexer(source))
	if err != nil {
		return types.Null, err
	}
	program, err := parser.Parse()
	if err != nil {
		return types.Null, err
	}
	eval := script.NewEvaluator(NewScopeAdapter(r.env, r.funcs), r.out)
	return eval.Eval(program)
}

// Run executes one source text with a fresh environment, writing print
// output to out.
func Run(source string, out io.Writer) (types.Value, error) {
	return NewRunner(out).Run(source)
}
