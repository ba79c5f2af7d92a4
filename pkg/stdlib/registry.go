// Package stdlib implements the fixed Tinker built-in function library.
package stdlib

import (
	"fmt"

	"github.com/tinkerlang/tinker/pkg/types"
)

// BuiltinFunc is a built-in function signature.
type BuiltinFunc func(args []types.Value) (types.Value, error)

// Registry holds all built-in functions and dispatches calls by name.
type Registry struct {
	funcs map[string]BuiltinFunc
}

// NewRegistry creates a registry with every built-in registered.
func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]BuiltinFunc),
	}
	r.registerText()
	r.registerList()
	r.registerFile()
	return r
}

// CallFunction dispatches a built-in by name. An unknown name is an
// evaluation error.
func (r *Registry) CallFunction(name string, args []types.Value) (types.Value, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return types.Null, types.NewFunctionError(fmt.Sprintf("unknown function '%s'", name))
	}
	return fn(args)
}

// Register adds a function to the registry.
func (r *Registry) Register(name string, fn BuiltinFunc) {
	r.funcs[name] = fn
}

// requireArgs checks the exact argument count for a built-in.
func requireArgs(name string, args []types.Value, n int) error {
	if len(args) != n {
		return types.NewValueError(
			fmt.Sprintf("%s expects %d argument(s), got %d", name, n, len(args)))
	}
	return nil
}

// textArg extracts a text argument, naming the built-in and position on
// mismatch.
func textArg(name string, args []types.Value, i int) (string, error) {
	if args[i].Type() != types.TypeText {
		return "", types.NewTypeError(
			fmt.Sprintf("%s: argument %d must be text, got %s", name, i+1, args[i].Type()))
	}
	return args[i].AsText(), nil
}

// arrayArg extracts an array argument, naming the built-in and position on
// mismatch.
func arrayArg(name string, args []types.Value, i int) ([]types.Value, error) {
	if args[i].Type() != types.TypeArray {
		return nil, types.NewTypeError(
			fmt.Sprintf("%s: argument %d must be an array, got %s", name, i+1, args[i].Type()))
	}
	return args[i].AsArray(), nil
}
