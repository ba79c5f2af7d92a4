// Package runtime wires the Tinker pipeline together: it owns the global
// variable environment and adapts it, with the built-in registry, into the
// evaluator's Scope.
package runtime

import (
	"fmt"

	"github.com/tinkerlang/tinker/pkg/types"
)

// Environment is the single flat mapping from variable name to value,
// global for the whole program. There are no nested scopes and no deletion.
// It is created once per run and touched only by the evaluator on the
// single execution thread, so it carries no locking.
type Environment struct {
	vars map[string]types.Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		vars: make(map[string]types.Value),
	}
}

// Get retrieves a binding. An unbound name is an evaluation error.
func (e *Environment) Get(name string) (types.Value, error) {
	v, ok := e.vars[name]
	if !ok {
		return types.Null, types.NewKeyError(fmt.Sprintf("variable '%s' is not defined", name))
	}
	return v, nil
}

// Set creates or overwrites a binding.
func (e *Environment) Set(name string, value types.Value) {
	e.vars[name] = value
}

// Exists reports whether a name is bound.
func (e *Environment) Exists(name string) bool {
	_, ok := e.vars[name]
	return ok
}

// Len returns the number of bindings.
func (e *Environment) Len() int {
	return len(e.vars)
}
