package types

import (
	"fmt"
	"strings"
)

// Error tag constants classifying evaluation failures.
const (
	TagTypeError         = "TypeError"
	TagValueError        = "ValueError"
	TagKeyError          = "KeyError"
	TagIndexError        = "IndexError"
	TagZeroDivisionError = "ZeroDivisionError"
	TagIOError           = "IOError"
	TagFunctionError     = "FunctionError"
)

// EvalError represents a runtime semantic violation: type mismatch, unbound
// identifier, bad arity, out-of-bounds access, division by zero, unknown
// built-in, or an underlying I/O failure surfaced by a file built-in.
type EvalError struct {
	Message string
	Tags    []string
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Tags, ","), e.Message)
}

// HasTag returns true if the error carries the specified tag.
func (e *EvalError) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Common error constructors.

// NewTypeError creates a TypeError.
func NewTypeError(msg string) *EvalError {
	return &EvalError{Message: msg, Tags: []string{TagTypeError}}
}

// NewValueError creates a ValueError (bad arity, bad argument value).
func NewValueError(msg string) *EvalError {
	return &EvalError{Message: msg, Tags: []string{TagValueError}}
}

// NewKeyError creates a KeyError (unbound identifier).
func NewKeyError(msg string) *EvalError {
	return &EvalError{Message: msg, Tags: []string{TagKeyError}}
}

// NewIndexError creates an IndexError.
func NewIndexError(msg string) *EvalError {
	return &EvalError{Message: msg, Tags: []string{TagIndexError}}
}

// NewZeroDivisionError creates a ZeroDivisionError.
func NewZeroDivisionError() *EvalError {
	return &EvalError{Message: "division by zero", Tags: []string{TagZeroDivisionError}}
}

// NewIOError wraps an underlying I/O failure from a file built-in.
func NewIOError(msg string) *EvalError {
	return &EvalError{Message: msg, Tags: []string{TagIOError}}
}

// NewFunctionError creates a FunctionError (unknown built-in name).
func NewFunctionError(msg string) *EvalError {
	return &EvalError{Message: msg, Tags: []string{TagFunctionError}}
}
