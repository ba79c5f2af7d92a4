package stdlib

import (
	"fmt"

	"github.com/tinkerlang/tinker/pkg/types"
)

// registerList registers the array built-ins. count and length accept both
// text and arrays and are two names over one implementation.
func (r *Registry) registerList() {
	r.Register("count", listCount("count"))
	r.Register("length", listCount("length"))
	r.Register("push", listPush)
	r.Register("pop", listPop)
	r.Register("first", listFirst)
	r.Register("last", listLast)
}

func listCount(name string) BuiltinFunc {
	return func(args []types.Value) (types.Value, error) {
		if err := requireArgs(name, args, 1); err != nil {
			return types.Null, err
		}
		switch args[0].Type() {
		case types.TypeText:
			return types.NewNumber(int64(len(args[0].AsText()))), nil
		case types.TypeArray:
			return types.NewNumber(int64(len(args[0].AsArray()))), nil
		default:
			return types.Null, types.NewTypeError(
				fmt.Sprintf("%s: argument must be text or an array, got %s", name, args[0].Type()))
		}
	}
}

// listPush returns a new array with the value appended; the input array is
// never mutated.
func listPush(args []types.Value) (types.Value, error) {
	if err := requireArgs("push", args, 2); err != nil {
		return types.Null, err
	}
	arr, err := arrayArg("push", args, 0)
	if err != nil {
		return types.Null, err
	}

	result := make([]types.Value, 0, len(arr)+1)
	result = append(result, arr...)
	result = append(result, args[1])
	return types.NewArray(result), nil
}

// listPop returns a new array without the last element.
func listPop(args []types.Value) (types.Value, error) {
	if err := requireArgs("pop", args, 1); err != nil {
		return types.Null, err
	}
	arr, err := arrayArg("pop", args, 0)
	if err != nil {
		return types.Null, err
	}
	if len(arr) == 0 {
		return types.Null, types.NewIndexError("pop: cannot pop from an empty array")
	}

	result := make([]types.Value, len(arr)-1)
	copy(result, arr[:len(arr)-1])
	return types.NewArray(result), nil
}

func listFirst(args []types.Value) (types.Value, error) {
	if err := requireArgs("first", args, 1); err != nil {
		return types.Null, err
	}
	arr, err := arrayArg("first", args, 0)
	if err != nil {
		return types.Null, err
	}
	if len(arr) == 0 {
		return types.Null, types.NewIndexError("first: empty array has no first element")
	}
	return arr[0], nil
}

func listLast(args []types.Value) (types.Value, error) {
	if err := requireArgs("last", args, 1); err != nil {
		return types.Null, err
	}
	arr, err := arrayArg("last", args, 0)
	if err != nil {
		return types.Null, err
	}
	if len(arr) == 0 {
		return types.Null, types.NewIndexError("last: empty array has no last element")
	}
	return arr[len(arr)-1], nil
}
