package stdlib

import (
	"fmt"
	"strings"

	"github.com/tinkerlang/tinker/pkg/types"
)

// registerText registers the string built-ins.
func (r *Registry) registerText() {
	r.Register("join", textJoin)
	r.Register("split", textSplit)
	r.Register("uppercase", textUppercase)
	r.Register("lowercase", textLowercase)
	r.Register("trim", textTrim)
	r.Register("replace", textReplace)
}

// textJoin joins an array of text values with a separator:
// join(",", split("a,b,c", ",")) reconstructs "a,b,c".
func textJoin(args []types.Value) (types.Value, error) {
	if err := requireArgs("join", args, 2); err != nil {
		return types.Null, err
	}
	sep, err := textArg("join", args, 0)
	if err != nil {
		return types.Null, err
	}
	arr, err := arrayArg("join", args, 1)
	if err != nil {
		return types.Null, err
	}

	parts := make([]string, len(arr))
	for i, item := range arr {
		if item.Type() != types.TypeText {
			return types.Null, types.NewTypeError(
				fmt.Sprintf("join: element %d must be text, got %s", i, item.Type()))
		}
		parts[i] = item.AsText()
	}
	return types.NewText(strings.Join(parts, sep)), nil
}

func textSplit(args []types.Value) (types.Value, error) {
	if err := requireArgs("split", args, 2); err != nil {
		return types.Null, err
	}
	source, err := textArg("split", args, 0)
	if err != nil {
		return types.Null, err
	}
	sep, err := textArg("split", args, 1)
	if err != nil {
		return types.Null, err
	}

	parts := strings.Split(source, sep)
	result := make([]types.Value, len(parts))
	for i, p := range parts {
		result[i] = types.NewText(p)
	}
	return types.NewArray(result), nil
}

func textUppercase(args []types.Value) (types.Value, error) {
	if err := requireArgs("uppercase", args, 1); err != nil {
		return types.Null, err
	}
	s, err := textArg("uppercase", args, 0)
	if err != nil {
		return types.Null, err
	}
	return types.NewText(strings.ToUpper(s)), nil
}

func textLowercase(args []types.Value) (types.Value, error) {
	if err := requireArgs("lowercase", args, 1); err != nil {
		return types.Null, err
	}
	s, err := textArg("lowercase", args, 0)
	if err != nil {
		return types.Null, err
	}
	return types.NewText(strings.ToLower(s)), nil
}

func textTrim(args []types.Value) (types.Value, error) {
	if err := requireArgs("trim", args, 1); err != nil {
		return types.Null, err
	}
	s, err := textArg("trim", args, 0)
	if err != nil {
		return types.Null, err
	}
	return types.NewText(strings.TrimSpace(s)), nil
}

func textReplace(args []types.Value) (types.Value, error) {
	if err := requireArgs("replace", args, 3); err != nil {
		return types.Null, err
	}
	source, err := textArg("replace", args, 0)
	if err != nil {
		return types.Null, err
	}
	old, err := textArg("replace", args, 1)
	if err != nil {
		return types.Null, err
	}
	repl, err := textArg("replace", args, 2)
	if err != nil {
		return types.Null, err
	}
	return types.NewText(strings.ReplaceAll(source, old, repl)), nil
}
