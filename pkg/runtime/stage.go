package runtime

import (
	"errors"

	"github.com/tinkerlang/tinker/pkg/script"
	"github.com/tinkerlang/tinker/pkg/types"
)

// Stage names the pipeline stage an error came from: "lex", "parse", or
// "eval". Unknown errors report as "eval" since only evaluation can surface
// wrapped collaborator failures.
func Stage(err error) string {
	var lexErr *script.LexError
	if errors.As(err, &lexErr) {
		return "lex"
	}
	var parseErr *script.ParseError
	if errors.As(err, &parseErr) {
		return "parse"
	}
	var evalErr *types.EvalError
	if errors.As(err, &evalErr) {
		return "eval"
	}
	return "eval"
}
