package stdlib

import (
	"fmt"
	"os"

	"github.com/tinkerlang/tinker/pkg/types"
)

// registerFile registers the file built-ins. I/O blocks the calling thread
// and failures surface as evaluation errors, never as a host crash.
func (r *Registry) registerFile() {
	r.Register("read_file", fileRead)
	r.Register("write_file", fileWrite)
}

func fileRead(args []types.Value) (types.Value, error) {
	if err := requireArgs("read_file", args, 1); err != nil {
		return types.Null, err
	}
	path, err := textArg("read_file", args, 0)
	if err != nil {
		return types.Null, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.Null, types.NewIOError(fmt.Sprintf("read_file: %v", err))
	}
	return types.NewText(string(data)), nil
}

// fileWrite overwrites the target file and returns true on success.
func fileWrite(args []types.Value) (types.Value, error) {
	if err := requireArgs("write_file", args, 2); err != nil {
		return types.Null, err
	}
	path, err := textArg("write_file", args, 0)
	if err != nil {
		return types.Null, err
	}
	data, err := textArg("write_file", args, 1)
	if err != nil {
		return types.Null, err
	}

	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return types.Null, types.NewIOError(fmt.Sprintf("write_file: %v", err))
	}
	return types.NewBool(true), nil
}
