// Package input validates the command-line arguments of a fill run.
//
// The expected argument vector is exactly three tokens:
//
//	argv[0]  program name (ignored)
//	argv[1]  --thread=single | --thread=multi
//	argv[2]  array length, a non-negative base-10 integer
package input

import (
	"fmt"
	"strconv"

	"github.com/arloliu/parfill/types"
)

const (
	// ArgCount is the number of tokens Parse accepts, program name included.
	ArgCount = 3

	// ThreadFlag is the name of the thread-selection flag.
	ThreadFlag = "--thread"
)

// Thread-selection tokens accepted in position 1.
const (
	SingleThreadToken = ThreadFlag + "=single"
	MultiThreadToken  = ThreadFlag + "=multi"
)

// Parse validates args and returns the fill configuration.
//
// Parameters:
//   - args: Argument vector including the program name
//
// Returns:
//   - types.FillConfig: Parsed mode and length
//   - error: *types.ValidationError (errors.Is(err, types.ErrValidation))
//
// Example:
//
//	cfg, err := input.Parse([]string{"parfill", "--thread=multi", "100"})
//	// cfg == types.FillConfig{Mode: types.ModeMultiThread, Length: 100}
func Parse(args []string) (types.FillConfig, error) {
	if args == nil {
		return types.FillConfig{}, invalid(types.ErrNilArgument, -1, "", nil)
	}
	if len(args) != ArgCount {
		return types.FillConfig{}, invalid(types.ErrMissingArgument, -1, "",
			fmt.Errorf("expected %d arguments, got %d", ArgCount, len(args)))
	}

	mode, err := parseThread(args[1])
	if err != nil {
		return types.FillConfig{}, err
	}

	length, err := parseLength(args[2])
	if err != nil {
		return types.FillConfig{}, err
	}

	return types.FillConfig{Mode: mode, Length: length}, nil
}

// ParseInto validates args and stores the result in dst.
//
// dst is written only when validation succeeds; on failure it keeps its
// previous value.
//
// Returns:
//   - error: *types.ValidationError, with Kind ErrNilArgument when dst is nil
func ParseInto(args []string, dst *types.FillConfig) error {
	if dst == nil {
		return invalid(types.ErrNilArgument, -1, "", nil)
	}

	cfg, err := Parse(args)
	if err != nil {
		return err
	}
	*dst = cfg

	return nil
}

func parseThread(tok string) (types.Mode, error) {
	switch tok {
	case "":
		return 0, invalid(types.ErrMissingArgument, 1, "", nil)
	case SingleThreadToken:
		return types.ModeSingleThread, nil
	case MultiThreadToken:
		return types.ModeMultiThread, nil
	default:
		return 0, invalid(types.ErrUnrecognizedMode, 1, tok, nil)
	}
}

func parseLength(tok string) (int, error) {
	if tok == "" {
		return 0, invalid(types.ErrMissingArgument, 2, "", nil)
	}
	// ParseUint rejects signs and whitespace; bitSize keeps the result within int.
	n, err := strconv.ParseUint(tok, 10, strconv.IntSize-1)
	if err != nil {
		return 0, invalid(types.ErrNonNumericLength, 2, tok, err)
	}

	return int(n), nil
}

func invalid(kind error, pos int, tok string, cause error) *types.ValidationError {
	return &types.ValidationError{Kind: kind, Position: pos, Token: tok, Err: cause}
}
