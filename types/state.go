package types

import (
	"fmt"
	"strings"
)

// Mode selects how a buffer is filled.
type Mode int

const (
	// ModeSingleThread fills the buffer in ascending order on the calling goroutine.
	ModeSingleThread Mode = iota

	// ModeMultiThread splits the buffer into partitions filled by concurrent workers.
	ModeMultiThread
)

// String returns the command-line spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSingleThread:
		return "single"
	case ModeMultiThread:
		return "multi"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name ("single" or "multi") into a Mode.
//
// Matching is case-insensitive and ignores surrounding whitespace.
//
// Returns:
//   - Mode: Parsed mode
//   - error: ErrUnrecognizedMode if the name is not known
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return ModeSingleThread, nil
	case "multi":
		return ModeMultiThread, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeSingleThread && m != ModeMultiThread {
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedMode, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// TaskState represents the lifecycle state of one worker task.
//
// Tasks progress as:
//
//	TaskSpawned → TaskRunning → TaskCompleted | TaskFailed
type TaskState int

const (
	// TaskSpawned indicates the task is bound to its partition but has not started.
	TaskSpawned TaskState = iota

	// TaskRunning indicates the task is writing its partition.
	TaskRunning

	// TaskCompleted indicates every index of the partition was written.
	TaskCompleted

	// TaskFailed indicates the task stopped early with an error.
	TaskFailed
)

// String returns the string representation of the task state.
func (s TaskState) String() string {
	switch s {
	case TaskSpawned:
		return "Spawned"
	case TaskRunning:
		return "Running"
	case TaskCompleted:
		return "Completed"
	case TaskFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transition can follow s.
func (s TaskState) Terminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// FillState represents the lifecycle state of one fill call.
//
// Calls progress as:
//
//	FillDispatching → FillAwaitingAll → FillDone
//
// FillDone is reached only after every task is terminal.
type FillState int

const (
	// FillDispatching indicates partitions are being computed and tasks spawned.
	FillDispatching FillState = iota

	// FillAwaitingAll indicates every task is spawned and the call is joining them.
	FillAwaitingAll

	// FillDone indicates every task reached a terminal state.
	FillDone
)

// String returns the string representation of the fill state.
func (s FillState) String() string {
	switch s {
	case FillDispatching:
		return "Dispatching"
	case FillAwaitingAll:
		return "AwaitingAll"
	case FillDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// FillEvent describes a fill-state transition.
type FillEvent struct {
	// RunID identifies the fill call.
	RunID string

	// Mode is the fill mode of the call.
	Mode Mode

	// State is the state entered.
	State FillState

	// Workers is the effective worker count (0 until partitions are known).
	Workers int

	// Err is the outcome of the call; only set on FillDone.
	Err error
}

// TaskEvent describes a worker task state transition.
type TaskEvent struct {
	// RunID identifies the fill call the task belongs to.
	RunID string

	// Task is the task index, equal to the position of its partition.
	Task int

	// Partition is the range owned by the task.
	Partition Partition

	// State is the state entered.
	State TaskState

	// Err is set on TaskFailed.
	Err error
}
