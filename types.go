package parfill

import "github.com/arloliu/parfill/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern avoids import cycles by allowing internal packages to depend
// on `types` without depending on the root `parfill` package, while still
// providing a convenient `parfill.Mode`, `parfill.Logger`, etc. for users.
type (
	Mode       = types.Mode
	FillConfig = types.FillConfig
	Partition  = types.Partition
	TaskState  = types.TaskState
	FillState  = types.FillState
	FillEvent  = types.FillEvent
	TaskEvent  = types.TaskEvent
)

// Re-export typed errors.
type (
	ValidationError = types.ValidationError
	TaskError       = types.TaskError
	FillError       = types.FillError
)

// Re-export interfaces from the internal types package for convenience.
type (
	ValueSource      = types.ValueSource
	Partitioner      = types.Partitioner
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export Mode constants.
const (
	ModeSingleThread = types.ModeSingleThread
	ModeMultiThread  = types.ModeMultiThread
)

// Re-export TaskState constants.
const (
	TaskSpawned   = types.TaskSpawned
	TaskRunning   = types.TaskRunning
	TaskCompleted = types.TaskCompleted
	TaskFailed    = types.TaskFailed
)

// Re-export FillState constants.
const (
	FillDispatching = types.FillDispatching
	FillAwaitingAll = types.FillAwaitingAll
	FillDone        = types.FillDone
)

// ParseMode converts a mode name ("single" or "multi") into a Mode.
func ParseMode(s string) (Mode, error) {
	return types.ParseMode(s)
}
