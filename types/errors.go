package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the parfill library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// Typed errors (ValidationError, TaskError, FillError) unwrap to them, so callers
// can match on the category without inspecting the concrete type.

// Filler errors - Public API errors returned by the Filler component.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrValueSourceRequired is returned when the value source is nil.
	ErrValueSourceRequired = errors.New("value source is required")

	// ErrPartitionerRequired is returned when the partitioner is nil.
	ErrPartitionerRequired = errors.New("partitioner is required")

	// ErrInvalidWorkerCount is returned when a parallel fill is requested with fewer than one worker.
	ErrInvalidWorkerCount = errors.New("worker count must be at least 1")

	// ErrInvalidLength is returned when a buffer length is negative or too large to allocate.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidTiling is returned when partitions do not tile [0, length) exactly.
	ErrInvalidTiling = errors.New("partitions do not tile the buffer")

	// ErrFillFailed is returned when at least one worker task failed.
	ErrFillFailed = errors.New("fill failed")
)

// Validation errors - Returned by the input validator.
var (
	// ErrValidation is the category shared by every input validation failure.
	ErrValidation = errors.New("invalid input")

	// ErrNilArgument is returned when the argument list or the output destination is nil.
	ErrNilArgument = errors.New("nil argument")

	// ErrMissingArgument is returned when the argument count is wrong or a token is empty.
	ErrMissingArgument = errors.New("missing argument")

	// ErrUnrecognizedMode is returned when the thread-selection token is not known.
	ErrUnrecognizedMode = errors.New("unrecognized thread mode")

	// ErrNonNumericLength is returned when the length token is not a non-negative integer.
	ErrNonNumericLength = errors.New("length is not a non-negative integer")
)

// ValidationError describes why command-line input was rejected.
//
// It unwraps to both its Kind sentinel and ErrValidation:
//
//	errors.Is(err, types.ErrUnrecognizedMode) // true for a bad mode token
//	errors.Is(err, types.ErrValidation)       // true for every validation error
type ValidationError struct {
	// Kind is one of ErrNilArgument, ErrMissingArgument, ErrUnrecognizedMode, ErrNonNumericLength.
	Kind error

	// Position is the index of the offending token, or -1 when not tied to one token.
	Position int

	// Token is the offending token, if any.
	Token string

	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Position >= 0 {
		fmt.Fprintf(&b, " at position %d", e.Position)
	}
	if e.Token != "" {
		fmt.Fprintf(&b, " (%q)", e.Token)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the kind sentinel, ErrValidation and the underlying cause.
func (e *ValidationError) Unwrap() []error {
	errs := []error{e.Kind, ErrValidation}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// TaskError reports the failure of one worker task.
type TaskError struct {
	// Task is the task index, equal to the position of its partition.
	Task int

	// Partition is the range owned by the failed task.
	Partition Partition

	// Index is the buffer index being computed when the task stopped.
	Index int

	// Err is the cause (value source error or context error).
	Err error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	return fmt.Sprintf("task %d %s failed at index %d: %v", e.Task, e.Partition, e.Index, e.Err)
}

// Unwrap returns the cause.
func (e *TaskError) Unwrap() error {
	return e.Err
}

// FillError reports a fill call that failed after every task was joined.
//
// The buffer content is unspecified when a FillError is returned; no partial
// result is ever reported as success.
type FillError struct {
	// Length is the buffer length of the call.
	Length int

	// Workers is the effective worker count of the call.
	Workers int

	// Tasks holds one entry per failed task, ordered by task index.
	Tasks []*TaskError
}

// Error implements the error interface.
func (e *FillError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d of %d tasks failed (length %d)", ErrFillFailed.Error(), len(e.Tasks), e.Workers, e.Length)
	for _, t := range e.Tasks {
		b.WriteString("; ")
		b.WriteString(t.Error())
	}

	return b.String()
}

// Unwrap returns ErrFillFailed followed by every task error.
func (e *FillError) Unwrap() []error {
	errs := make([]error, 0, len(e.Tasks)+1)
	errs = append(errs, ErrFillFailed)
	for _, t := range e.Tasks {
		errs = append(errs, t)
	}

	return errs
}
