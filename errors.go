package parfill

import "github.com/arloliu/parfill/types"

// Sentinel errors returned by the Filler.
//
// They are the same values as those in the types package, so errors.Is
// matches regardless of which package the caller imports.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrValueSourceRequired is returned when the value source is nil.
	ErrValueSourceRequired = types.ErrValueSourceRequired

	// ErrPartitionerRequired is returned when the partitioner is nil.
	ErrPartitionerRequired = types.ErrPartitionerRequired

	// ErrInvalidWorkerCount is returned when a parallel fill is requested with fewer than one worker.
	ErrInvalidWorkerCount = types.ErrInvalidWorkerCount

	// ErrInvalidLength is returned when a length is negative or above Config.MaxLength.
	ErrInvalidLength = types.ErrInvalidLength

	// ErrInvalidTiling is returned when a partitioner does not tile the buffer.
	ErrInvalidTiling = types.ErrInvalidTiling

	// ErrFillFailed is returned when at least one worker task failed.
	ErrFillFailed = types.ErrFillFailed
)

// Sentinel errors returned by input validation.
var (
	ErrValidation       = types.ErrValidation
	ErrNilArgument      = types.ErrNilArgument
	ErrMissingArgument  = types.ErrMissingArgument
	ErrUnrecognizedMode = types.ErrUnrecognizedMode
	ErrNonNumericLength = types.ErrNonNumericLength
)
