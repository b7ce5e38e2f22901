package strategy

import "github.com/arloliu/parfill/types"

// Errors returned by the built-in strategies. They alias the types sentinels so
// errors.Is matches at either package.
var (
	// ErrInvalidWorkerCount indicates that fewer than one worker was requested.
	ErrInvalidWorkerCount = types.ErrInvalidWorkerCount

	// ErrInvalidLength indicates a negative buffer length.
	ErrInvalidLength = types.ErrInvalidLength

	// ErrInvalidTiling indicates partitions that do not tile the buffer.
	ErrInvalidTiling = types.ErrInvalidTiling
)
