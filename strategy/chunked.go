package strategy

import "github.com/arloliu/parfill/types"

// Chunked splits a buffer into fixed-size chunks of ceil(length/workers) indices.
//
// Every chunk but the last has the same size; the last one holds the
// remainder. Because the chunk size is rounded up, fewer chunks than
// requested workers may be produced (e.g. length 9 with 4 workers yields
// three chunks of 3).
type Chunked struct{}

var _ types.Partitioner = (*Chunked)(nil)

// NewChunked creates a new chunked strategy.
//
// Returns:
//   - *Chunked: Initialized chunked strategy
func NewChunked() *Chunked {
	return &Chunked{}
}

// Split computes chunked partitions for a buffer of the given length.
//
// Parameters:
//   - length: Buffer length (>= 0)
//   - workers: Requested worker count (>= 1)
//
// Returns:
//   - []types.Partition: Ordered partitions tiling [0, length)
//   - error: ErrInvalidWorkerCount or ErrInvalidLength
func (c *Chunked) Split(length, workers int) ([]types.Partition, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkerCount
	}
	if length < 0 {
		return nil, ErrInvalidLength
	}
	if length == 0 {
		return []types.Partition{}, nil
	}

	k := min(workers, length)
	chunk := (length + k - 1) / k

	parts := make([]types.Partition, 0, k)
	for start := 0; start < length; start += chunk {
		end := min(start+chunk, length)
		parts = append(parts, types.Partition{Start: start, End: end})
	}

	return parts, nil
}
