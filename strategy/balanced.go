package strategy

import "github.com/arloliu/parfill/types"

// Balanced splits a buffer into partitions whose sizes differ by at most one.
type Balanced struct {
	minSize int
}

var _ types.Partitioner = (*Balanced)(nil)

// BalancedOption configures a Balanced strategy.
type BalancedOption func(*Balanced)

// NewBalanced creates a new balanced strategy.
//
// For length n and k effective workers, the first n%k partitions hold
// n/k+1 indices and the rest hold n/k. The partitions are ordered by start
// index and their union is exactly [0, n).
//
// Parameters:
//   - opts: Optional configuration (WithMinPartitionSize)
//
// Returns:
//   - *Balanced: Initialized balanced strategy
//
// Example:
//
//	strat := strategy.NewBalanced(strategy.WithMinPartitionSize(4096))
//	f, err := parfill.NewFiller(&cfg, src, parfill.WithPartitioner(strat))
func NewBalanced(opts ...BalancedOption) *Balanced {
	b := &Balanced{minSize: 1}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// WithMinPartitionSize sets the smallest partition worth a worker.
//
// When length/workers would fall below size, the worker count is reduced
// so that each partition holds at least size indices (a buffer shorter
// than size still gets one partition). Values below 1 are ignored.
//
// Parameters:
//   - size: Minimum number of indices per partition
//
// Returns:
//   - BalancedOption: Configuration function
func WithMinPartitionSize(size int) BalancedOption {
	return func(b *Balanced) {
		if size >= 1 {
			b.minSize = size
		}
	}
}

// Split computes balanced partitions for a buffer of the given length.
//
// The algorithm:
//  1. Reduce workers to min(workers, length, length/minSize) (at least 1)
//  2. Give the first length%workers partitions one extra index
//
// Parameters:
//   - length: Buffer length (>= 0)
//   - workers: Requested worker count (>= 1)
//
// Returns:
//   - []types.Partition: Ordered partitions tiling [0, length)
//   - error: ErrInvalidWorkerCount or ErrInvalidLength
func (b *Balanced) Split(length, workers int) ([]types.Partition, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkerCount
	}
	if length < 0 {
		return nil, ErrInvalidLength
	}
	if length == 0 {
		return []types.Partition{}, nil
	}

	k := effectiveWorkers(length, workers, b.minSize)
	base, rem := length/k, length%k

	parts := make([]types.Partition, k)
	start := 0
	for i := range k {
		size := base
		if i < rem {
			size++
		}
		parts[i] = types.Partition{Start: start, End: start + size}
		start += size
	}

	return parts, nil
}

// effectiveWorkers drops workers that would receive fewer than minSize indices.
func effectiveWorkers(length, workers, minSize int) int {
	k := min(workers, length)
	if minSize > 1 {
		k = min(k, length/minSize)
	}

	return max(k, 1)
}
