package types

import "strconv"

// Partition is a contiguous, half-open index range [Start, End) of a fill buffer.
//
// During a parallel fill each partition is owned by exactly one worker, which
// receives write access to dst[Start:End] and nothing else. The partitions of
// one fill call tile [0, len) with no gaps or overlaps.
type Partition struct {
	// Start is the first index of the range (inclusive).
	Start int `json:"start" yaml:"start"`

	// End is one past the last index of the range (exclusive).
	End int `json:"end" yaml:"end"`
}

// Len returns the number of indices covered by the partition.
//
// Returns:
//   - int: End - Start, or 0 for inverted ranges
func (p Partition) Len() int {
	if p.End <= p.Start {
		return 0
	}

	return p.End - p.Start
}

// Empty reports whether the partition covers no index.
func (p Partition) Empty() bool {
	return p.Len() == 0
}

// Contains reports whether index i falls inside [Start, End).
func (p Partition) Contains(i int) bool {
	return i >= p.Start && i < p.End
}

// String returns the range in interval notation, e.g. "[4,8)".
func (p Partition) String() string {
	return "[" + strconv.Itoa(p.Start) + "," + strconv.Itoa(p.End) + ")"
}

// Partitioner splits the index range of a buffer into worker partitions.
//
// Implementations must:
//   - Be deterministic (same input → same output)
//   - Return partitions ordered by Start that tile [0, length) exactly
//   - Never return an empty partition
//   - Return no partitions when length is 0
//
// The filler checks every result against these rules before spawning any
// worker, so a broken implementation fails the call instead of racing.
type Partitioner interface {
	// Split computes the partitions for a buffer of the given length.
	//
	// Parameters:
	//   - length: Buffer length (>= 0)
	//   - workers: Requested worker count (>= 1)
	//
	// Returns:
	//   - []Partition: Ordered, non-empty, non-overlapping ranges covering [0, length)
	//   - error: ErrInvalidWorkerCount for workers < 1, ErrInvalidLength for length < 0
	Split(length, workers int) ([]Partition, error)
}
