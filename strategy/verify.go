package strategy

import (
	"fmt"

	"github.com/arloliu/parfill/types"
)

// Verify checks that parts tile [0, length) exactly.
//
// Rules:
//   - length 0 requires no partitions
//   - The first partition starts at 0 and the last ends at length
//   - Each partition starts where the previous one ended (no gaps, no overlaps)
//   - No partition is empty
//
// Parameters:
//   - parts: Partitions in dispatch order
//   - length: Buffer length
//
// Returns:
//   - error: ErrInvalidTiling wrapped with the first violation, nil if valid
func Verify(parts []types.Partition, length int) error {
	if length == 0 {
		if len(parts) != 0 {
			return fmt.Errorf("%w: %d partitions for empty buffer", ErrInvalidTiling, len(parts))
		}

		return nil
	}
	if len(parts) == 0 {
		return fmt.Errorf("%w: no partitions for length %d", ErrInvalidTiling, length)
	}

	next := 0
	for i, p := range parts {
		if p.Start != next {
			return fmt.Errorf("%w: partition %d %s starts at %d, want %d", ErrInvalidTiling, i, p, p.Start, next)
		}
		if p.Empty() {
			return fmt.Errorf("%w: partition %d %s is empty", ErrInvalidTiling, i, p)
		}
		next = p.End
	}
	if next != length {
		return fmt.Errorf("%w: partitions end at %d, want %d", ErrInvalidTiling, next, length)
	}

	return nil
}
