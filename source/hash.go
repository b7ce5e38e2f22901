package source

import (
	"math"

	"github.com/arloliu/parfill/internal/hash"
	"github.com/arloliu/parfill/types"
)

// Hash derives a pseudo-random but reproducible value from the index using XXH3.
type Hash struct {
	seed  uint64
	bound int
}

var _ types.ValueSource = (*Hash)(nil)

// HashOption configures a Hash source.
type HashOption func(*Hash)

// NewHash creates a hash value source.
//
// Values are non-negative. Without a bound they span [0, math.MaxInt].
//
// Parameters:
//   - opts: Optional configuration (WithSeed, WithBound)
//
// Returns:
//   - *Hash: Initialized hash source
//
// Example:
//
//	src := source.NewHash(source.WithSeed(42), source.WithBound(1000))
func NewHash(opts ...HashOption) *Hash {
	h := &Hash{}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// WithSeed sets the XXH3 seed (default: 0, unseeded).
func WithSeed(seed uint64) HashOption {
	return func(h *Hash) {
		h.seed = seed
	}
}

// WithBound reduces values modulo bound, so they fall in [0, bound).
//
// Values of bound below 1 disable the reduction.
func WithBound(bound int) HashOption {
	return func(h *Hash) {
		if bound > 0 {
			h.bound = bound
		}
	}
}

// ValueAt returns the hash of i.
func (s *Hash) ValueAt(i int) (int, error) {
	v := int(hash.Index(i, s.seed) & uint64(math.MaxInt))
	if s.bound > 0 {
		v %= s.bound
	}

	return v, nil
}
