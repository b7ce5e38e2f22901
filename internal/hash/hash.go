// Package hash provides XXH3-based hashing of buffer indices and filled buffers.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// digestBlock is the number of values encoded per hasher write.
const digestBlock = 512

// Index computes a 64-bit hash of a buffer index using XXH3.
//
// The index is encoded as 8 little-endian bytes, so the result does not
// depend on the platform's int size. A zero seed uses unseeded XXH3.
//
// Parameters:
//   - i: Buffer index
//   - seed: Hash seed
//
// Returns:
//   - uint64: Hash of the index
func Index(i int, seed uint64) uint64 {
	var ib [8]byte
	binary.LittleEndian.PutUint64(ib[:], uint64(i)) //nolint:gosec
	if seed != 0 {
		return xxh3.HashSeed(ib[:], seed)
	}

	return xxh3.Hash(ib[:])
}

// Digest computes a 64-bit XXH3 checksum of a filled buffer.
//
// Values are hashed in index order as 8 little-endian bytes each, so two
// buffers have the same digest when they hold the same values in the same
// order. Used to compare the output of two fills without keeping both
// buffers around.
//
// Parameters:
//   - values: Filled buffer
//
// Returns:
//   - uint64: Checksum of the buffer
func Digest(values []int) uint64 {
	h := xxh3.New()

	var block [digestBlock * 8]byte
	for len(values) > 0 {
		n := min(len(values), digestBlock)
		for i, v := range values[:n] {
			binary.LittleEndian.PutUint64(block[i*8:], uint64(v)) //nolint:gosec
		}
		_, _ = h.Write(block[:n*8])
		values = values[n:]
	}

	return h.Sum64()
}
