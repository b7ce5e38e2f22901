// Package strategy provides built-in partitioning strategies for the parallel fill.
//
// A strategy splits the index range [0, length) of a buffer into contiguous,
// non-overlapping partitions, one per worker. The package includes two
// built-in strategies:
//
//   - Balanced: Partition sizes differ by at most one (recommended, default)
//   - Chunked: Fixed ceil(length/workers) chunks with a shorter tail
//
// # Strategy Selection Guide
//
// Balanced:
//   - Use for uniform per-index cost (the common case)
//   - Every worker gets floor or ceil of length/workers indices
//   - Uses exactly min(workers, length) partitions
//
// Chunked:
//   - Use when chunk boundaries should be multiples of a fixed size
//   - The last chunk may be much shorter than the others
//   - May use fewer partitions than requested workers
//
// Both strategies drop idle workers: when length < workers, no partition is
// ever empty. Custom strategies can be implemented by satisfying the
// types.Partitioner interface; Verify checks their output.
package strategy
