// Package types provides core type definitions and interfaces for the parfill library.
//
// This package contains shared types that are used across multiple packages in the
// parfill library. By keeping these types in a separate package, we avoid import cycles
// between the main parfill package and its internal implementations.
//
// Key types:
//   - Mode: Single- or multi-threaded fill selection
//   - FillConfig: Validated command-line input
//   - Partition: Half-open index range owned by one worker
//   - ValueSource: The per-index fill function
//   - Partitioner: Tiling strategy for the parallel fill
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
