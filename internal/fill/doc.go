// Package fill implements the sequential and partitioned buffer fills.
//
// Sequential writes value_at(i) for every index in ascending order on the
// calling goroutine and serves as the equivalence oracle. Parallel splits
// the buffer with a types.Partitioner, hands each worker the disjoint
// sub-slice dst[p.Start:p.End] of its partition, and joins every worker
// before returning.
//
// Workers share nothing but the read-only value source: no index is ever
// written by two workers, so the buffer needs no locks or atomics. The
// errgroup join provides the happens-before edge from the worker writes to
// the caller's reads.
//
// Call lifecycle:
//
//	FillDispatching → FillAwaitingAll → FillDone
//
// Task lifecycle:
//
//	TaskSpawned → TaskRunning → TaskCompleted | TaskFailed
package fill
