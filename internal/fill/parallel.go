package fill

import (
	"context"
	"fmt"

	"github.com/arloliu/parfill/strategy"
	"github.com/arloliu/parfill/types"
	"golang.org/x/sync/errgroup"
)

// Parallel fills dst with one goroutine per partition.
//
// The algorithm:
//  1. Split [0, len(dst)) with the partitioner and verify the tiling
//  2. Spawn one worker per partition, each bound to dst[p.Start:p.End]
//  3. Join every worker
//  4. Report success only if every worker completed
//
// A failing worker cancels the context shared by its siblings so they stop
// early, but the call still waits for all of them and returns every task
// failure in one *types.FillError. An invalid tiling is rejected before any
// worker is spawned.
//
// Parameters:
//   - ctx: Context checked by every worker every checkInterval indices
//   - src: Value source, called concurrently
//   - dst: Caller-owned buffer; every index is written on success
//   - partitioner: Tiling strategy
//   - workers: Requested worker count (>= 1)
//   - obs: Observer for state transitions (nil for none)
//
// Returns:
//   - error: ErrInvalidWorkerCount, ErrInvalidTiling, or *types.FillError
func Parallel(
	ctx context.Context,
	src types.ValueSource,
	dst []int,
	partitioner types.Partitioner,
	workers int,
	obs Observer,
) error {
	if src == nil {
		return types.ErrValueSourceRequired
	}
	if partitioner == nil {
		return types.ErrPartitionerRequired
	}
	if workers < 1 {
		return fmt.Errorf("%w: got %d", types.ErrInvalidWorkerCount, workers)
	}
	if obs == nil {
		obs = NopObserver{}
	}

	obs.FillStateChanged(types.FillDispatching, 0, nil)

	parts, err := partitioner.Split(len(dst), workers)
	if err == nil {
		err = strategy.Verify(parts, len(dst))
	}
	if err != nil {
		err = fmt.Errorf("partition %d indices over %d workers: %w", len(dst), workers, err)
		obs.FillStateChanged(types.FillDone, 0, err)

		return err
	}

	failures := make([]*types.TaskError, len(parts))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range parts {
		// Capacity is capped so the worker cannot reach past its partition.
		part := dst[p.Start:p.End:p.End]
		obs.TaskStateChanged(i, p, types.TaskSpawned, nil)
		g.Go(func() error {
			if te := runTask(gctx, src, i, p, part, obs); te != nil {
				failures[i] = te
				return te
			}

			return nil
		})
	}
	obs.FillStateChanged(types.FillAwaitingAll, len(parts), nil)

	_ = g.Wait() // every task error is collected in failures

	err = collect(len(dst), len(parts), failures)
	obs.FillStateChanged(types.FillDone, len(parts), err)

	return err
}

// collect builds the call error from per-task failures, or returns nil if none failed.
func collect(length, workers int, failures []*types.TaskError) error {
	var tasks []*types.TaskError
	for _, te := range failures {
		if te != nil {
			tasks = append(tasks, te)
		}
	}
	if len(tasks) == 0 {
		return nil
	}

	return &types.FillError{Length: length, Workers: workers, Tasks: tasks}
}
