package fill

import (
	"context"

	"github.com/arloliu/parfill/types"
)

// Sequential fills dst on the calling goroutine in ascending index order.
//
// The whole buffer is treated as a single task (task 0) so that observers
// see the same lifecycle as for a parallel fill with one worker. An empty
// buffer completes immediately with no task.
//
// Parameters:
//   - ctx: Context checked every checkInterval indices
//   - src: Value source
//   - dst: Caller-owned buffer; every index is written on success
//   - obs: Observer for state transitions (nil for none)
//
// Returns:
//   - error: *types.FillError if the source failed or ctx was cancelled
func Sequential(ctx context.Context, src types.ValueSource, dst []int, obs Observer) error {
	if src == nil {
		return types.ErrValueSourceRequired
	}
	if obs == nil {
		obs = NopObserver{}
	}

	obs.FillStateChanged(types.FillDispatching, 0, nil)

	if len(dst) == 0 {
		obs.FillStateChanged(types.FillAwaitingAll, 0, nil)
		obs.FillStateChanged(types.FillDone, 0, nil)

		return nil
	}

	p := types.Partition{Start: 0, End: len(dst)}
	obs.TaskStateChanged(0, p, types.TaskSpawned, nil)
	obs.FillStateChanged(types.FillAwaitingAll, 1, nil)

	var err error
	if te := runTask(ctx, src, 0, p, dst, obs); te != nil {
		err = &types.FillError{Length: len(dst), Workers: 1, Tasks: []*types.TaskError{te}}
	}
	obs.FillStateChanged(types.FillDone, 1, err)

	return err
}
