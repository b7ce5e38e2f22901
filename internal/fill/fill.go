package fill

import (
	"context"

	"github.com/arloliu/parfill/types"
)

// checkInterval is the number of indices written between context checks.
const checkInterval = 1024

// Observer receives state transitions of a fill call and its tasks.
//
// FillStateChanged is called on the calling goroutine. TaskStateChanged is
// called concurrently from worker goroutines and must be thread-safe.
type Observer interface {
	// FillStateChanged reports a call state transition. workers is the
	// effective worker count once known (0 while dispatching) and err is the
	// outcome of the call, only set for FillDone.
	FillStateChanged(state types.FillState, workers int, err error)

	// TaskStateChanged reports a task state transition. err is only set for TaskFailed.
	TaskStateChanged(task int, p types.Partition, state types.TaskState, err error)
}

// NopObserver discards every transition.
type NopObserver struct{}

var _ Observer = NopObserver{}

// FillStateChanged is a no-op implementation.
func (NopObserver) FillStateChanged(types.FillState, int, error) {}

// TaskStateChanged is a no-op implementation.
func (NopObserver) TaskStateChanged(int, types.Partition, types.TaskState, error) {}

// runTask fills one partition and reports its lifecycle.
//
// part must be dst[p.Start:p.End]; index j of part holds value_at(p.Start+j).
func runTask(ctx context.Context, src types.ValueSource, task int, p types.Partition, part []int, obs Observer) *types.TaskError {
	obs.TaskStateChanged(task, p, types.TaskRunning, nil)

	idx, err := fillRange(ctx, src, part, p.Start)
	if err != nil {
		te := &types.TaskError{Task: task, Partition: p, Index: idx, Err: err}
		obs.TaskStateChanged(task, p, types.TaskFailed, te)

		return te
	}
	obs.TaskStateChanged(task, p, types.TaskCompleted, nil)

	return nil
}

// fillRange writes src.ValueAt(offset+j) into part[j] for every j.
//
// It returns the index being computed when it stopped and the cause, or
// (-1, nil) when the whole range was written.
func fillRange(ctx context.Context, src types.ValueSource, part []int, offset int) (int, error) {
	for j := range part {
		if j%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return offset + j, err
			}
		}

		v, err := src.ValueAt(offset + j)
		if err != nil {
			return offset + j, err
		}
		part[j] = v
	}

	return -1, nil
}
