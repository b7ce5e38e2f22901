package types

import "context"

// Hooks defines callbacks for fill lifecycle events.
//
// All hooks are optional. Hooks run synchronously on the goroutine that
// produced the event: fill-state hooks on the calling goroutine, task-state
// hooks on the worker goroutine that owns the task. They therefore delay the
// fill while they run and must complete quickly.
//
// IMPORTANT: Hook execution behavior:
//   - OnTaskStateChanged is called concurrently from several workers
//   - Hook errors are logged but don't fail the fill
//   - Hooks must not touch the buffer being filled
//
// Example:
//
//	var failed atomic.Int32
//	hooks := &parfill.Hooks{
//	    OnTaskStateChanged: func(ctx context.Context, ev parfill.TaskEvent) error {
//	        if ev.State == parfill.TaskFailed {
//	            failed.Add(1)
//	        }
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnFillStateChanged is called when a fill call enters a new state.
	OnFillStateChanged func(ctx context.Context, ev FillEvent) error

	// OnTaskStateChanged is called when a worker task enters a new state.
	OnTaskStateChanged func(ctx context.Context, ev TaskEvent) error

	// OnError is called when a fill call fails.
	OnError func(ctx context.Context, err error) error
}
