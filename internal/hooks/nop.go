package hooks

import (
	"context"

	"github.com/arloliu/parfill/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.FillEvent) error = (*NopHooks)(nil).OnFillStateChanged
	_ func(context.Context, types.TaskEvent) error = (*NopHooks)(nil).OnTaskStateChanged
	_ func(context.Context, error) error           = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnFillStateChanged: h.OnFillStateChanged,
		OnTaskStateChanged: h.OnTaskStateChanged,
		OnError:            h.OnError,
	}
}

// Complete returns a copy of h where every nil callback is replaced by a no-op.
//
// A nil h yields NewNop().
func Complete(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnFillStateChanged != nil {
		out.OnFillStateChanged = h.OnFillStateChanged
	}
	if h.OnTaskStateChanged != nil {
		out.OnTaskStateChanged = h.OnTaskStateChanged
	}
	if h.OnError != nil {
		out.OnError = h.OnError
	}

	return out
}

// OnFillStateChanged is a no-op implementation.
func (h *NopHooks) OnFillStateChanged(ctx context.Context, ev types.FillEvent) error {
	return nil
}

// OnTaskStateChanged is a no-op implementation.
func (h *NopHooks) OnTaskStateChanged(ctx context.Context, ev types.TaskEvent) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
