// Package parfill provides a Go library for filling integer buffers with
// value_at(i) for every index i, either sequentially or with one goroutine
// per contiguous partition.
//
// The sequential fill is the reference: a partitioned fill of the same
// buffer with any worker count produces the same contents element-wise.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import (
//	    "github.com/arloliu/parfill"
//	    "github.com/arloliu/parfill/source"
//	)
//
//	cfg := parfill.DefaultConfig()
//	f, err := parfill.NewFiller(&cfg, source.NewIndex())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	buf := make([]int, 1<<20)
//	if err := f.FillParallel(ctx, buf, 8); err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Features
//
//   - Balanced partitions: sizes differ by at most one, first partitions take the remainder
//   - Idle workers dropped: a buffer shorter than the worker count runs one worker per element
//   - Full join: a call returns only after every worker finished, and reports all task failures
//   - Cancellation: workers poll the context while filling and stop early
//
// # Architecture
//
// Every call progresses through:
//
//	Dispatching → AwaitingAll → Done
//
// and every worker task through:
//
//	Spawned → Running → Completed | Failed
//
// Transitions are reported to hooks and, for call states, to subscribers.
//
// # Advanced Usage
//
// Custom partitioner and hooks:
//
//	import (
//	    "github.com/arloliu/parfill"
//	    "github.com/arloliu/parfill/strategy"
//	)
//
//	hooks := &parfill.Hooks{
//	    OnTaskStateChanged: func(ctx context.Context, ev parfill.TaskEvent) error {
//	        if ev.State == parfill.TaskFailed {
//	            log.Printf("task %d %s failed: %v", ev.Task, ev.Partition, ev.Err)
//	        }
//	        return nil
//	    },
//	}
//
//	f, err := parfill.NewFiller(&cfg, src,
//	    parfill.WithPartitioner(strategy.NewChunked()),
//	    parfill.WithHooks(hooks),
//	)
//
// See the examples/ directory for complete working examples.
package parfill
