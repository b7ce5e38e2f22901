package parfill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/parfill/internal/fill"
	"github.com/arloliu/parfill/internal/hooks"
	"github.com/arloliu/parfill/internal/logging"
	"github.com/arloliu/parfill/internal/metrics"
	"github.com/arloliu/parfill/strategy"
	"github.com/google/uuid"
)

// Filler writes value_at(i) into every index i of caller-owned buffers.
//
// A Filler is immutable after construction and safe for concurrent use;
// concurrent calls must use distinct buffers.
type Filler struct {
	cfg         Config
	source      ValueSource
	partitioner Partitioner
	hooks       Hooks
	metrics     MetricsCollector
	logger      Logger
	events      *broadcaster
}

// NewFiller creates a new Filler.
//
// Parameters:
//   - cfg: Configuration (defaults are applied to missing values in place)
//   - src: Value source called for every index
//   - opts: Optional dependencies (logger, metrics, hooks, partitioner)
//
// Returns:
//   - *Filler: Ready to use filler
//   - error: ErrInvalidConfig or ErrValueSourceRequired
//
// Example:
//
//	cfg := parfill.DefaultConfig()
//	f, err := parfill.NewFiller(&cfg, source.NewIndex())
//	if err != nil {
//	    return err
//	}
//	buf := make([]int, 1<<20)
//	err = f.FillParallel(ctx, buf, 8)
func NewFiller(cfg *Config, src ValueSource, opts ...Option) (*Filler, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if src == nil {
		return nil, ErrValueSourceRequired
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &fillerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	// Validate with warnings after logger is available
	cfg.ValidateWithWarnings(loggerInstance)

	partitioner := options.partitioner
	if partitioner == nil {
		var err error
		if partitioner, err = NewPartitioner(cfg); err != nil {
			return nil, err
		}
	}

	return &Filler{
		cfg:         *cfg,
		source:      src,
		partitioner: partitioner,
		hooks:       hooks.Complete(options.hooks),
		metrics:     metricsCollector,
		logger:      loggerInstance,
		events:      newBroadcaster(),
	}, nil
}

// Config returns a copy of the configuration the filler was built with.
func (f *Filler) Config() Config {
	return f.cfg
}

// Fill fills dst using the configured mode and worker count.
//
// Parameters:
//   - ctx: Context for cancellation
//   - dst: Caller-owned buffer; every index is written on success
//
// Returns:
//   - error: See FillSequential and FillParallel
func (f *Filler) Fill(ctx context.Context, dst []int) error {
	switch f.cfg.Mode {
	case ModeSingleThread:
		return f.FillSequential(ctx, dst)
	case ModeMultiThread:
		return f.FillParallel(ctx, dst, f.cfg.EffectiveWorkers())
	default:
		return fmt.Errorf("%w: mode %d", ErrInvalidConfig, int(f.cfg.Mode))
	}
}

// Run allocates a buffer of fc.Length elements and fills it in fc.Mode.
//
// It is the programmatic counterpart of the command line: fc is what the
// input validator produces, and the configured worker count applies to the
// multi-thread mode.
//
// Returns:
//   - []int: The filled buffer (nil on error)
//   - error: ErrInvalidLength for a negative length or one above
//     Config.MaxLength, or a fill error
func (f *Filler) Run(ctx context.Context, fc FillConfig) ([]int, error) {
	if fc.Length < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, fc.Length)
	}
	if fc.Length > f.cfg.MaxLength {
		return nil, fmt.Errorf("%w: %d exceeds maximum %d", ErrInvalidLength, fc.Length, f.cfg.MaxLength)
	}

	buf := make([]int, fc.Length)

	var err error
	switch fc.Mode {
	case ModeSingleThread:
		err = f.FillSequential(ctx, buf)
	case ModeMultiThread:
		err = f.FillParallel(ctx, buf, f.cfg.EffectiveWorkers())
	default:
		err = fmt.Errorf("%w: mode %d", ErrUnrecognizedMode, int(fc.Mode))
	}
	if err != nil {
		return nil, err
	}

	return buf, nil
}

// FillSequential fills dst in ascending index order on the calling goroutine.
//
// The result is the reference every other fill must match element-wise.
//
// Parameters:
//   - ctx: Context for cancellation
//   - dst: Caller-owned buffer; every index is written on success
//
// Returns:
//   - error: *FillError if the source failed or ctx was cancelled
func (f *Filler) FillSequential(ctx context.Context, dst []int) error {
	return f.run(ctx, ModeSingleThread, len(dst), 1, func(ctx context.Context, obs fill.Observer) error {
		return fill.Sequential(ctx, f.source, dst, obs)
	})
}

// FillParallel fills dst with one worker goroutine per partition.
//
// The buffer is split into at most workers contiguous partitions; when dst
// has fewer elements than workers, only len(dst) workers run. The call
// returns after every worker has finished, and reports success only if all
// of them completed.
//
// Parameters:
//   - ctx: Context for cancellation
//   - dst: Caller-owned buffer; every index is written on success
//   - workers: Requested worker count (>= 1)
//
// Returns:
//   - error: ErrInvalidWorkerCount, ErrInvalidTiling, or *FillError
//
// Example:
//
//	err := f.FillParallel(ctx, buf, runtime.GOMAXPROCS(0))
//	var fe *parfill.FillError
//	if errors.As(err, &fe) {
//	    for _, te := range fe.Tasks {
//	        log.Printf("partition %s failed at %d", te.Partition, te.Index)
//	    }
//	}
func (f *Filler) FillParallel(ctx context.Context, dst []int, workers int) error {
	if workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, workers)
	}

	return f.run(ctx, ModeMultiThread, len(dst), workers, func(ctx context.Context, obs fill.Observer) error {
		return fill.Parallel(ctx, f.source, dst, f.partitioner, workers, obs)
	})
}

// Partitions returns the tiling FillParallel would use for a buffer of the
// given length and worker count.
//
// Returns:
//   - []Partition: Ordered partitions tiling [0, length)
//   - error: ErrInvalidLength, ErrInvalidWorkerCount or ErrInvalidTiling
func (f *Filler) Partitions(length, workers int) ([]Partition, error) {
	parts, err := f.partitioner.Split(length, workers)
	if err != nil {
		return nil, err
	}
	if err := strategy.Verify(parts, length); err != nil {
		return nil, err
	}

	return parts, nil
}

// Subscribe returns a channel that receives fill state events of every call.
//
// Events are delivered without blocking the fill; a subscriber that falls
// more than a few events behind misses events until it catches up.
//
// Returns:
//   - <-chan FillEvent: Channel that receives events
//   - func(): Unsubscribe function; closes the channel
//
// Example:
//
//	ch, unsubscribe := f.Subscribe()
//	defer unsubscribe()
//	go func() {
//	    for ev := range ch {
//	        fmt.Printf("%s: %s\n", ev.RunID, ev.State)
//	    }
//	}()
func (f *Filler) Subscribe() (<-chan FillEvent, func()) {
	return f.events.subscribe()
}

// DroppedEvents returns the number of events not delivered to slow subscribers.
func (f *Filler) DroppedEvents() uint64 {
	return f.events.dropped.Load()
}

// run wraps one fill call with tracing, logging, metrics and hooks.
func (f *Filler) run(
	ctx context.Context,
	mode Mode,
	length int,
	workers int,
	do func(ctx context.Context, obs fill.Observer) error,
) error {
	runID := uuid.NewString()
	ctx, span := startFillSpan(ctx, runID, mode, length, workers)

	obs := &runObserver{ctx: ctx, filler: f, runID: runID, mode: mode}
	start := time.Now()
	err := do(ctx, obs)
	elapsed := time.Since(start)

	f.metrics.RecordFillDuration(mode.String(), elapsed.Seconds())
	f.metrics.RecordFillResult(mode.String(), err == nil)
	endFillSpan(span, obs.workers, err)

	if err != nil {
		f.logger.Error("fill failed",
			"runID", runID,
			"mode", mode,
			"length", length,
			"workers", obs.workers,
			"error", err,
		)
		if hookErr := f.hooks.OnError(ctx, err); hookErr != nil {
			f.logger.Warn("error hook failed", "runID", runID, "error", hookErr)
		}

		return err
	}

	f.metrics.RecordElements(mode.String(), length)
	f.logger.Info("fill completed",
		"runID", runID,
		"mode", mode,
		"length", length,
		"workers", obs.workers,
		"duration", elapsed,
	)

	return nil
}

// runObserver turns fill and task transitions of one call into events,
// hook calls, log lines and metrics.
type runObserver struct {
	ctx    context.Context //nolint:containedctx // lives for one call only
	filler *Filler
	runID  string
	mode   Mode

	// workers is written by FillStateChanged on the calling goroutine only.
	workers int
}

var _ fill.Observer = (*runObserver)(nil)

// FillStateChanged implements fill.Observer.
func (o *runObserver) FillStateChanged(state FillState, workers int, err error) {
	f := o.filler
	o.workers = workers

	ev := FillEvent{RunID: o.runID, Mode: o.mode, State: state, Workers: workers, Err: err}
	f.logger.Debug("fill state changed", "runID", o.runID, "state", state, "workers", workers)

	if state == FillAwaitingAll && o.mode == ModeMultiThread {
		f.metrics.RecordWorkers(workers)
	}

	if hookErr := f.hooks.OnFillStateChanged(o.ctx, ev); hookErr != nil {
		f.logger.Warn("fill state hook failed", "runID", o.runID, "state", state, "error", hookErr)
	}

	f.events.publish(ev)
}

// TaskStateChanged implements fill.Observer. It is called concurrently.
func (o *runObserver) TaskStateChanged(task int, p Partition, state TaskState, err error) {
	f := o.filler

	switch state {
	case TaskSpawned:
		if o.mode == ModeMultiThread {
			f.metrics.RecordPartitionSize(p.Len())
		}
	case TaskFailed:
		reason := "source"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			reason = "canceled"
		}
		f.metrics.RecordTaskFailure(reason)
		f.logger.Warn("task failed", "runID", o.runID, "task", task, "partition", p, "reason", reason, "error", err)
	default:
	}

	ev := TaskEvent{RunID: o.runID, Task: task, Partition: p, State: state, Err: err}
	if hookErr := f.hooks.OnTaskStateChanged(o.ctx, ev); hookErr != nil {
		f.logger.Warn("task state hook failed", "runID", o.runID, "task", task, "error", hookErr)
	}
}
