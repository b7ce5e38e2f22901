package parfill

// Option configures a Filler with optional dependencies.
type Option func(*fillerOptions)

// fillerOptions holds optional Filler configuration.
type fillerOptions struct {
	partitioner Partitioner
	hooks       *Hooks
	metrics     MetricsCollector
	logger      Logger
}

// WithPartitioner sets a custom partitioner.
//
// The partitioner replaces the one selected by Config.Strategy. Its output is
// still verified to tile the buffer before any worker starts.
//
// Parameters:
//   - partitioner: Partitioner implementation
//
// Returns:
//   - Option: Functional option for NewFiller
//
// Example:
//
//	f, err := parfill.NewFiller(&cfg, src, parfill.WithPartitioner(strategy.NewChunked()))
func WithPartitioner(partitioner Partitioner) Option {
	return func(o *fillerOptions) {
		o.partitioner = partitioner
	}
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewFiller
//
// Example:
//
//	hooks := &parfill.Hooks{
//	    OnError: func(ctx context.Context, err error) error {
//	        alert(err)
//	        return nil
//	    },
//	}
//	f, err := parfill.NewFiller(&cfg, src, parfill.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *fillerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewFiller
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "parfill")
//	f, err := parfill.NewFiller(&cfg, src, parfill.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *fillerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewFiller
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	f, err := parfill.NewFiller(&cfg, src, parfill.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *fillerOptions) {
		o.logger = logger
	}
}
