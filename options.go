package parsum

import (
	"io"

	"github.com/arloliu/parsum/strategy"
)

// Option configures a Runner with optional dependencies.
type Option func(*runnerOptions)

// runnerOptions holds optional Runner configuration.
type runnerOptions struct {
	hooks    *Hooks
	metrics  MetricsCollector
	logger   Logger
	output   io.Writer
	registry *strategy.Registry
}

// WithHooks sets Runner event hooks.
//
// Example:
//
//	hooks := &parsum.Hooks{
//	    OnResult: func(ctx context.Context, r parsum.Result) error {
//	        return record(r)
//	    },
//	}
//	runner, err := parsum.NewRunner(&cfg, src, summers, parsum.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *runnerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.NewRegistry(), "")
//	runner, err := parsum.NewRunner(&cfg, src, summers, parsum.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *runnerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger (compatible with zap.SugaredLogger).
func WithLogger(logger Logger) Option {
	return func(o *runnerOptions) {
		o.logger = logger
	}
}

// WithOutput sets the writer receiving the human-readable report.
//
// Defaults to io.Discard, so library callers only get the returned Reports.
func WithOutput(w io.Writer) Option {
	return func(o *runnerOptions) {
		o.output = w
	}
}

// WithRegistry sets the registry NewDefaultRunner resolves Config.Strategies against.
//
// NewRunner ignores it, since its strategies are passed in directly.
//
// Example:
//
//	registry := strategy.NewDefaultRegistry()
//	registry.Register("Mine", newMine)
//	cfg.Strategies = []string{"Sequential", "Mine"}
//	runner, err := parsum.NewDefaultRunner(&cfg, parsum.WithRegistry(registry))
func WithRegistry(registry *strategy.Registry) Option {
	return func(o *runnerOptions) {
		o.registry = registry
	}
}
