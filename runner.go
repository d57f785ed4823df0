package parsum

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arloliu/parsum/internal/hooks"
	"github.com/arloliu/parsum/internal/logger"
	"github.com/arloliu/parsum/internal/metrics"
	"github.com/arloliu/parsum/internal/reduce"
	"github.com/arloliu/parsum/source"
	"github.com/arloliu/parsum/strategy"
)

// Report is the outcome of one benchmark round (one input size).
type Report struct {
	// Size is the input length.
	Size int

	// Fingerprint is the xxh3 digest of the input sequence.
	Fingerprint uint64

	// Expected is the sequential total used for verification (0 when verification is skipped).
	Expected int64

	// Results holds one entry per strategy, in report order.
	Results []Result
}

// Runner times every configured strategy against the same generated inputs.
type Runner struct {
	cfg     Config
	src     DataSource
	summers []Summer

	logger  Logger
	metrics MetricsCollector
	hooks   Hooks
	out     io.Writer
}

// NewRunner creates a Runner.
//
// The configuration is copied, defaults are applied and the result is validated.
// cfg.Strategies is not consulted: summers are timed as given.
//
// Parameters:
//   - cfg: Runner configuration (required)
//   - src: Input data source (required)
//   - summers: Strategies to time, in report order (at least one)
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithHooks, WithOutput)
//
// Returns:
//   - *Runner: Initialized runner
//   - error: ErrInvalidConfig, ErrDataSourceRequired or ErrNoStrategies
//
// Example:
//
//	cfg := parsum.DefaultConfig()
//	summers, _ := strategy.Defaults(cfg.Workers)
//	runner, err := parsum.NewRunner(&cfg, source.NewRandom(), summers, parsum.WithOutput(os.Stdout))
func NewRunner(cfg *Config, src DataSource, summers []Summer, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if src == nil {
		return nil, ErrDataSourceRequired
	}
	if len(summers) == 0 {
		return nil, ErrNoStrategies
	}

	c := *cfg
	SetDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	options := &runnerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	r := &Runner{
		cfg:     c,
		src:     src,
		summers: summers,
		logger:  options.logger,
		metrics: options.metrics,
		hooks:   hooks.Fill(options.hooks),
		out:     options.output,
	}
	if r.logger == nil {
		r.logger = logger.NewNop()
	}
	if r.metrics == nil {
		r.metrics = metrics.NewNop()
	}
	if r.out == nil {
		r.out = io.Discard
	}

	c.ValidateWithWarnings(r.logger)

	return r, nil
}

// NewDefaultRunner creates a Runner whose source and strategies come from cfg.
//
// Inputs are generated by source.Random seeded with cfg.Source, and
// cfg.Strategies is resolved through the registry set by WithRegistry
// (strategy.NewDefaultRegistry() when unset).
//
// Returns:
//   - *Runner: Initialized runner
//   - error: ErrInvalidConfig, also wrapping ErrUnknownStrategy for an unregistered name
func NewDefaultRunner(cfg *Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	c := *cfg
	SetDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	options := &runnerOptions{}
	for _, opt := range opts {
		opt(options)
	}
	registry := options.registry
	if registry == nil {
		registry = strategy.NewDefaultRegistry()
	}

	summers, err := registry.Build(c.Strategies, c.Workers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (known: %v)", ErrInvalidConfig, err, registry.Names())
	}

	src := source.NewRandom(
		source.WithSeed(c.Source.Seed),
		source.WithMaxValue(c.Source.MaxValue),
	)

	return NewRunner(&c, src, summers, opts...)
}

// Config returns a copy of the effective configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Run executes one round per configured size, in order.
//
// Returns:
//   - []Report: Reports of every completed round
//   - error: First round error; earlier reports are still returned
func (r *Runner) Run(ctx context.Context) ([]Report, error) {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	r.logger.Info("benchmark started",
		"workers", r.cfg.Workers,
		"sizes", r.cfg.Sizes,
		"strategies", len(r.summers),
	)

	reports := make([]Report, 0, len(r.cfg.Sizes))
	for _, size := range r.cfg.Sizes {
		report, err := r.RunSize(ctx, size)
		if err != nil {
			if hookErr := r.hooks.OnError(ctx, err); hookErr != nil {
				r.logger.Warn("OnError hook failed", "error", hookErr)
			}

			return reports, err
		}
		reports = append(reports, report)
	}

	r.logger.Info("benchmark finished", "rounds", len(reports))

	return reports, nil
}

// RunSize generates one input of n elements and times every strategy on it.
//
// The report block written to the output looks like:
//
//	Calculating the sum for 8 elements:
//
//	Sequential =	36 in 0 ms
//	Threads =	36 in 0 ms
//	...
//	__________________________________________________
//
// Parameters:
//   - ctx: Context for generation and summation
//   - n: Input length (must be >= 0)
//
// Returns:
//   - Report: Round outcome
//   - error: Source, strategy or verification error (ErrSumMismatch, ErrInputMutated)
func (r *Runner) RunSize(ctx context.Context, n int) (Report, error) {
	data, err := r.src.Generate(ctx, n)
	if err != nil {
		return Report{}, fmt.Errorf("generate input of %d elements: %w", n, err)
	}
	if len(data) != n {
		return Report{}, fmt.Errorf("data source returned %d elements, want %d: %w", len(data), n, ErrInvalidLength)
	}
	r.metrics.RecordInputSize(n)

	report := Report{
		Size:        n,
		Fingerprint: source.Fingerprint(data),
		Results:     make([]Result, 0, len(r.summers)),
	}
	if !r.cfg.SkipVerify {
		report.Expected = reduce.Accumulate(data)
	}

	fmt.Fprintf(r.out, "Calculating the sum for %d elements:\n\n", n)

	for _, s := range r.summers {
		result, err := r.timeSummer(ctx, s, data)
		if err != nil {
			return report, err
		}

		fmt.Fprintf(r.out, "%s =\t%d in %d ms\n", result.Strategy, result.Sum, result.ElapsedMillis())

		if err := r.verify(report, result, data); err != nil {
			return report, err
		}

		report.Results = append(report.Results, result)

		if hookErr := r.hooks.OnResult(ctx, result); hookErr != nil {
			r.logger.Warn("OnResult hook failed", "strategy", result.Strategy, "error", hookErr)
		}
	}

	fmt.Fprintln(r.out, strings.Repeat("_", r.cfg.SeparatorWidth))

	if hookErr := r.hooks.OnRoundComplete(ctx, n, report.Results); hookErr != nil {
		r.logger.Warn("OnRoundComplete hook failed", "size", n, "error", hookErr)
	}

	r.logger.Debug("round complete", "size", n, "fingerprint", report.Fingerprint)

	return report, nil
}

// timeSummer runs one strategy and records its metrics.
func (r *Runner) timeSummer(ctx context.Context, s Summer, data []int32) (Result, error) {
	start := time.Now()
	sum, err := s.Sum(ctx, data)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", s.Name(), err)
	}

	r.metrics.RecordSummation(s.Name(), len(data), elapsed.Seconds())
	if ps, ok := s.(PartialSummer); ok {
		r.metrics.RecordPartitionCount(s.Name(), ps.Workers())
	}

	return Result{
		Strategy: s.Name(),
		Size:     len(data),
		Sum:      sum,
		Elapsed:  elapsed,
	}, nil
}

// verify checks a result against the sequential total and the input fingerprint.
func (r *Runner) verify(report Report, result Result, data []int32) error {
	if r.cfg.SkipVerify {
		return nil
	}

	if result.Sum != report.Expected {
		r.metrics.RecordMismatch(result.Strategy)
		r.logger.Error("sum mismatch",
			"strategy", result.Strategy,
			"size", report.Size,
			"got", result.Sum,
			"want", report.Expected,
		)

		return fmt.Errorf("%s returned %d, want %d: %w", result.Strategy, result.Sum, report.Expected, ErrSumMismatch)
	}

	if fp := source.Fingerprint(data); fp != report.Fingerprint {
		r.logger.Error("input modified by strategy", "strategy", result.Strategy, "size", report.Size)
		return fmt.Errorf("%s: %w", result.Strategy, ErrInputMutated)
	}

	return nil
}

// WaitForKey prints the exit prompt to w and blocks until a line (or EOF) is read from r.
//
// Returns:
//   - error: Read error other than io.EOF
func WaitForKey(r io.Reader, w io.Writer) error {
	fmt.Fprint(w, "Press Enter for exit: ")

	_, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("wait for key: %w", err)
	}

	return nil
}
