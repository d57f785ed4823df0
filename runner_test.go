package parsum

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/parsum/internal/logger"
	"github.com/arloliu/parsum/internal/metrics"
	"github.com/arloliu/parsum/internal/reduce"
	"github.com/arloliu/parsum/source"
	"github.com/arloliu/parsum/strategy"
)

// offByOne returns the correct total plus one.
type offByOne struct{}

func (offByOne) Name() string { return "OffByOne" }

func (offByOne) Sum(_ context.Context, data []int32) (int64, error) {
	return reduce.Accumulate(data) + 1, nil
}

// mutating returns the correct total but overwrites its input afterwards.
type mutating struct{}

func (mutating) Name() string { return "Mutating" }

func (mutating) Sum(_ context.Context, data []int32) (int64, error) {
	sum := reduce.Accumulate(data)
	for i := range data {
		data[i]++
	}

	return sum, nil
}

// failing always returns err.
type failing struct{ err error }

func (failing) Name() string { return "Failing" }

func (f failing) Sum(context.Context, []int32) (int64, error) {
	return 0, f.err
}

func newTestRunner(t *testing.T, cfg Config, src DataSource, summers []Summer, opts ...Option) *Runner {
	t.Helper()

	if summers == nil {
		var err error
		summers, err = strategy.Defaults(cfg.Workers)
		require.NoError(t, err)
	}

	opts = append([]Option{WithLogger(logger.NewTest(t))}, opts...)
	r, err := NewRunner(&cfg, src, summers, opts...)
	require.NoError(t, err)

	return r
}

func TestNewRunner(t *testing.T) {
	summers, err := strategy.Defaults(4)
	require.NoError(t, err)
	src := source.NewStatic([]int32{1})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewRunner(nil, src, summers)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := TestConfig()
		cfg.Workers = -1

		_, err := NewRunner(&cfg, src, summers)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("nil source", func(t *testing.T) {
		cfg := TestConfig()
		_, err := NewRunner(&cfg, nil, summers)
		require.ErrorIs(t, err, ErrDataSourceRequired)
	})

	t.Run("no strategies", func(t *testing.T) {
		cfg := TestConfig()
		_, err := NewRunner(&cfg, src, nil)
		require.ErrorIs(t, err, ErrNoStrategies)
	})

	t.Run("applies defaults without touching caller config", func(t *testing.T) {
		cfg := Config{}
		r, err := NewRunner(&cfg, src, summers)
		require.NoError(t, err)

		require.Equal(t, 4, r.Config().Workers)
		require.Equal(t, 50, r.Config().SeparatorWidth)
		require.Zero(t, cfg.Workers)
	})
}

func TestRunner_RunSize_KnownSequence(t *testing.T) {
	cfg := TestConfig()
	out := &bytes.Buffer{}
	r := newTestRunner(t, cfg, source.NewStatic([]int32{1, 2, 3, 4, 5, 6, 7, 8}), nil, WithOutput(out))

	report, err := r.RunSize(context.Background(), 8)
	require.NoError(t, err)

	require.Equal(t, 8, report.Size)
	require.Equal(t, int64(36), report.Expected)
	require.Len(t, report.Results, 4)
	for i, res := range report.Results {
		require.Equal(t, strategy.DefaultNames[i], res.Strategy)
		require.Equal(t, int64(36), res.Sum)
		require.Equal(t, 8, res.Size)
	}

	text := out.String()
	require.True(t, strings.HasPrefix(text, "Calculating the sum for 8 elements:\n\n"))
	for _, name := range strategy.DefaultNames {
		require.Contains(t, text, name+" =\t36 in ")
	}
	require.True(t, strings.HasSuffix(text, strings.Repeat("_", 50)+"\n"))
	require.Equal(t, 7, strings.Count(text, "\n"))
}

func TestRunner_RunSize_RemainderOnLastPartition(t *testing.T) {
	r := newTestRunner(t, TestConfig(), source.NewStatic([]int32{1}), nil)

	report, err := r.RunSize(context.Background(), 10)
	require.NoError(t, err)

	for _, res := range report.Results {
		require.Equal(t, int64(10), res.Sum, res.Strategy)
	}
}

func TestRunner_RunSize_EmptyInput(t *testing.T) {
	out := &bytes.Buffer{}
	r := newTestRunner(t, TestConfig(), source.NewStatic(nil), nil, WithOutput(out))

	report, err := r.RunSize(context.Background(), 0)
	require.NoError(t, err)

	require.Zero(t, report.Expected)
	for _, res := range report.Results {
		require.Zero(t, res.Sum, res.Strategy)
	}
	require.Contains(t, out.String(), "Calculating the sum for 0 elements:")
}

func TestRunner_Verification(t *testing.T) {
	src := source.NewStatic([]int32{1, 2, 3})

	t.Run("mismatch is reported", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := metrics.NewPrometheus(reg, "test")
		r := newTestRunner(t, TestConfig(), src, []Summer{strategy.NewSequential(), offByOne{}}, WithMetrics(collector))

		report, err := r.RunSize(context.Background(), 3)
		require.ErrorIs(t, err, ErrSumMismatch)
		require.ErrorContains(t, err, "OffByOne")
		require.Len(t, report.Results, 1)

		count, err := testutil.GatherAndCount(reg, "test_runner_mismatches_total")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("mutation is reported", func(t *testing.T) {
		r := newTestRunner(t, TestConfig(), src, []Summer{mutating{}})

		_, err := r.RunSize(context.Background(), 3)
		require.ErrorIs(t, err, ErrInputMutated)
	})

	t.Run("skipped when disabled", func(t *testing.T) {
		cfg := TestConfig()
		cfg.SkipVerify = true
		r := newTestRunner(t, cfg, src, []Summer{offByOne{}, mutating{}})

		report, err := r.RunSize(context.Background(), 3)
		require.NoError(t, err)
		require.Zero(t, report.Expected)
		require.Equal(t, int64(7), report.Results[0].Sum)
	})
}

func TestRunner_Run(t *testing.T) {
	t.Run("one report per size", func(t *testing.T) {
		cfg := TestConfig()
		r := newTestRunner(t, cfg, source.NewRandom(source.WithSeed(3)), nil)

		reports, err := r.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, reports, len(cfg.Sizes))

		for i, report := range reports {
			require.Equal(t, cfg.Sizes[i], report.Size)
			for _, res := range report.Results {
				require.Equal(t, report.Expected, res.Sum, res.Strategy)
			}
		}
	})

	t.Run("empty size list", func(t *testing.T) {
		cfg := TestConfig()
		cfg.Sizes = []int{}
		r := newTestRunner(t, cfg, source.NewStatic(nil), nil)

		reports, err := r.Run(context.Background())
		require.NoError(t, err)
		require.Empty(t, reports)
	})

	t.Run("stops at the first failing round", func(t *testing.T) {
		boom := errors.New("boom")
		var hookErr error
		hooks := &Hooks{
			OnError: func(_ context.Context, err error) error {
				hookErr = err
				return nil
			},
		}
		cfg := TestConfig()
		cfg.Sizes = []int{4, 8}
		r := newTestRunner(t, cfg, source.NewStatic([]int32{1}), []Summer{failing{err: boom}}, WithHooks(hooks))

		reports, err := r.Run(context.Background())
		require.ErrorIs(t, err, boom)
		require.ErrorContains(t, err, "Failing")
		require.Empty(t, reports)
		require.ErrorIs(t, hookErr, boom)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := newTestRunner(t, TestConfig(), source.NewStatic([]int32{1}), nil)

		_, err := r.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunner_Hooks(t *testing.T) {
	var (
		results []Result
		rounds  []int
	)
	hooks := &Hooks{
		OnResult: func(_ context.Context, r Result) error {
			results = append(results, r)
			return errors.New("ignored")
		},
		OnRoundComplete: func(_ context.Context, size int, rs []Result) error {
			rounds = append(rounds, size)
			require.Len(t, rs, 4)

			return errors.New("ignored")
		},
	}

	cfg := TestConfig()
	cfg.Sizes = []int{8, 16}
	r := newTestRunner(t, cfg, source.NewStatic([]int32{2}), nil, WithHooks(hooks))

	_, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, []int{8, 16}, rounds)
	require.Len(t, results, 8)
	require.Equal(t, int64(32), results[7].Sum)
}

func TestRunner_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, "test")

	cfg := TestConfig()
	cfg.Sizes = []int{1_000}
	r := newTestRunner(t, cfg, source.NewRandom(source.WithSeed(9)), nil, WithMetrics(collector))

	_, err := r.Run(context.Background())
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "test_strategy_summations_total")
	require.NoError(t, err)
	require.Equal(t, 4, count)

	// only Threads and Tasks plan partitions
	count, err = testutil.GatherAndCount(reg, "test_strategy_partitions")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg, "test_runner_input_size")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNewDefaultRunner(t *testing.T) {
	t.Run("builds configured strategies", func(t *testing.T) {
		cfg := TestConfig()
		cfg.Strategies = []string{"Tasks", "Sequential"}

		r, err := NewDefaultRunner(&cfg, WithLogger(logger.NewTest(t)))
		require.NoError(t, err)

		reports, err := r.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, reports, 3)
		require.Equal(t, "Tasks", reports[1].Results[0].Strategy)
		require.Equal(t, "Sequential", reports[1].Results[1].Strategy)
	})

	t.Run("same seed gives same input", func(t *testing.T) {
		cfg := TestConfig()

		a, err := NewDefaultRunner(&cfg)
		require.NoError(t, err)
		b, err := NewDefaultRunner(&cfg)
		require.NoError(t, err)

		ra, err := a.RunSize(context.Background(), 1_000)
		require.NoError(t, err)
		rb, err := b.RunSize(context.Background(), 1_000)
		require.NoError(t, err)

		require.Equal(t, ra.Fingerprint, rb.Fingerprint)
		require.Equal(t, ra.Expected, rb.Expected)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cfg := TestConfig()
		cfg.Strategies = []string{"Nope"}

		_, err := NewDefaultRunner(&cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("registered custom strategy", func(t *testing.T) {
		registry := strategy.NewDefaultRegistry()
		registry.Register("OffByOne", func(int) (Summer, error) { return offByOne{}, nil })

		cfg := TestConfig()
		cfg.Strategies = []string{"Sequential", "OffByOne"}
		cfg.SkipVerify = true

		r, err := NewDefaultRunner(&cfg, WithRegistry(registry))
		require.NoError(t, err)

		report, err := r.RunSize(context.Background(), 8)
		require.NoError(t, err)
		require.Len(t, report.Results, 2)
		require.Equal(t, "OffByOne", report.Results[1].Strategy)
		require.Equal(t, report.Results[0].Sum+1, report.Results[1].Sum)
	})

	t.Run("custom name missing from default registry", func(t *testing.T) {
		cfg := TestConfig()
		cfg.Strategies = []string{"Sequential", "OffByOne"}

		_, err := NewDefaultRunner(&cfg)
		require.ErrorIs(t, err, ErrUnknownStrategy)
		require.ErrorContains(t, err, "OffByOne")
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewDefaultRunner(nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestNewRunner_CustomStrategyNames(t *testing.T) {
	registry := strategy.NewDefaultRegistry()
	registry.Register("Strided", func(int) (Summer, error) { return strategy.NewSequential(), nil })

	cfg := TestConfig()
	cfg.Strategies = []string{"Sequential", "Strided"}

	summers, err := registry.Build(cfg.Strategies, cfg.Workers)
	require.NoError(t, err)

	r, err := NewRunner(&cfg, source.NewStatic([]int32{1, 2, 3, 4, 5, 6, 7, 8}), summers)
	require.NoError(t, err)

	report, err := r.RunSize(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	require.Equal(t, int64(36), report.Results[1].Sum)
}

func TestWaitForKey(t *testing.T) {
	t.Run("returns after a line", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, WaitForKey(strings.NewReader("\n"), out))
		require.Equal(t, "Press Enter for exit: ", out.String())
	})

	t.Run("EOF is not an error", func(t *testing.T) {
		require.NoError(t, WaitForKey(strings.NewReader(""), &bytes.Buffer{}))
	})

	t.Run("read error", func(t *testing.T) {
		boom := errors.New("boom")
		err := WaitForKey(iotest.ErrReader(boom), &bytes.Buffer{})
		require.ErrorIs(t, err, boom)
	})
}
