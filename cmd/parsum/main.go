// Command parsum benchmarks sequential and parallel integer summation.
//
// Without arguments it reproduces the classic run: four workers and inputs
// of 100k, 1M and 10M random elements, then waits for Enter.
//
// Usage:
//
//	parsum [-config bench.yaml] [-workers 8] [-sizes 1000,1000000] [-seed 42] [-no-wait] [-metrics] [-log-level debug]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/arloliu/parsum"
	"github.com/arloliu/parsum/internal/logging"
	"github.com/arloliu/parsum/internal/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "parsum: %v\n", err)
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}
}

// options holds command-line overrides. Zero values keep the config file value.
type options struct {
	configPath string
	workers    int
	sizes      string
	seed       uint64
	noWait     bool
	metrics    bool
	logLevel   string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("parsum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "Path to YAML configuration file")
	fs.IntVar(&opts.workers, "workers", 0, "Number of partitions for Threads and Tasks (default 4)")
	fs.StringVar(&opts.sizes, "sizes", "", "Comma-separated input sizes (default 100000,1000000,10000000)")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 = time-seeded)")
	fs.BoolVar(&opts.noWait, "no-wait", false, "Exit without waiting for Enter")
	fs.BoolVar(&opts.metrics, "metrics", false, "Print collected Prometheus metrics to stderr on exit")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}

func parseSizes(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", f, err)
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}

// loadConfig merges the optional config file with command-line overrides.
func loadConfig(opts *options) (*parsum.Config, error) {
	cfg := parsum.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := parsum.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if opts.workers != 0 {
		cfg.Workers = opts.workers
	}
	if opts.sizes != "" {
		sizes, err := parseSizes(opts.sizes)
		if err != nil {
			return nil, err
		}
		cfg.Sizes = sizes
	}
	if opts.seed != 0 {
		cfg.Source.Seed = opts.seed
	}
	if opts.noWait {
		cfg.NoWait = true
	}

	return &cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := logging.NewText(stderr, level)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	runner, err := parsum.NewDefaultRunner(cfg,
		parsum.WithLogger(logger),
		parsum.WithMetrics(metrics.NewPrometheus(reg, "")),
		parsum.WithOutput(stdout),
	)
	if err != nil {
		return err
	}

	_, runErr := runner.Run(ctx)

	// a failed run still reports what was collected, mismatches included
	if opts.metrics {
		if err := dumpMetrics(reg, stderr); err != nil {
			logger.Warn("failed to dump metrics", "error", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	if cfg.NoWait {
		return nil
	}

	return parsum.WaitForKey(stdin, stdout)
}

// dumpMetrics writes every gathered family in the Prometheus text format.
func dumpMetrics(g prometheus.Gatherer, w io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
