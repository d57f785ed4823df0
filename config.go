package parsum

import (
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/parsum/strategy"
)

// SourceConfig controls random input generation.
type SourceConfig struct {
	// Seed seeds the random generator. 0 selects a time-derived seed, so every
	// run sums different data; set it for reproducible inputs.
	Seed uint64 `yaml:"seed"`

	// MaxValue is the exclusive upper bound of generated values.
	// 0 selects math.MaxInt32, matching the full non-negative int32 range.
	MaxValue int32 `yaml:"maxValue"`
}

// Config is the configuration for the Runner.
//
// Zero values mean "use the default" and are filled in by SetDefaults.
// All duration fields accept standard Go duration strings like "30s", "5m".
type Config struct {
	// Workers is the number of partitions used by the Threads and Tasks strategies.
	// Must be > 0 after defaults are applied.
	// Default: 4.
	Workers int `yaml:"workers"`

	// Sizes lists the input lengths to benchmark, in run order.
	// Default: 100000, 1000000, 10000000.
	Sizes []int `yaml:"sizes"`

	// Strategies lists the strategy names to run, in report order.
	// Default: Sequential, Threads, Tasks, ParallelReduce.
	Strategies []string `yaml:"strategies"`

	// Source controls input generation.
	Source SourceConfig `yaml:"source"`

	// SkipVerify disables comparing every total against a sequential
	// accumulation and the input fingerprint check.
	SkipVerify bool `yaml:"skipVerify"`

	// NoWait skips the "Press Enter for exit" prompt at the end of the CLI run.
	NoWait bool `yaml:"noWait"`

	// SeparatorWidth is the length of the underscore line printed after each size.
	// Default: 50.
	SeparatorWidth int `yaml:"separatorWidth"`

	// Timeout bounds the whole run (0 = no timeout).
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a Config reproducing the classic benchmark:
// four workers and inputs of 100k, 1M and 10M elements.
func DefaultConfig() Config {
	return Config{
		Workers:        4,
		Sizes:          []int{100_000, 1_000_000, 10_000_000},
		Strategies:     slices.Clone(strategy.DefaultNames),
		SeparatorWidth: 50,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.Sizes == nil {
		cfg.Sizes = defaults.Sizes
	}
	if cfg.Strategies == nil {
		cfg.Strategies = defaults.Strategies
	}
	if cfg.SeparatorWidth == 0 {
		cfg.SeparatorWidth = defaults.SeparatorWidth
	}
	// Source.Seed and Source.MaxValue keep 0: the source resolves them itself
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Strategy names are not resolved here: NewDefaultRunner checks them against
// its registry (see WithRegistry).
//
// Hard Validation Rules:
//   - Workers > 0
//   - Every size >= 0
//   - At least one strategy, no duplicates
//   - MaxValue >= 0, SeparatorWidth >= 0, Timeout >= 0
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Workers <= 0 {
		return fmt.Errorf("Workers must be > 0, got %d", cfg.Workers)
	}

	for i, size := range cfg.Sizes {
		if size < 0 {
			return fmt.Errorf("Sizes[%d] must be >= 0, got %d", i, size)
		}
	}

	if len(cfg.Strategies) == 0 {
		return ErrNoStrategies
	}

	seen := make(map[string]struct{}, len(cfg.Strategies))
	for _, name := range cfg.Strategies {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("strategy %q listed more than once", name)
		}
		seen[name] = struct{}{}
	}

	if cfg.Source.MaxValue < 0 {
		return fmt.Errorf("Source.MaxValue must be >= 0, got %d", cfg.Source.MaxValue)
	}

	if cfg.SeparatorWidth < 0 {
		return fmt.Errorf("SeparatorWidth must be >= 0, got %d", cfg.SeparatorWidth)
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("Timeout must be >= 0, got %v", cfg.Timeout)
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but questionable values.
//
// This is called after Validate() in NewRunner() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	for _, size := range cfg.Sizes {
		if size > 0 && size < cfg.Workers {
			logger.Warn(
				"input is shorter than the worker count, surplus partitions will be empty",
				"size", size,
				"workers", cfg.Workers,
			)
		}
	}

	if cfg.SkipVerify {
		logger.Warn("result verification disabled, totals are not checked against a sequential sum")
	}

	if cfg.Source.Seed == 0 {
		logger.Debug("no seed configured, inputs differ between runs")
	}
}

// LoadConfig reads a YAML configuration file, applies defaults and validates it.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Read, parse or validation error (validation errors wrap ErrInvalidConfig)
//
// Example:
//
//	cfg, err := parsum.LoadConfig("bench.yaml")
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration bytes, applies defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// TestConfig returns a configuration sized for fast test execution.
//
// Sizes are tiny, the seed is fixed and the exit prompt is disabled. Use
// DefaultConfig() for real benchmark runs.
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.Sizes = []int{0, 8, 1_000}
	cfg.Source.Seed = 1
	cfg.NoWait = true

	return cfg
}
