package parsum

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/parsum/internal/logger"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, []int{100_000, 1_000_000, 10_000_000}, cfg.Sizes)
	require.Equal(t, []string{"Sequential", "Threads", "Tasks", "ParallelReduce"}, cfg.Strategies)
	require.Equal(t, 50, cfg.SeparatorWidth)
	require.Zero(t, cfg.Source.Seed)
	require.Zero(t, cfg.Source.MaxValue)
	require.False(t, cfg.SkipVerify)
	require.False(t, cfg.NoWait)
	require.Zero(t, cfg.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, 4, cfg.Workers)
		require.Len(t, cfg.Sizes, 3)
		require.Len(t, cfg.Strategies, 4)
		require.Equal(t, 50, cfg.SeparatorWidth)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Workers:        8,
			Sizes:          []int{10},
			Strategies:     []string{"Tasks"},
			Source:         SourceConfig{Seed: 7, MaxValue: 100},
			SkipVerify:     true,
			NoWait:         true,
			SeparatorWidth: 10,
			Timeout:        time.Minute,
		}
		SetDefaults(&cfg)

		require.Equal(t, 8, cfg.Workers)
		require.Equal(t, []int{10}, cfg.Sizes)
		require.Equal(t, []string{"Tasks"}, cfg.Strategies)
		require.Equal(t, uint64(7), cfg.Source.Seed)
		require.Equal(t, int32(100), cfg.Source.MaxValue)
		require.True(t, cfg.SkipVerify)
		require.True(t, cfg.NoWait)
		require.Equal(t, 10, cfg.SeparatorWidth)
		require.Equal(t, time.Minute, cfg.Timeout)
	})

	t.Run("keeps an explicitly empty size list", func(t *testing.T) {
		cfg := Config{Sizes: []int{}}
		SetDefaults(&cfg)

		require.Empty(t, cfg.Sizes)
		require.NotNil(t, cfg.Sizes)
	})

	t.Run("defaults are not shared between configs", func(t *testing.T) {
		a := Config{}
		SetDefaults(&a)
		a.Strategies[0] = "Changed"

		b := Config{}
		SetDefaults(&b)
		require.Equal(t, "Sequential", b.Strategies[0])
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		errText string
	}{
		{name: "default config", mutate: func(*Config) {}},
		{name: "single worker", mutate: func(c *Config) { c.Workers = 1 }},
		{name: "zero size", mutate: func(c *Config) { c.Sizes = []int{0} }},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Workers = 0 },
			errText: "Workers must be > 0",
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Workers = -2 },
			errText: "Workers must be > 0",
		},
		{
			name:    "negative size",
			mutate:  func(c *Config) { c.Sizes = []int{10, -1} },
			errText: "Sizes[1] must be >= 0",
		},
		{
			name:    "no strategies",
			mutate:  func(c *Config) { c.Strategies = []string{} },
			wantErr: ErrNoStrategies,
		},
		{
			name:   "unregistered name is resolved later",
			mutate: func(c *Config) { c.Strategies = []string{"Sequential", "GPU"} },
		},
		{
			name:    "duplicate strategy",
			mutate:  func(c *Config) { c.Strategies = []string{"Tasks", "Tasks"} },
			errText: "listed more than once",
		},
		{
			name:    "negative max value",
			mutate:  func(c *Config) { c.Source.MaxValue = -1 },
			errText: "Source.MaxValue must be >= 0",
		},
		{
			name:    "negative separator width",
			mutate:  func(c *Config) { c.SeparatorWidth = -1 },
			errText: "SeparatorWidth must be >= 0",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Timeout = -time.Second },
			errText: "Timeout must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.ErrorContains(t, err, tt.errText)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	t.Run("does not panic on questionable values", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sizes = []int{2}
		cfg.SkipVerify = true

		require.NotPanics(t, func() { cfg.ValidateWithWarnings(logger.NewTest(t)) })
	})

	t.Run("quiet for the default config", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NotPanics(t, func() { cfg.ValidateWithWarnings(logger.NewNop()) })
	})
}

// TestConfig_YAML demonstrates that time.Duration works directly with YAML unmarshaling
func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
workers: 8
sizes: [10, 1000]
strategies: [Sequential, ParallelReduce]
source:
  seed: 42
  maxValue: 1000
skipVerify: true
noWait: true
separatorWidth: 20
timeout: 90s
`

	var cfg Config
	err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
	require.NoError(t, err)

	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, []int{10, 1000}, cfg.Sizes)
	require.Equal(t, []string{"Sequential", "ParallelReduce"}, cfg.Strategies)
	require.Equal(t, uint64(42), cfg.Source.Seed)
	require.Equal(t, int32(1000), cfg.Source.MaxValue)
	require.True(t, cfg.SkipVerify)
	require.True(t, cfg.NoWait)
	require.Equal(t, 20, cfg.SeparatorWidth)
	require.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestParseConfig(t *testing.T) {
	t.Run("partial YAML gets defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("workers: 2\n"))
		require.NoError(t, err)

		require.Equal(t, 2, cfg.Workers)
		require.Len(t, cfg.Sizes, 3)
		require.Len(t, cfg.Strategies, 4)
		require.Equal(t, 50, cfg.SeparatorWidth)
	})

	t.Run("empty document gives defaults", func(t *testing.T) {
		cfg, err := ParseConfig(nil)
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), *cfg)
	})

	t.Run("invalid values wrap ErrInvalidConfig", func(t *testing.T) {
		_, err := ParseConfig([]byte("workers: -1\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("custom strategy names are kept", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("strategies: [Sequential, Magic]\n"))
		require.NoError(t, err)
		require.Equal(t, []string{"Sequential", "Magic"}, cfg.Strategies)
	})

	t.Run("duplicate strategy wraps ErrInvalidConfig", func(t *testing.T) {
		_, err := ParseConfig([]byte("strategies: [Tasks, Tasks]\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := ParseConfig([]byte("workers: [oops"))
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "parsum.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workers: 3\nsizes: [5]\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Workers)
		require.Equal(t, []int{5}, cfg.Sizes)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, []int{0, 8, 1_000}, cfg.Sizes)
	require.Equal(t, uint64(1), cfg.Source.Seed)
	require.True(t, cfg.NoWait)
}
