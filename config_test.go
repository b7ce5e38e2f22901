package parfill

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arloliu/parfill/internal/logging"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, ModeMultiThread, cfg.Mode)
	require.Equal(t, 0, cfg.Workers)
	require.Equal(t, StrategyBalanced, cfg.Strategy)
	require.Equal(t, SourceIndex, cfg.Source.Kind)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "parfill", cfg.Metrics.Namespace)
	require.Equal(t, DefaultMaxLength, cfg.MaxLength)
	require.False(t, cfg.Verify)
	require.Empty(t, cfg.Output)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, ModeSingleThread, cfg.Mode) // zero value is a valid mode
		require.Equal(t, StrategyBalanced, cfg.Strategy)
		require.Equal(t, SourceIndex, cfg.Source.Kind)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, "parfill", cfg.Metrics.Namespace)
		require.Equal(t, DefaultMaxLength, cfg.MaxLength)
		require.NoError(t, cfg.Validate())
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Mode:     ModeMultiThread,
			Workers:  6,
			Strategy: StrategyChunked,
			Source: SourceConfig{
				Kind:  SourceHash,
				Seed:  42,
				Bound: 1000,
			},
			LogLevel: "debug",
			Metrics:  MetricsConfig{Namespace: "bench", Textfile: "/tmp/fill.prom"},
		}
		SetDefaults(&cfg)

		require.Equal(t, 6, cfg.Workers)
		require.Equal(t, StrategyChunked, cfg.Strategy)
		require.Equal(t, SourceConfig{Kind: SourceHash, Seed: 42, Bound: 1000}, cfg.Source)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, MetricsConfig{Namespace: "bench", Textfile: "/tmp/fill.prom"}, cfg.Metrics)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Mode = Mode(7) }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"unknown strategy", func(c *Config) { c.Strategy = "round-robin" }},
		{"negative min partition size", func(c *Config) { c.MinPartitionSize = -4 }},
		{"negative max length", func(c *Config) { c.MaxLength = -1 }},
		{"unknown source", func(c *Config) { c.Source.Kind = "random" }},
		{"negative bound", func(c *Config) { c.Source.Kind = SourceHash; c.Source.Bound = -1 }},
		{"polynomial without coefficients", func(c *Config) { c.Source.Kind = SourcePolynomial }},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("polynomial with coefficients", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Source = SourceConfig{Kind: SourcePolynomial, Coefficients: []int{7, -3, 1}}
		require.NoError(t, cfg.Validate())
	})

	t.Run("error names the field", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Strategy = "round-robin"
		require.ErrorContains(t, cfg.Validate(), "Config.Strategy")
	})
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	t.Run("no warnings for defaults", func(t *testing.T) {
		rec := logging.NewRecorder(t)
		cfg := DefaultConfig()
		cfg.ValidateWithWarnings(rec)
		require.Empty(t, rec.Entries())
	})

	t.Run("warns about oversubscription and ignored fields", func(t *testing.T) {
		rec := logging.NewRecorder(t)
		cfg := DefaultConfig()
		cfg.Mode = ModeSingleThread
		cfg.Workers = 4*runtime.GOMAXPROCS(0) + 1
		cfg.Strategy = StrategyChunked
		cfg.MinPartitionSize = 64
		cfg.ValidateWithWarnings(rec)

		require.True(t, rec.Has("WARN", "Workers far exceeds available CPUs, goroutines will time-slice"))
		require.True(t, rec.Has("WARN", "Workers is ignored in single-thread mode"))
		require.True(t, rec.Has("WARN", "MinPartitionSize only applies to the balanced strategy"))
	})
}

func TestConfig_EffectiveWorkers(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, runtime.GOMAXPROCS(0), cfg.EffectiveWorkers())

	cfg.Workers = 3
	require.Equal(t, 3, cfg.EffectiveWorkers())
}

func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
mode: single
workers: 8
strategy: chunked
minPartitionSize: 16
source:
  kind: polynomial
  coefficients: [7, -3, 1]
logLevel: warn
verify: true
output: out.txt
metrics:
  namespace: bench
  textfile: fill.prom
`

	var cfg Config
	err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
	require.NoError(t, err)

	require.Equal(t, ModeSingleThread, cfg.Mode)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, StrategyChunked, cfg.Strategy)
	require.Equal(t, 16, cfg.MinPartitionSize)
	require.Equal(t, []int{7, -3, 1}, cfg.Source.Coefficients)
	require.Equal(t, "warn", cfg.LogLevel)
	require.True(t, cfg.Verify)
	require.Equal(t, "out.txt", cfg.Output)
	require.Equal(t, "fill.prom", cfg.Metrics.Textfile)
	require.NoError(t, cfg.Validate())

	t.Run("round trip", func(t *testing.T) {
		data, err := yaml.Marshal(&cfg)
		require.NoError(t, err)

		var back Config
		require.NoError(t, yaml.Unmarshal(data, &back))
		require.Equal(t, cfg, back)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		var bad Config
		err := yaml.Unmarshal([]byte("mode: turbo\n"), &bad)
		require.ErrorIs(t, err, ErrUnrecognizedMode)
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workers: 2\nsource:\n  kind: affine\n  a: 3\n  b: 1\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, ModeMultiThread, cfg.Mode)
		require.Equal(t, 2, cfg.Workers)
		require.Equal(t, StrategyBalanced, cfg.Strategy)
		require.Equal(t, SourceConfig{Kind: SourceAffine, A: 3, B: 1}, cfg.Source)
		require.Equal(t, "info", cfg.LogLevel)
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workers: [1, 2\n"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, "debug", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}
