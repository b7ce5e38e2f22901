package parfill

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Strategy names accepted by Config.Strategy.
const (
	StrategyBalanced = "balanced"
	StrategyChunked  = "chunked"
)

// Source kinds accepted by SourceConfig.Kind.
const (
	SourceIndex      = "index"
	SourceAffine     = "affine"
	SourcePolynomial = "polynomial"
	SourceHash       = "hash"
)

// SourceConfig selects the value function used by the harness.
//
// Only the fields of the selected kind are read.
type SourceConfig struct {
	// Kind is one of "index", "affine", "polynomial" or "hash".
	Kind string `yaml:"kind" validate:"oneof=index affine polynomial hash"`

	// A and B are the affine coefficients (value = A*i + B).
	A int `yaml:"a"`
	B int `yaml:"b"`

	// Coefficients are the polynomial coefficients, constant term first.
	Coefficients []int `yaml:"coefficients,omitempty"`

	// Seed is the hash seed.
	Seed uint64 `yaml:"seed"`

	// Bound limits hash values to [0, Bound). 0 means no bound.
	Bound int `yaml:"bound" validate:"gte=0"`
}

// MetricsConfig controls metrics export from the harness.
type MetricsConfig struct {
	// Namespace is the Prometheus namespace of every metric.
	Namespace string `yaml:"namespace"`

	// Textfile, when set, receives the Prometheus text exposition after the fill.
	Textfile string `yaml:"textfile,omitempty"`
}

// Config is the configuration for the Filler.
//
// The command-line input decides mode and length; everything else comes from
// here. All fields have usable zero values after SetDefaults.
type Config struct {
	// Mode is the fill mode used by Filler.Fill.
	Mode Mode `yaml:"mode"`

	// Workers is the requested worker count of a parallel fill.
	// 0 means runtime.GOMAXPROCS(0). Fewer workers run when the buffer
	// has fewer elements than workers.
	Workers int `yaml:"workers" validate:"gte=0"`

	// Strategy selects the partitioner: "balanced" (sizes differ by at most
	// one) or "chunked" (fixed ceil(n/k) chunks, short tail).
	Strategy string `yaml:"strategy" validate:"oneof=balanced chunked"`

	// MinPartitionSize is the smallest partition the balanced strategy creates.
	// 0 or 1 disables the limit.
	MinPartitionSize int `yaml:"minPartitionSize" validate:"gte=0"`

	// MaxLength is the largest buffer Filler.Run allocates. 0 means DefaultMaxLength.
	MaxLength int `yaml:"maxLength" validate:"gte=0"`

	// Source selects the value function of the harness.
	Source SourceConfig `yaml:"source"`

	// LogLevel is the harness log level (debug, info, warn, error).
	LogLevel string `yaml:"logLevel" validate:"oneof=debug info warn warning error"`

	// Verify makes the harness repeat the fill sequentially and compare checksums.
	Verify bool `yaml:"verify"`

	// Output, when set, receives the filled buffer as space-separated integers.
	Output string `yaml:"output,omitempty"`

	// Metrics controls metrics export.
	Metrics MetricsConfig `yaml:"metrics"`
}

// DefaultMaxLength is the default upper bound on Filler.Run buffers (8 GiB of ints on 64-bit).
const DefaultMaxLength = 1 << 30

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Mode:             ModeMultiThread,
		Workers:          0, // GOMAXPROCS
		Strategy:         StrategyBalanced,
		MinPartitionSize: 0,
		MaxLength:        DefaultMaxLength,
		Source: SourceConfig{
			Kind: SourceIndex,
		},
		LogLevel: "info",
		Metrics: MetricsConfig{
			Namespace: "parfill",
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Mode is left untouched since its zero value is a valid mode.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.MaxLength == 0 {
		cfg.MaxLength = defaults.MaxLength
	}
	if cfg.Source.Kind == "" {
		cfg.Source.Kind = defaults.Source.Kind
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Field rules are expressed as struct tags; the cross-field rules are:
//   - Mode is "single" or "multi"
//   - a polynomial source has at least one coefficient
//
// Returns:
//   - error: Error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Mode != ModeSingleThread && cfg.Mode != ModeMultiThread {
		return fmt.Errorf("%w: mode %d is neither single nor multi", ErrInvalidConfig, int(cfg.Mode))
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}

			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cfg.Source.Kind == SourcePolynomial && len(cfg.Source.Coefficients) == 0 {
		return fmt.Errorf("%w: polynomial source requires at least one coefficient", ErrInvalidConfig)
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but suspicious values.
//
// This is called after Validate() in NewFiller() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	procs := runtime.GOMAXPROCS(0)
	if cfg.Workers > 4*procs {
		logger.Warn(
			"Workers far exceeds available CPUs, goroutines will time-slice",
			"workers", cfg.Workers,
			"gomaxprocs", procs,
		)
	}

	if cfg.Mode == ModeSingleThread && cfg.Workers > 1 {
		logger.Warn(
			"Workers is ignored in single-thread mode",
			"workers", cfg.Workers,
		)
	}

	if cfg.Strategy == StrategyChunked && cfg.MinPartitionSize > 1 {
		logger.Warn(
			"MinPartitionSize only applies to the balanced strategy",
			"minPartitionSize", cfg.MinPartitionSize,
		)
	}
}

// EffectiveWorkers returns the worker count requested for a parallel fill,
// resolving 0 to runtime.GOMAXPROCS(0).
func (cfg *Config) EffectiveWorkers() int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// LoadConfig reads a yaml configuration file and applies defaults.
//
// The returned config is not validated; NewFiller validates it.
//
// Parameters:
//   - path: Path of the yaml file
//
// Returns:
//   - Config: Parsed configuration with defaults applied
//   - error: Read or decode error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
	}
	SetDefaults(&cfg)

	return cfg, nil
}

// TestConfig returns a configuration suited to tests.
//
// It uses a fixed worker count so results do not depend on the machine.
//
// Returns:
//   - Config: Configuration for tests
//
// Example:
//
//	cfg := parfill.TestConfig()
//	f, err := parfill.NewFiller(&cfg, source.NewIndex())
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Workers = 4
	cfg.LogLevel = "debug"

	return cfg
}
