package parfill

import (
	"fmt"

	"github.com/arloliu/parfill/source"
	"github.com/arloliu/parfill/strategy"
)

// NewSource builds the value source described by cfg.
//
// Parameters:
//   - cfg: Source configuration (Kind "" selects the index source)
//
// Returns:
//   - ValueSource: The configured source
//   - error: ErrInvalidConfig for an unknown kind or missing coefficients
func NewSource(cfg SourceConfig) (ValueSource, error) {
	switch cfg.Kind {
	case "", SourceIndex:
		return source.NewIndex(), nil
	case SourceAffine:
		return source.NewAffine(cfg.A, cfg.B), nil
	case SourcePolynomial:
		if len(cfg.Coefficients) == 0 {
			return nil, fmt.Errorf("%w: polynomial source requires at least one coefficient", ErrInvalidConfig)
		}

		return source.NewPolynomial(cfg.Coefficients...), nil
	case SourceHash:
		return source.NewHash(source.WithSeed(cfg.Seed), source.WithBound(cfg.Bound)), nil
	default:
		return nil, fmt.Errorf("%w: unknown source kind %q", ErrInvalidConfig, cfg.Kind)
	}
}

// NewPartitioner builds the partitioner selected by cfg.Strategy.
//
// Parameters:
//   - cfg: Filler configuration (Strategy "" selects balanced)
//
// Returns:
//   - Partitioner: The configured partitioner
//   - error: ErrInvalidConfig for an unknown strategy
func NewPartitioner(cfg *Config) (Partitioner, error) {
	switch cfg.Strategy {
	case "", StrategyBalanced:
		return strategy.NewBalanced(strategy.WithMinPartitionSize(cfg.MinPartitionSize)), nil
	case StrategyChunked:
		return strategy.NewChunked(), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, cfg.Strategy)
	}
}
