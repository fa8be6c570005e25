package encoder

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/options"
)

// DefaultHashWidth is the default number of output columns for the hashing
// strategy.
const DefaultHashWidth = 8

// Config holds the validated configuration of an Encoder.
//
// A Config is assembled by New from functional options and is immutable
// afterwards. Concrete strategies read from it during fit and transform.
type Config struct {
	strategy     format.StrategyType
	columns      []string
	targetColumn string
	policy       format.UnseenPolicy
	sentinel     float64
	hashWidth    int
	hashType     format.HashType
}

// Strategy returns the configured strategy type.
func (c *Config) Strategy() format.StrategyType {
	return c.strategy
}

// Columns returns the designated categorical column names, or nil when the
// encoder designates all categorical columns at fit time.
func (c *Config) Columns() []string {
	return c.columns
}

// TargetColumn returns the configured target column name.
func (c *Config) TargetColumn() string {
	return c.targetColumn
}

// UnseenPolicy returns the configured unseen-category policy.
func (c *Config) UnseenPolicy() format.UnseenPolicy {
	return c.policy
}

// Sentinel returns the sentinel value used for unseen categories by the
// ordinal and binary strategies.
func (c *Config) Sentinel() float64 {
	return c.sentinel
}

// HashWidth returns the hashing strategy's output width.
func (c *Config) HashWidth() int {
	return c.hashWidth
}

// HashType returns the configured hash function.
func (c *Config) HashType() format.HashType {
	return c.hashType
}

// validate checks the configuration before any fit work happens.
func (c *Config) validate() error {
	if !c.strategy.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrUnknownStrategy, c.strategy)
	}

	if c.strategy == format.StrategyHashing {
		if c.hashWidth <= 0 {
			return fmt.Errorf("%w: hashing width must be positive, got %d", errs.ErrInvalidWidth, c.hashWidth)
		}
		switch c.hashType {
		case format.HashXXHash64, format.HashFNV1a, format.HashMD5:
		default:
			return fmt.Errorf("%w: %d", errs.ErrInvalidHashFunc, c.hashType)
		}
	}

	if c.strategy.UsesTarget() && c.targetColumn == "" {
		return fmt.Errorf("%w: strategy %s requires WithTargetColumn", errs.ErrMissingTarget, c.strategy)
	}

	switch c.policy {
	case format.UnseenSentinel, format.UnseenUnknownBucket:
	default:
		return fmt.Errorf("%w: invalid unseen policy %d", errs.ErrUnknownStrategy, c.policy)
	}

	return nil
}

func newConfig(strategy format.StrategyType) *Config {
	return &Config{
		strategy:  strategy,
		policy:    format.UnseenSentinel,
		sentinel:  0,
		hashWidth: DefaultHashWidth,
		hashType:  format.HashXXHash64,
	}
}

// Option represents a functional option for configuring an Encoder.
type Option = options.Option[*Config]

// WithColumns designates the categorical columns to encode. Without this
// option the encoder designates every categorical column of the frame at
// fit time.
func WithColumns(names ...string) Option {
	return options.NoError(func(c *Config) {
		c.columns = names
	})
}

// WithTargetColumn names the numeric target column required by the target
// and leave-one-out strategies.
func WithTargetColumn(name string) Option {
	return options.NoError(func(c *Config) {
		c.targetColumn = name
	})
}

// WithUnseenPolicy sets the unseen-category policy. The default is
// format.UnseenSentinel.
func WithUnseenPolicy(policy format.UnseenPolicy) Option {
	return options.NoError(func(c *Config) {
		c.policy = policy
	})
}

// WithUnseenSentinel sets the sentinel value assigned to unseen categories
// by the ordinal and binary strategies. The default is 0.
func WithUnseenSentinel(sentinel float64) Option {
	return options.NoError(func(c *Config) {
		c.sentinel = sentinel
	})
}

// WithHashWidth sets the hashing strategy's output width. The width must be
// positive; it is validated when the encoder is constructed.
func WithHashWidth(width int) Option {
	return options.NoError(func(c *Config) {
		c.hashWidth = width
	})
}

// WithHashFunc selects the hash function for the hashing strategy.
// The default is format.HashXXHash64.
func WithHashFunc(hashType format.HashType) Option {
	return options.NoError(func(c *Config) {
		c.hashType = hashType
	})
}
