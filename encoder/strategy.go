package encoder

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/frame"
)

// Diagnostic is a non-fatal condition observed while fitting or
// transforming, such as a leave-one-out category with a single training row.
type Diagnostic struct {
	// Column is the input column the diagnostic refers to.
	Column string
	// Category is the category value involved, if any.
	Category string
	// Message describes the condition.
	Message string
}

func (d Diagnostic) String() string {
	if d.Category == "" {
		return fmt.Sprintf("%s: %s", d.Column, d.Message)
	}

	return fmt.Sprintf("%s[%s]: %s", d.Column, d.Category, d.Message)
}

// columnStrategy encodes a single categorical column. One instance is
// created per designated column; the Encoder facade owns the instances and
// serializes fit calls, so implementations never guard their own state.
//
// Strategies are read-only after fit: transform must not touch fit state,
// which makes concurrent transforms against one fitted strategy safe.
type columnStrategy interface {
	// fit establishes the strategy's fit state from the training column and,
	// for target-based strategies, the aligned target values.
	fit(values []string, target []float64) error

	// transform encodes the column into one or more numeric output columns.
	transform(values []string) ([]frame.Column, error)

	// fitTransform couples fit and transform on the training column.
	// Most strategies fit then transform; leave-one-out overrides this to
	// exclude each row's own target from its encoding.
	fitTransform(values []string, target []float64) ([]frame.Column, error)

	// diagnostics returns the non-fatal conditions recorded so far.
	diagnostics() []Diagnostic

	// state exports the fit state for snapshot serialization.
	state() ColumnState

	// restore rebuilds the fit state from a previously exported state.
	restore(cs ColumnState) error
}

// ColumnState is the serializable fit state of one column strategy.
// Field meaning varies by strategy:
//   - Vocab: vocabulary values in index order (empty for hashing)
//   - Stats: target/leave-one-out per-category means followed by the
//     global mean; empty for the other strategies
//   - Width: binary bit width or hashing output width
//
// Contrast matrices are not part of the state: they are a deterministic
// function of the strategy and vocabulary size and are rebuilt on restore.
type ColumnState struct {
	Name  string
	Vocab []string
	Stats []float64
	Width int
}

// newStrategy creates the strategy instance for one column.
func newStrategy(name string, cfg *Config) (columnStrategy, error) {
	switch cfg.strategy {
	case format.StrategyOrdinal:
		return newOrdinalStrategy(name, cfg), nil
	case format.StrategyOneHot:
		return newOneHotStrategy(name, cfg), nil
	case format.StrategyBinary:
		return newBinaryStrategy(name, cfg), nil
	case format.StrategyHashing:
		return newHashingStrategy(name, cfg), nil
	case format.StrategyTarget:
		return newTargetStrategy(name, cfg), nil
	case format.StrategyLeaveOneOut:
		return newLeaveOneOutStrategy(name, cfg), nil
	case format.StrategyHelmert, format.StrategySum, format.StrategyBackwardDifference, format.StrategyPolynomial:
		return newContrastStrategy(name, cfg), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownStrategy, cfg.strategy)
	}
}

// fitThenTransform is the default fitTransform coupling shared by all
// strategies except leave-one-out.
func fitThenTransform(s columnStrategy, values []string, target []float64) ([]frame.Column, error) {
	if err := s.fit(values, target); err != nil {
		return nil, err
	}

	return s.transform(values)
}
