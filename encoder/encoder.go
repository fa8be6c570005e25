// Package encoder implements catenc's categorical-encoding strategies and
// the Encoder facade that applies them to frames.
//
// An Encoder is configured once with a strategy and functional options,
// fitted against a training frame, and then applied to any number of
// frames. Every strategy follows the same life cycle:
//
//	Unfit → Fit → (Transform)*
//
// Transform before Fit fails with errs.ErrNotFitted. Re-fitting replaces
// the prior fit state entirely; there is no incremental fit. Fit state is
// read-only after fitting, so concurrent Transform calls against one fitted
// Encoder are safe; concurrent Fit calls are not and must be serialized by
// the caller.
package encoder

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/internal/options"
)

// Encoder applies one encoding strategy to the designated categorical
// columns of a frame, passing all other columns through unchanged.
type Encoder struct {
	cfg        *Config
	colNames   []string
	strategies map[string]columnStrategy
	fitted     bool
}

// New creates an encoder for the given strategy.
//
// Configuration errors (unknown strategy, non-positive hashing width,
// missing target column for target-based strategies) are reported here;
// fit never proceeds on an invalid configuration.
func New(strategy format.StrategyType, opts ...Option) (*Encoder, error) {
	cfg := newConfig(strategy)
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// NewFromName creates an encoder by strategy name (e.g. "ordinal",
// "one_hot", "leave_one_out"). Names are case-insensitive.
func NewFromName(name string, opts ...Option) (*Encoder, error) {
	strategy := format.StrategyFromString(name)
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownStrategy, name)
	}

	return New(strategy, opts...)
}

// Config returns the encoder's configuration.
func (e *Encoder) Config() *Config {
	return e.cfg
}

// IsFitted reports whether Fit (or FitTransform) has completed.
func (e *Encoder) IsFitted() bool {
	return e.fitted
}

// Fit establishes the fit state of every designated column from the
// training frame. A successful re-fit replaces all prior state.
func (e *Encoder) Fit(f *frame.Frame) error {
	colNames, strategies, target, err := e.prepare(f)
	if err != nil {
		return err
	}

	for _, name := range colNames {
		values, err := f.Categorical(name)
		if err != nil {
			return err
		}
		if err := strategies[name].fit(values, target); err != nil {
			return err
		}
	}

	e.colNames = colNames
	e.strategies = strategies
	e.fitted = true

	return nil
}

// Transform encodes the designated categorical columns of f, replacing each
// with its encoded column set at its original position. All other columns
// pass through unchanged, preserving row order and count.
//
// A zero-category fit leaves one-hot and contrast strategies with an empty
// encoded column set; a frame whose only column was the designated one then
// comes back without columns and reports zero rows. For one-hot,
// format.UnseenUnknownBucket keeps the output non-empty in that case.
func (e *Encoder) Transform(f *frame.Frame) (*frame.Frame, error) {
	if !e.fitted {
		return nil, errs.ErrNotFitted
	}

	return e.assemble(f, func(s columnStrategy, values []string) ([]frame.Column, error) {
		return s.transform(values)
	})
}

// FitTransform couples fit and transform on the training frame. For the
// leave-one-out strategy each training row's encoding excludes its own
// target value; for every other strategy this is equivalent to Fit followed
// by Transform.
func (e *Encoder) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	colNames, strategies, target, err := e.prepare(f)
	if err != nil {
		return nil, err
	}

	e.colNames = colNames
	e.strategies = strategies
	e.fitted = true

	return e.assemble(f, func(s columnStrategy, values []string) ([]frame.Column, error) {
		return s.fitTransform(values, target)
	})
}

// Diagnostics returns the non-fatal conditions recorded by the most recent
// fit, such as degenerate leave-one-out categories or hash-bucket
// collisions. Never a reason to fail.
func (e *Encoder) Diagnostics() []Diagnostic {
	var diags []Diagnostic
	for _, name := range e.colNames {
		diags = append(diags, e.strategies[name].diagnostics()...)
	}

	return diags
}

// Collisions returns, per hashing-encoded column, the fitted categories
// that share a hash bucket. Empty for non-hashing strategies and for fits
// without collisions.
func (e *Encoder) Collisions() map[string]map[int][]string {
	result := make(map[string]map[int][]string)
	for _, name := range e.colNames {
		hs, ok := e.strategies[name].(*hashingStrategy)
		if !ok {
			continue
		}
		if c := hs.collisions(); len(c) > 0 {
			result[name] = c
		}
	}

	return result
}

// prepare resolves the designated columns, fetches the target column if the
// strategy needs one, and creates fresh strategy instances.
func (e *Encoder) prepare(f *frame.Frame) ([]string, map[string]columnStrategy, []float64, error) {
	colNames := e.cfg.columns
	if len(colNames) == 0 {
		for _, col := range f.Columns() {
			if col.Kind() == frame.KindCategorical && col.Name() != e.cfg.targetColumn {
				colNames = append(colNames, col.Name())
			}
		}
	}
	if len(colNames) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: frame has no categorical columns", errs.ErrNoColumns)
	}

	var target []float64
	if e.cfg.strategy.UsesTarget() {
		var err error
		target, err = f.Numeric(e.cfg.targetColumn)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: %w", errs.ErrMissingTarget, err)
		}
	}

	strategies := make(map[string]columnStrategy, len(colNames))
	for _, name := range colNames {
		if _, err := f.Categorical(name); err != nil {
			return nil, nil, nil, err
		}

		s, err := newStrategy(name, e.cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		strategies[name] = s
	}

	return colNames, strategies, target, nil
}

// assemble walks f's columns in order, replacing designated columns with the
// strategy output produced by op and passing everything else through.
func (e *Encoder) assemble(f *frame.Frame, op func(columnStrategy, []string) ([]frame.Column, error)) (*frame.Frame, error) {
	out := frame.New()
	for _, col := range f.Columns() {
		s, designated := e.strategies[col.Name()]
		if !designated {
			if err := out.AddColumn(col); err != nil {
				return nil, err
			}

			continue
		}

		values, err := f.Categorical(col.Name())
		if err != nil {
			return nil, err
		}

		encoded, err := op(s, values)
		if err != nil {
			return nil, err
		}
		for _, enc := range encoded {
			if err := out.AddColumn(enc); err != nil {
				return nil, err
			}
		}
	}

	// A designated column missing from f would silently vanish from the
	// output; report it instead.
	for _, name := range e.colNames {
		if _, exists := f.Column(name); !exists {
			return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
		}
	}

	return out, nil
}
