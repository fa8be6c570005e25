package encoder

import (
	"fmt"

	"github.com/arloliu/catenc/contrast"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/vocab"
)

// contrastStrategy covers the four contrast encoders (Helmert, sum,
// backward-difference, polynomial). Fit builds the k×(k-1) contrast matrix
// for the fitted vocabulary; transform emits the matrix row selected by
// each value's vocabulary index. Unseen values emit a zero row.
type contrastStrategy struct {
	name     string
	strategy format.StrategyType
	vocab    *vocab.Vocabulary
	matrix   contrast.Matrix
}

func newContrastStrategy(name string, cfg *Config) *contrastStrategy {
	return &contrastStrategy{
		name:     name,
		strategy: cfg.strategy,
	}
}

func (s *contrastStrategy) fit(values []string, _ []float64) error {
	s.vocab = vocab.Build(values)

	matrix, err := contrast.ForStrategy(s.strategy, s.vocab.Size())
	if err != nil {
		return err
	}
	s.matrix = matrix

	return nil
}

func (s *contrastStrategy) transform(values []string) ([]frame.Column, error) {
	numCols := s.matrix.NumColumns()

	cols := make([][]float64, numCols)
	for j := range cols {
		cols[j] = make([]float64, len(values))
	}

	for i, value := range values {
		idx, seen := s.vocab.Index(value)
		if !seen {
			continue // zero row
		}
		row := s.matrix.Row(idx)
		for j := 0; j < numCols; j++ {
			cols[j][i] = row[j]
		}
	}

	out := make([]frame.Column, numCols)
	for j := 0; j < numCols; j++ {
		out[j] = frame.NewNumericColumn(fmt.Sprintf("%s_c%d", s.name, j), cols[j])
	}

	return out, nil
}

func (s *contrastStrategy) fitTransform(values []string, target []float64) ([]frame.Column, error) {
	return fitThenTransform(s, values, target)
}

func (s *contrastStrategy) diagnostics() []Diagnostic {
	return nil
}

func (s *contrastStrategy) state() ColumnState {
	return ColumnState{
		Name:  s.name,
		Vocab: s.vocab.Values(),
	}
}

func (s *contrastStrategy) restore(cs ColumnState) error {
	s.vocab = vocab.FromValues(cs.Vocab)

	matrix, err := contrast.ForStrategy(s.strategy, s.vocab.Size())
	if err != nil {
		return err
	}
	// Duplicate vocabulary entries collapse during the rebuild, leaving a
	// matrix that does not cover every recorded level.
	if matrix.NumLevels() != len(cs.Vocab) {
		return fmt.Errorf("%w: %d vocabulary entries collapse to %d contrast levels",
			errs.ErrInvalidPayload, len(cs.Vocab), matrix.NumLevels())
	}
	s.matrix = matrix

	return nil
}
