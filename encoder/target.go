package encoder

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/vocab"
)

// targetStrategy replaces each category with the mean of the target values
// over the training rows carrying that category. Unseen categories fall
// back to the global target mean.
//
// Fitting on combined train+test data leaks target information into the
// feature; partitioning the training data is the caller's responsibility.
type targetStrategy struct {
	name       string
	vocab      *vocab.Vocabulary
	means      []float64
	globalMean float64
}

func newTargetStrategy(name string, _ *Config) *targetStrategy {
	return &targetStrategy{name: name}
}

func (s *targetStrategy) fit(values []string, target []float64) error {
	if len(target) != len(values) {
		return fmt.Errorf("%w: target has %d rows, column %q has %d",
			errs.ErrRowCountMismatch, len(target), s.name, len(values))
	}

	s.vocab = vocab.Build(values)

	k := s.vocab.Size()
	sums := make([]float64, k)
	counts := make([]int, k)

	var total float64
	for i, value := range values {
		idx, _ := s.vocab.Index(value)
		sums[idx] += target[i]
		counts[idx]++
		total += target[i]
	}

	s.means = make([]float64, k)
	for idx := 0; idx < k; idx++ {
		s.means[idx] = sums[idx] / float64(counts[idx])
	}

	s.globalMean = 0
	if len(values) > 0 {
		s.globalMean = total / float64(len(values))
	}

	return nil
}

func (s *targetStrategy) transform(values []string) ([]frame.Column, error) {
	out := make([]float64, len(values))
	for i, value := range values {
		if idx, seen := s.vocab.Index(value); seen {
			out[i] = s.means[idx]
		} else {
			out[i] = s.globalMean
		}
	}

	return []frame.Column{frame.NewNumericColumn(s.name, out)}, nil
}

func (s *targetStrategy) fitTransform(values []string, target []float64) ([]frame.Column, error) {
	return fitThenTransform(s, values, target)
}

func (s *targetStrategy) diagnostics() []Diagnostic {
	return nil
}

func (s *targetStrategy) state() ColumnState {
	stats := make([]float64, 0, len(s.means)+1)
	stats = append(stats, s.means...)
	stats = append(stats, s.globalMean)

	return ColumnState{
		Name:  s.name,
		Vocab: s.vocab.Values(),
		Stats: stats,
	}
}

func (s *targetStrategy) restore(cs ColumnState) error {
	s.vocab = vocab.FromValues(cs.Vocab)

	k := s.vocab.Size()
	if len(cs.Stats) != k+1 {
		return fmt.Errorf("%w: expected %d statistics for column %q, got %d",
			errs.ErrInvalidPayload, k+1, cs.Name, len(cs.Stats))
	}

	s.means = make([]float64, k)
	copy(s.means, cs.Stats[:k])
	s.globalMean = cs.Stats[k]

	return nil
}
