package encoder

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/vocab"
)

// leaveOneOutStrategy is target encoding with the row's own target value
// excluded from its category mean on the training set.
//
// fitTransform encodes training row i of a category with n rows and sum S
// as (S - target[i]) / (n - 1). A category with a single training row has
// no other rows to average, so it falls back to the global mean and a
// degenerate-category diagnostic is recorded.
//
// A plain transform after fit has no own row to exclude and uses the plain
// per-category means, equivalent to the target strategy.
type leaveOneOutStrategy struct {
	name       string
	vocab      *vocab.Vocabulary
	sums       []float64
	counts     []int
	globalMean float64
	diags      []Diagnostic
}

func newLeaveOneOutStrategy(name string, _ *Config) *leaveOneOutStrategy {
	return &leaveOneOutStrategy{name: name}
}

func (s *leaveOneOutStrategy) fit(values []string, target []float64) error {
	if len(target) != len(values) {
		return fmt.Errorf("%w: target has %d rows, column %q has %d",
			errs.ErrRowCountMismatch, len(target), s.name, len(values))
	}

	s.vocab = vocab.Build(values)
	s.diags = nil

	k := s.vocab.Size()
	s.sums = make([]float64, k)
	s.counts = make([]int, k)

	var total float64
	for i, value := range values {
		idx, _ := s.vocab.Index(value)
		s.sums[idx] += target[i]
		s.counts[idx]++
		total += target[i]
	}

	s.globalMean = 0
	if len(values) > 0 {
		s.globalMean = total / float64(len(values))
	}

	return nil
}

func (s *leaveOneOutStrategy) transform(values []string) ([]frame.Column, error) {
	out := make([]float64, len(values))
	for i, value := range values {
		if idx, seen := s.vocab.Index(value); seen {
			out[i] = s.sums[idx] / float64(s.counts[idx])
		} else {
			out[i] = s.globalMean
		}
	}

	return []frame.Column{frame.NewNumericColumn(s.name, out)}, nil
}

func (s *leaveOneOutStrategy) fitTransform(values []string, target []float64) ([]frame.Column, error) {
	if err := s.fit(values, target); err != nil {
		return nil, err
	}

	reported := make(map[int]bool)
	out := make([]float64, len(values))
	for i, value := range values {
		idx, _ := s.vocab.Index(value)
		n := s.counts[idx]
		if n <= 1 {
			// No other rows in this category to average over.
			out[i] = s.globalMean
			if !reported[idx] {
				reported[idx] = true
				s.diags = append(s.diags, Diagnostic{
					Column:   s.name,
					Category: value,
					Message:  "single training row, falling back to global mean",
				})
			}

			continue
		}

		out[i] = (s.sums[idx] - target[i]) / float64(n-1)
	}

	return []frame.Column{frame.NewNumericColumn(s.name, out)}, nil
}

func (s *leaveOneOutStrategy) diagnostics() []Diagnostic {
	return s.diags
}

func (s *leaveOneOutStrategy) state() ColumnState {
	k := s.vocab.Size()
	// Serialized as per-category means plus the global mean; sums and counts
	// only matter for fitTransform, which refits from raw data anyway.
	stats := make([]float64, 0, k+1)
	for idx := 0; idx < k; idx++ {
		stats = append(stats, s.sums[idx]/float64(s.counts[idx]))
	}
	stats = append(stats, s.globalMean)

	return ColumnState{
		Name:  s.name,
		Vocab: s.vocab.Values(),
		Stats: stats,
	}
}

func (s *leaveOneOutStrategy) restore(cs ColumnState) error {
	s.vocab = vocab.FromValues(cs.Vocab)

	k := s.vocab.Size()
	if len(cs.Stats) != k+1 {
		return fmt.Errorf("%w: expected %d statistics for column %q, got %d",
			errs.ErrInvalidPayload, k+1, cs.Name, len(cs.Stats))
	}

	// Restore each category as a single pseudo-observation at its mean so
	// transform reproduces the fitted means exactly.
	s.sums = make([]float64, k)
	s.counts = make([]int, k)
	for idx := 0; idx < k; idx++ {
		s.sums[idx] = cs.Stats[idx]
		s.counts[idx] = 1
	}
	s.globalMean = cs.Stats[k]

	return nil
}
