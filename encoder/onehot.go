package encoder

import (
	"fmt"

	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/vocab"
)

// oneHotStrategy produces one indicator column per fitted category: a row
// holds a single 1 in the column matching its category and 0 elsewhere.
//
// Unseen values yield an all-zero row under the sentinel policy, or a 1 in
// a trailing "unknown" column when format.UnseenUnknownBucket is configured.
type oneHotStrategy struct {
	name   string
	policy format.UnseenPolicy
	vocab  *vocab.Vocabulary
}

func newOneHotStrategy(name string, cfg *Config) *oneHotStrategy {
	return &oneHotStrategy{
		name:   name,
		policy: cfg.policy,
	}
}

func (s *oneHotStrategy) fit(values []string, _ []float64) error {
	s.vocab = vocab.Build(values)
	return nil
}

func (s *oneHotStrategy) transform(values []string) ([]frame.Column, error) {
	k := s.vocab.Size()
	withUnknown := s.policy == format.UnseenUnknownBucket

	numCols := k
	if withUnknown {
		numCols++
	}

	cols := make([][]float64, numCols)
	for j := range cols {
		cols[j] = make([]float64, len(values))
	}

	for i, value := range values {
		if idx, seen := s.vocab.Index(value); seen {
			cols[idx][i] = 1
		} else if withUnknown {
			cols[k][i] = 1
		}
	}

	out := make([]frame.Column, 0, numCols)
	for j := 0; j < k; j++ {
		category, _ := s.vocab.Value(j)
		out = append(out, frame.NewNumericColumn(fmt.Sprintf("%s_%s", s.name, category), cols[j]))
	}
	if withUnknown {
		out = append(out, frame.NewNumericColumn(s.name+"_unknown", cols[k]))
	}

	return out, nil
}

func (s *oneHotStrategy) fitTransform(values []string, target []float64) ([]frame.Column, error) {
	return fitThenTransform(s, values, target)
}

func (s *oneHotStrategy) diagnostics() []Diagnostic {
	return nil
}

func (s *oneHotStrategy) state() ColumnState {
	return ColumnState{
		Name:  s.name,
		Vocab: s.vocab.Values(),
	}
}

func (s *oneHotStrategy) restore(cs ColumnState) error {
	s.vocab = vocab.FromValues(cs.Vocab)
	return nil
}
