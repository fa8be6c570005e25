package encoder

import (
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/vocab"
)

// ordinalStrategy maps each category to its vocabulary index plus one,
// reserving code 0 for unseen values. The configured sentinel (default 0)
// is emitted for values absent from the fitted vocabulary.
type ordinalStrategy struct {
	name     string
	sentinel float64
	vocab    *vocab.Vocabulary
}

func newOrdinalStrategy(name string, cfg *Config) *ordinalStrategy {
	return &ordinalStrategy{
		name:     name,
		sentinel: cfg.sentinel,
	}
}

func (s *ordinalStrategy) fit(values []string, _ []float64) error {
	s.vocab = vocab.Build(values)
	return nil
}

func (s *ordinalStrategy) transform(values []string) ([]frame.Column, error) {
	out := make([]float64, len(values))
	for i, value := range values {
		if idx, seen := s.vocab.Index(value); seen {
			out[i] = float64(idx + 1)
		} else {
			out[i] = s.sentinel
		}
	}

	return []frame.Column{frame.NewNumericColumn(s.name, out)}, nil
}

func (s *ordinalStrategy) fitTransform(values []string, target []float64) ([]frame.Column, error) {
	return fitThenTransform(s, values, target)
}

func (s *ordinalStrategy) diagnostics() []Diagnostic {
	return nil
}

func (s *ordinalStrategy) state() ColumnState {
	return ColumnState{
		Name:  s.name,
		Vocab: s.vocab.Values(),
	}
}

func (s *ordinalStrategy) restore(cs ColumnState) error {
	s.vocab = vocab.FromValues(cs.Vocab)
	return nil
}
