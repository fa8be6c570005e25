package encoder

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/vocab"
)

// binaryStrategy ordinal-encodes each category (code 0 reserved for unseen)
// and writes the code's binary representation across a fixed set of bit
// columns, most-significant bit first.
//
// The bit width is ceil(log2(k+1)) for k fitted categories, the smallest
// width that can represent every code 1..k plus the reserved 0. Unseen
// values encode the sentinel's binary representation, truncated to the
// fitted width.
type binaryStrategy struct {
	name     string
	sentinel float64
	vocab    *vocab.Vocabulary
	width    int
}

func newBinaryStrategy(name string, cfg *Config) *binaryStrategy {
	return &binaryStrategy{
		name:     name,
		sentinel: cfg.sentinel,
	}
}

// bitWidth returns the number of bit columns for k categories, at least 1
// so a zero-category fit still emits a column.
func bitWidth(k int) int {
	width := bits.Len(uint(k)) //nolint:gosec
	if width == 0 {
		width = 1
	}

	return width
}

func (s *binaryStrategy) fit(values []string, _ []float64) error {
	s.vocab = vocab.Build(values)
	s.width = bitWidth(s.vocab.Size())

	return nil
}

func (s *binaryStrategy) transform(values []string) ([]frame.Column, error) {
	cols := make([][]float64, s.width)
	for j := range cols {
		cols[j] = make([]float64, len(values))
	}

	sentinelCode := uint64(0)
	if s.sentinel > 0 {
		sentinelCode = uint64(math.Round(s.sentinel))
	}

	for i, value := range values {
		var code uint64
		if idx, seen := s.vocab.Index(value); seen {
			code = uint64(idx + 1) //nolint:gosec
		} else {
			code = sentinelCode
		}

		// Column 0 holds the most-significant bit.
		for j := 0; j < s.width; j++ {
			bit := (code >> uint(s.width-1-j)) & 1
			cols[j][i] = float64(bit)
		}
	}

	out := make([]frame.Column, s.width)
	for j := 0; j < s.width; j++ {
		out[j] = frame.NewNumericColumn(fmt.Sprintf("%s_bin%d", s.name, j), cols[j])
	}

	return out, nil
}

func (s *binaryStrategy) fitTransform(values []string, target []float64) ([]frame.Column, error) {
	return fitThenTransform(s, values, target)
}

func (s *binaryStrategy) diagnostics() []Diagnostic {
	return nil
}

func (s *binaryStrategy) state() ColumnState {
	return ColumnState{
		Name:  s.name,
		Vocab: s.vocab.Values(),
		Width: s.width,
	}
}

func (s *binaryStrategy) restore(cs ColumnState) error {
	s.vocab = vocab.FromValues(cs.Vocab)
	s.width = cs.Width
	if s.width <= 0 {
		s.width = bitWidth(s.vocab.Size())
	}

	return nil
}
