package encoder

import (
	"fmt"

	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/internal/collision"
	"github.com/arloliu/catenc/internal/hash"
)

// hashingStrategy buckets each category into hash(value) mod width and sets
// the selected column to 1. Transform carries no data-dependent state: the
// width and hash function are fixed at configuration time.
//
// Distinct categories hashing to the same bucket is an accepted trade-off
// for dimensionality reduction, never an error. Fit records which fitted
// categories share buckets so callers can inspect collisions via the
// Encoder.Collisions accessor.
type hashingStrategy struct {
	name     string
	width    int
	hashType format.HashType
	tracker  *collision.Tracker
}

func newHashingStrategy(name string, cfg *Config) *hashingStrategy {
	return &hashingStrategy{
		name:     name,
		width:    cfg.hashWidth,
		hashType: cfg.hashType,
	}
}

func (s *hashingStrategy) fit(values []string, _ []float64) error {
	tracker := collision.NewTracker()
	for _, value := range values {
		tracker.Track(hash.Bucket(value, s.width, s.hashType), value)
	}
	s.tracker = tracker

	return nil
}

func (s *hashingStrategy) transform(values []string) ([]frame.Column, error) {
	cols := make([][]float64, s.width)
	for j := range cols {
		cols[j] = make([]float64, len(values))
	}

	for i, value := range values {
		cols[hash.Bucket(value, s.width, s.hashType)][i] = 1
	}

	out := make([]frame.Column, s.width)
	for j := 0; j < s.width; j++ {
		out[j] = frame.NewNumericColumn(fmt.Sprintf("%s_hash%d", s.name, j), cols[j])
	}

	return out, nil
}

func (s *hashingStrategy) fitTransform(values []string, target []float64) ([]frame.Column, error) {
	return fitThenTransform(s, values, target)
}

func (s *hashingStrategy) diagnostics() []Diagnostic {
	if s.tracker == nil || !s.tracker.HasCollision() {
		return nil
	}

	collisions := s.tracker.Collisions()
	diags := make([]Diagnostic, 0, s.tracker.Count())
	for _, bucket := range s.tracker.Buckets() {
		categories, ok := collisions[bucket]
		if !ok {
			continue
		}
		diags = append(diags, Diagnostic{
			Column:  s.name,
			Message: fmt.Sprintf("categories %v share hash bucket %d", categories, bucket),
		})
	}

	return diags
}

// collisions returns the fitted categories sharing buckets, keyed by bucket.
func (s *hashingStrategy) collisions() map[int][]string {
	if s.tracker == nil {
		return nil
	}

	return s.tracker.Collisions()
}

func (s *hashingStrategy) state() ColumnState {
	return ColumnState{
		Name:  s.name,
		Width: s.width,
	}
}

func (s *hashingStrategy) restore(cs ColumnState) error {
	if cs.Width > 0 {
		s.width = cs.Width
	}
	s.tracker = collision.NewTracker()

	return nil
}
