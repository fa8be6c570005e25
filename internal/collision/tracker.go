package collision

import "sort"

// Tracker records which categories fall into which hash bucket during a
// hashing-strategy fit, so that bucket collisions can be surfaced as a
// diagnostic. Two distinct categories sharing a bucket is an accepted
// trade-off of feature hashing, never an error.
type Tracker struct {
	buckets      map[int][]string // bucket index → categories, in fit order
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		buckets: make(map[int][]string),
	}
}

// Track records that category hashed to bucket. Duplicate categories for the
// same bucket are ignored; a second distinct category in one bucket sets the
// collision flag.
func (t *Tracker) Track(bucket int, category string) {
	existing := t.buckets[bucket]
	for _, c := range existing {
		if c == category {
			return
		}
	}

	if len(existing) > 0 {
		t.hasCollision = true
	}
	t.buckets[bucket] = append(existing, category)
}

// HasCollision returns true if any bucket holds more than one category.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Collisions returns the categories of every bucket holding more than one
// category, keyed by bucket index. The returned map is a copy.
func (t *Tracker) Collisions() map[int][]string {
	result := make(map[int][]string)
	for bucket, cats := range t.buckets {
		if len(cats) > 1 {
			copied := make([]string, len(cats))
			copy(copied, cats)
			result[bucket] = copied
		}
	}

	return result
}

// Buckets returns the bucket indices in ascending order.
func (t *Tracker) Buckets() []int {
	keys := make([]int, 0, len(t.buckets))
	for bucket := range t.buckets {
		keys = append(keys, bucket)
	}
	sort.Ints(keys)

	return keys
}

// Count returns the number of occupied buckets.
func (t *Tracker) Count() int {
	return len(t.buckets)
}
