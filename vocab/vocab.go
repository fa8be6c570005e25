// Package vocab builds category vocabularies for catenc encoders.
//
// A Vocabulary is the fit-time enumeration of the distinct values of one
// categorical column. Indices are dense (0..k-1) and assigned in
// first-occurrence order, so building from the same column always yields
// the same mapping. Vocabularies are immutable after Build and safe for
// concurrent lookups.
package vocab

// Vocabulary is a bijective mapping between distinct category values and
// dense integer indices.
type Vocabulary struct {
	indices map[string]int
	values  []string
}

// Build scans a training column and returns its vocabulary. Duplicate
// values keep their first-occurrence index. An empty or nil column yields
// an empty vocabulary; encoders must handle zero-category transforms.
func Build(column []string) *Vocabulary {
	v := &Vocabulary{
		indices: make(map[string]int),
	}

	for _, value := range column {
		if _, seen := v.indices[value]; seen {
			continue
		}
		v.indices[value] = len(v.values)
		v.values = append(v.values, value)
	}

	return v
}

// FromValues reconstructs a vocabulary from an ordered list of distinct
// values, assigning index i to values[i]. Used when restoring snapshots.
// Duplicate values keep their first index, same as Build.
func FromValues(values []string) *Vocabulary {
	return Build(values)
}

// Size returns the number of distinct categories.
func (v *Vocabulary) Size() int {
	return len(v.values)
}

// Index returns the dense index of value and whether it was seen at build
// time.
func (v *Vocabulary) Index(value string) (int, bool) {
	idx, seen := v.indices[value]
	return idx, seen
}

// Value returns the category at the given index and whether the index is in
// range.
func (v *Vocabulary) Value(index int) (string, bool) {
	if index < 0 || index >= len(v.values) {
		return "", false
	}

	return v.values[index], true
}

// Values returns the distinct categories in index order. The returned slice
// is shared with the vocabulary and must not be modified.
func (v *Vocabulary) Values() []string {
	return v.values
}
