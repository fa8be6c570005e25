// Package catenc provides categorical-encoding transformations for tabular
// data: deterministic, stateless-after-fit mappings from category labels to
// numeric representations.
//
// Ten strategies are supported: ordinal, one-hot, binary, hashing, target,
// leave-one-out, and the four contrast encoders (Helmert, sum,
// backward-difference, polynomial).
//
// # Core Features
//
//   - First-occurrence vocabularies with configurable unseen-value policies
//   - Target and leave-one-out encoding with global-mean fallback
//   - Feature hashing (xxHash64, FNV-1a, or MD5) with collision reporting
//   - Contrast matrices built from standard statistical definitions
//   - Snapshot persistence of fitted encoders (None, Zstd, S2, LZ4 payloads)
//   - Safe concurrent transforms against a fitted encoder
//
// # Basic Usage
//
// Encoding a categorical column:
//
//	import "github.com/arloliu/catenc"
//
//	train, _ := frame.NewFrame(
//	    frame.NewCategoricalColumn("color", []string{"red", "green", "blue"}),
//	    frame.NewNumericColumn("price", []float64{1.5, 2.5, 3.5}),
//	)
//
//	enc, _ := catenc.NewOneHotEncoder(encoder.WithColumns("color"))
//	_ = enc.Fit(train)
//	out, _ := enc.Transform(train)
//
// Target encoding requires a numeric target column:
//
//	enc, _ := catenc.NewTargetEncoder("price", encoder.WithColumns("color"))
//	_ = enc.Fit(train)
//
// Persisting a fitted encoder:
//
//	data, _ := catenc.Marshal(enc)
//	restored, _ := catenc.Unmarshal(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoder
// and snapshot packages, simplifying the most common use cases. For
// fine-grained control, use those packages directly.
package catenc

import (
	"github.com/arloliu/catenc/encoder"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/snapshot"
)

// NewEncoder creates an encoder by strategy name with custom options.
//
// The name is one of: "ordinal", "one_hot", "binary", "hashing", "target",
// "leave_one_out", "helmert", "sum", "backward_difference", "polynomial"
// (case-insensitive).
//
// Parameters:
//   - name: The strategy name
//   - opts: Optional configuration functions (see encoder.Option)
//
// Returns:
//   - *encoder.Encoder: The created encoder.
//   - error: An error if the name or configuration is invalid.
//
// Example:
//
//	enc, err := catenc.NewEncoder("hashing",
//	    encoder.WithColumns("color"),
//	    encoder.WithHashWidth(16),
//	)
func NewEncoder(name string, opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.NewFromName(name, opts...)
}

// NewOrdinalEncoder creates an ordinal encoder.
//
// Each category maps to its first-occurrence index plus one; code 0 is
// reserved for unseen values (override with encoder.WithUnseenSentinel).
func NewOrdinalEncoder(opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.New(format.StrategyOrdinal, opts...)
}

// NewOneHotEncoder creates a one-hot encoder.
//
// Each fitted category becomes an indicator column. Unseen values produce
// an all-zero row, or a 1 in a dedicated trailing column when
// encoder.WithUnseenPolicy(format.UnseenUnknownBucket) is set.
func NewOneHotEncoder(opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.New(format.StrategyOneHot, opts...)
}

// NewBinaryEncoder creates a binary encoder.
//
// Ordinal codes are written across ceil(log2(k+1)) bit columns,
// most-significant bit first. A middle ground between ordinal (compact but
// ordered) and one-hot (unordered but wide).
func NewBinaryEncoder(opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.New(format.StrategyBinary, opts...)
}

// NewHashingEncoder creates a hashing encoder with the given output width.
//
// Categories are bucketed by hash modulo width, keeping dimensionality
// fixed regardless of cardinality. Distinct categories may share a bucket;
// inspect collisions with Encoder.Collisions after fitting.
//
// Example:
//
//	enc, err := catenc.NewHashingEncoder(16,
//	    encoder.WithHashFunc(format.HashMD5),
//	)
func NewHashingEncoder(width int, opts ...encoder.Option) (*encoder.Encoder, error) {
	allOpts := append([]encoder.Option{encoder.WithHashWidth(width)}, opts...)
	return encoder.New(format.StrategyHashing, allOpts...)
}

// NewTargetEncoder creates a target encoder using the named numeric column.
//
// Each category is replaced by its per-category target mean; unseen values
// fall back to the global mean. Fit only on training-partition data: fitting
// on combined train+test data leaks target information into the feature.
func NewTargetEncoder(targetColumn string, opts ...encoder.Option) (*encoder.Encoder, error) {
	allOpts := append([]encoder.Option{encoder.WithTargetColumn(targetColumn)}, opts...)
	return encoder.New(format.StrategyTarget, allOpts...)
}

// NewLeaveOneOutEncoder creates a leave-one-out encoder using the named
// numeric target column.
//
// Use FitTransform on the training frame so each row's encoding excludes
// its own target value; Transform on held-out data behaves like target
// encoding.
func NewLeaveOneOutEncoder(targetColumn string, opts ...encoder.Option) (*encoder.Encoder, error) {
	allOpts := append([]encoder.Option{encoder.WithTargetColumn(targetColumn)}, opts...)
	return encoder.New(format.StrategyLeaveOneOut, allOpts...)
}

// NewHelmertEncoder creates a Helmert contrast encoder, comparing each
// category level to the mean of the preceding levels.
func NewHelmertEncoder(opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.New(format.StrategyHelmert, opts...)
}

// NewSumEncoder creates a sum (deviation) contrast encoder, comparing each
// category level to the grand mean.
func NewSumEncoder(opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.New(format.StrategySum, opts...)
}

// NewBackwardDifferenceEncoder creates a backward-difference contrast
// encoder, comparing each category level to the immediately preceding one.
func NewBackwardDifferenceEncoder(opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.New(format.StrategyBackwardDifference, opts...)
}

// NewPolynomialEncoder creates a polynomial contrast encoder using
// orthonormal polynomial contrasts of increasing degree.
func NewPolynomialEncoder(opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.New(format.StrategyPolynomial, opts...)
}

// Marshal serializes a fitted encoder into snapshot bytes.
//
// The snapshot holds the full fit state; an encoder restored with Unmarshal
// transforms identically to the original. Compression and byte order are
// configurable via snapshot options:
//
//	data, err := catenc.Marshal(enc, snapshot.WithCompression(format.CompressionZstd))
func Marshal(enc *encoder.Encoder, opts ...snapshot.Option) ([]byte, error) {
	return snapshot.Marshal(enc, opts...)
}

// Unmarshal restores a fitted encoder from snapshot bytes.
func Unmarshal(data []byte) (*encoder.Encoder, error) {
	return snapshot.Unmarshal(data)
}
