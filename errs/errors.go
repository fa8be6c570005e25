// Package errs defines the sentinel errors shared across catenc packages.
//
// Callers should compare errors with errors.Is since most call sites wrap
// these sentinels with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

// Configuration errors. These are reported by constructors or the first
// Fit call, before any fit state is established.
var (
	// ErrUnknownStrategy indicates an unrecognized strategy name or type.
	ErrUnknownStrategy = errors.New("unknown encoding strategy")

	// ErrInvalidWidth indicates a non-positive hashing output width.
	ErrInvalidWidth = errors.New("invalid output width")

	// ErrInvalidHashFunc indicates an unrecognized hash function type.
	ErrInvalidHashFunc = errors.New("invalid hash function")

	// ErrMissingTarget indicates a target-dependent strategy was configured
	// without a target column.
	ErrMissingTarget = errors.New("missing target column")

	// ErrNoColumns indicates an encoder was configured without any
	// categorical input columns.
	ErrNoColumns = errors.New("no categorical columns configured")
)

// Fit/transform errors.
var (
	// ErrNotFitted indicates Transform was invoked before Fit.
	ErrNotFitted = errors.New("encoder is not fitted")

	// ErrColumnNotFound indicates a configured column is absent from the frame.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNotCategorical indicates a configured input column is not categorical.
	ErrNotCategorical = errors.New("column is not categorical")

	// ErrNotNumeric indicates the configured target column is not numeric.
	ErrNotNumeric = errors.New("column is not numeric")

	// ErrRowCountMismatch indicates columns of differing lengths in one frame.
	ErrRowCountMismatch = errors.New("row count mismatch")

	// ErrDuplicateColumn indicates a column name was added twice to a frame.
	ErrDuplicateColumn = errors.New("duplicate column name")
)

// Snapshot errors.
var (
	// ErrInvalidMagicNumber indicates snapshot data with a wrong magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrUnsupportedVersion indicates a snapshot produced by an incompatible
	// format version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrInvalidHeaderSize indicates snapshot data shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrPayloadTruncated indicates a snapshot payload shorter than the
	// length recorded in its header.
	ErrPayloadTruncated = errors.New("payload truncated")

	// ErrInvalidPayload indicates a snapshot payload that cannot be decoded.
	ErrInvalidPayload = errors.New("invalid payload")
)
