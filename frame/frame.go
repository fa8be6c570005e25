// Package frame provides the tabular data model consumed and produced by
// catenc encoders.
//
// A Frame is an ordered collection of named, equal-length columns. Columns
// are either categorical (string values) or numeric (float64 values).
// Frames are append-only: columns can be added, never removed or mutated in
// place, so a fitted encoder can safely hold references into its training
// frame.
package frame

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
)

// Kind identifies the value type of a column.
type Kind uint8

const (
	KindNumeric     Kind = 0x1 // KindNumeric represents a float64 column.
	KindCategorical Kind = 0x2 // KindCategorical represents a string column.
)

// String returns the name of the column kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Column is a single named column of a frame. The zero value is not usable;
// construct columns with NewNumericColumn or NewCategoricalColumn.
type Column struct {
	name string
	kind Kind
	nums []float64
	cats []string
}

// NewNumericColumn creates a numeric column. The values slice is copied so
// later mutation of the caller's slice cannot affect the column.
func NewNumericColumn(name string, values []float64) Column {
	nums := make([]float64, len(values))
	copy(nums, values)

	return Column{name: name, kind: KindNumeric, nums: nums}
}

// NewCategoricalColumn creates a categorical column. The values slice is
// copied so later mutation of the caller's slice cannot affect the column.
func NewCategoricalColumn(name string, values []string) Column {
	cats := make([]string, len(values))
	copy(cats, values)

	return Column{name: name, kind: KindCategorical, cats: cats}
}

// Name returns the column name.
func (c Column) Name() string {
	return c.name
}

// Kind returns the column kind.
func (c Column) Kind() Kind {
	return c.kind
}

// Len returns the number of rows in the column.
func (c Column) Len() int {
	if c.kind == KindNumeric {
		return len(c.nums)
	}

	return len(c.cats)
}

// Numeric returns the column's float64 values. The returned slice is shared
// with the column and must not be modified. Returns nil for categorical
// columns.
func (c Column) Numeric() []float64 {
	return c.nums
}

// Categorical returns the column's string values. The returned slice is
// shared with the column and must not be modified. Returns nil for numeric
// columns.
func (c Column) Categorical() []string {
	return c.cats
}

// Frame is an ordered set of named, equal-length columns.
type Frame struct {
	columns []Column
	byName  map[string]int
}

// New creates an empty frame.
func New() *Frame {
	return &Frame{
		byName: make(map[string]int),
	}
}

// NewFrame creates a frame from the given columns.
// Returns an error on duplicate names or mismatched column lengths.
func NewFrame(columns ...Column) (*Frame, error) {
	f := New()
	for _, col := range columns {
		if err := f.AddColumn(col); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// AddColumn appends a column to the frame.
//
// The first column establishes the frame's row count; every subsequent
// column must match it. Column names must be unique within a frame.
func (f *Frame) AddColumn(col Column) error {
	if _, exists := f.byName[col.name]; exists {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateColumn, col.name)
	}
	if len(f.columns) > 0 && col.Len() != f.NumRows() {
		return fmt.Errorf("%w: column %q has %d rows, frame has %d",
			errs.ErrRowCountMismatch, col.name, col.Len(), f.NumRows())
	}

	f.byName[col.name] = len(f.columns)
	f.columns = append(f.columns, col)

	return nil
}

// NumRows returns the number of rows, 0 for an empty frame.
func (f *Frame) NumRows() int {
	if len(f.columns) == 0 {
		return 0
	}

	return f.columns[0].Len()
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.columns)
}

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.name
	}

	return names
}

// Columns returns the columns in frame order. The returned slice is a copy;
// the Column values share their data with the frame.
func (f *Frame) Columns() []Column {
	columns := make([]Column, len(f.columns))
	copy(columns, f.columns)

	return columns
}

// Column returns the named column and whether it exists.
func (f *Frame) Column(name string) (Column, bool) {
	idx, exists := f.byName[name]
	if !exists {
		return Column{}, false
	}

	return f.columns[idx], true
}

// Categorical returns the string values of the named categorical column.
func (f *Frame) Categorical(name string) ([]string, error) {
	col, exists := f.Column(name)
	if !exists {
		return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}
	if col.kind != KindCategorical {
		return nil, fmt.Errorf("%w: %q is %s", errs.ErrNotCategorical, name, col.kind)
	}

	return col.cats, nil
}

// Numeric returns the float64 values of the named numeric column.
func (f *Frame) Numeric(name string) ([]float64, error) {
	col, exists := f.Column(name)
	if !exists {
		return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}
	if col.kind != KindNumeric {
		return nil, fmt.Errorf("%w: %q is %s", errs.ErrNotNumeric, name, col.kind)
	}

	return col.nums, nil
}
