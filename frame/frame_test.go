package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
)

func TestNewFrame(t *testing.T) {
	f, err := NewFrame(
		NewCategoricalColumn("color", []string{"red", "green", "blue"}),
		NewNumericColumn("price", []float64{1.5, 2.5, 3.5}),
	)
	require.NoError(t, err)

	require.Equal(t, 3, f.NumRows())
	require.Equal(t, 2, f.NumCols())
	require.Equal(t, []string{"color", "price"}, f.Names())
}

func TestEmptyFrame(t *testing.T) {
	f := New()
	require.Equal(t, 0, f.NumRows())
	require.Equal(t, 0, f.NumCols())
	require.Empty(t, f.Names())

	_, exists := f.Column("missing")
	require.False(t, exists)
}

func TestAddColumnDuplicateName(t *testing.T) {
	f := New()
	require.NoError(t, f.AddColumn(NewNumericColumn("x", []float64{1})))

	err := f.AddColumn(NewNumericColumn("x", []float64{2}))
	require.ErrorIs(t, err, errs.ErrDuplicateColumn)
}

func TestAddColumnRowCountMismatch(t *testing.T) {
	f := New()
	require.NoError(t, f.AddColumn(NewNumericColumn("x", []float64{1, 2})))

	err := f.AddColumn(NewCategoricalColumn("y", []string{"a"}))
	require.ErrorIs(t, err, errs.ErrRowCountMismatch)
}

func TestCategoricalAccessor(t *testing.T) {
	f, err := NewFrame(
		NewCategoricalColumn("color", []string{"red", "green"}),
		NewNumericColumn("price", []float64{1, 2}),
	)
	require.NoError(t, err)

	cats, err := f.Categorical("color")
	require.NoError(t, err)
	require.Equal(t, []string{"red", "green"}, cats)

	_, err = f.Categorical("price")
	require.ErrorIs(t, err, errs.ErrNotCategorical)

	_, err = f.Categorical("missing")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestNumericAccessor(t *testing.T) {
	f, err := NewFrame(
		NewCategoricalColumn("color", []string{"red", "green"}),
		NewNumericColumn("price", []float64{1, 2}),
	)
	require.NoError(t, err)

	nums, err := f.Numeric("price")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, nums)

	_, err = f.Numeric("color")
	require.ErrorIs(t, err, errs.ErrNotNumeric)

	_, err = f.Numeric("missing")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestColumnCopiesInput(t *testing.T) {
	src := []string{"a", "b"}
	col := NewCategoricalColumn("c", src)
	src[0] = "mutated"

	require.Equal(t, []string{"a", "b"}, col.Categorical())
}

func TestColumnKind(t *testing.T) {
	num := NewNumericColumn("n", nil)
	cat := NewCategoricalColumn("c", nil)

	require.Equal(t, KindNumeric, num.Kind())
	require.Equal(t, KindCategorical, cat.Kind())
	require.Equal(t, "numeric", num.Kind().String())
	require.Equal(t, "categorical", cat.Kind().String())
	require.Nil(t, num.Categorical())
	require.Nil(t, cat.Numeric())
}
