package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/frame"
)

// ==============================================================================
// Helper Functions

func mustFrame(t *testing.T, columns ...frame.Column) *frame.Frame {
	t.Helper()
	f, err := frame.NewFrame(columns...)
	require.NoError(t, err)

	return f
}

func trainFrame(t *testing.T) *frame.Frame {
	t.Helper()

	return mustFrame(t,
		frame.NewCategoricalColumn("color", []string{"red", "green", "blue", "red"}),
		frame.NewNumericColumn("price", []float64{1.5, 2.5, 3.5, 4.5}),
	)
}

// ==============================================================================
// Configuration

func TestNewUnknownStrategy(t *testing.T) {
	_, err := New(format.StrategyType(0xFF))
	require.ErrorIs(t, err, errs.ErrUnknownStrategy)
}

func TestNewFromName(t *testing.T) {
	names := []string{
		"ordinal", "one_hot", "binary", "hashing",
		"helmert", "sum", "backward_difference", "polynomial",
	}
	for _, name := range names {
		enc, err := NewFromName(name)
		require.NoError(t, err, "strategy %s", name)
		require.Equal(t, name, enc.Config().Strategy().String())
	}

	// Case-insensitive.
	enc, err := NewFromName("ORDINAL")
	require.NoError(t, err)
	require.Equal(t, format.StrategyOrdinal, enc.Config().Strategy())

	_, err = NewFromName("bogus")
	require.ErrorIs(t, err, errs.ErrUnknownStrategy)
}

func TestNewTargetStrategiesRequireTarget(t *testing.T) {
	for _, st := range []format.StrategyType{format.StrategyTarget, format.StrategyLeaveOneOut} {
		_, err := New(st)
		require.ErrorIs(t, err, errs.ErrMissingTarget, "strategy %s", st)

		_, err = New(st, WithTargetColumn("y"))
		require.NoError(t, err, "strategy %s", st)
	}
}

func TestNewHashingInvalidWidth(t *testing.T) {
	_, err := New(format.StrategyHashing, WithHashWidth(0))
	require.ErrorIs(t, err, errs.ErrInvalidWidth)

	_, err = New(format.StrategyHashing, WithHashWidth(-3))
	require.ErrorIs(t, err, errs.ErrInvalidWidth)
}

func TestNewHashingInvalidHashFunc(t *testing.T) {
	_, err := New(format.StrategyHashing, WithHashFunc(format.HashType(0xEE)))
	require.ErrorIs(t, err, errs.ErrInvalidHashFunc)
}

// ==============================================================================
// Life cycle

func TestTransformBeforeFit(t *testing.T) {
	enc, err := New(format.StrategyOrdinal)
	require.NoError(t, err)
	require.False(t, enc.IsFitted())

	_, err = enc.Transform(trainFrame(t))
	require.ErrorIs(t, err, errs.ErrNotFitted)
}

func TestFitMissingColumn(t *testing.T) {
	enc, err := New(format.StrategyOrdinal, WithColumns("missing"))
	require.NoError(t, err)

	err = enc.Fit(trainFrame(t))
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
	require.False(t, enc.IsFitted())
}

func TestFitNonCategoricalColumn(t *testing.T) {
	enc, err := New(format.StrategyOrdinal, WithColumns("price"))
	require.NoError(t, err)

	err = enc.Fit(trainFrame(t))
	require.ErrorIs(t, err, errs.ErrNotCategorical)
}

func TestFitNoCategoricalColumns(t *testing.T) {
	enc, err := New(format.StrategyOrdinal)
	require.NoError(t, err)

	f := mustFrame(t, frame.NewNumericColumn("x", []float64{1, 2}))
	err = enc.Fit(f)
	require.ErrorIs(t, err, errs.ErrNoColumns)
}

func TestRefitReplacesState(t *testing.T) {
	enc, err := New(format.StrategyOrdinal, WithColumns("color"))
	require.NoError(t, err)

	require.NoError(t, enc.Fit(trainFrame(t)))

	// Re-fit with a different vocabulary.
	f2 := mustFrame(t, frame.NewCategoricalColumn("color", []string{"cyan", "magenta"}))
	require.NoError(t, enc.Fit(f2))

	out, err := enc.Transform(mustFrame(t, frame.NewCategoricalColumn("color", []string{"red", "cyan"})))
	require.NoError(t, err)

	encoded, err := out.Numeric("color")
	require.NoError(t, err)
	// "red" is unseen after the re-fit, "cyan" is code 1.
	require.Equal(t, []float64{0, 1}, encoded)
}

// ==============================================================================
// Frame assembly

func TestTransformPreservesRowCountAndPassthrough(t *testing.T) {
	enc, err := New(format.StrategyOrdinal, WithColumns("color"))
	require.NoError(t, err)

	train := trainFrame(t)
	require.NoError(t, enc.Fit(train))

	out, err := enc.Transform(train)
	require.NoError(t, err)

	require.Equal(t, train.NumRows(), out.NumRows())

	price, err := out.Numeric("price")
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 2.5, 3.5, 4.5}, price)
}

func TestTransformReplacesColumnInPlace(t *testing.T) {
	f := mustFrame(t,
		frame.NewNumericColumn("before", []float64{0, 0}),
		frame.NewCategoricalColumn("color", []string{"a", "b"}),
		frame.NewNumericColumn("after", []float64{1, 1}),
	)

	enc, err := New(format.StrategyOneHot, WithColumns("color"))
	require.NoError(t, err)
	require.NoError(t, enc.Fit(f))

	out, err := enc.Transform(f)
	require.NoError(t, err)
	require.Equal(t, []string{"before", "color_a", "color_b", "after"}, out.Names())
}

func TestTransformAutoDesignatesAllCategorical(t *testing.T) {
	f := mustFrame(t,
		frame.NewCategoricalColumn("c1", []string{"a", "b"}),
		frame.NewCategoricalColumn("c2", []string{"x", "y"}),
		frame.NewNumericColumn("n", []float64{1, 2}),
	)

	enc, err := New(format.StrategyOrdinal)
	require.NoError(t, err)
	require.NoError(t, enc.Fit(f))

	out, err := enc.Transform(f)
	require.NoError(t, err)

	for _, name := range []string{"c1", "c2"} {
		encoded, err := out.Numeric(name)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 2}, encoded)
	}
}

func TestTransformMissingDesignatedColumn(t *testing.T) {
	enc, err := New(format.StrategyOrdinal, WithColumns("color"))
	require.NoError(t, err)
	require.NoError(t, enc.Fit(trainFrame(t)))

	f := mustFrame(t, frame.NewNumericColumn("price", []float64{1}))
	_, err = enc.Transform(f)
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestTransformIdempotent(t *testing.T) {
	strategies := []format.StrategyType{
		format.StrategyOrdinal,
		format.StrategyOneHot,
		format.StrategyBinary,
		format.StrategyHashing,
		format.StrategyHelmert,
		format.StrategySum,
		format.StrategyBackwardDifference,
		format.StrategyPolynomial,
	}

	train := trainFrame(t)
	for _, st := range strategies {
		enc, err := New(st, WithColumns("color"))
		require.NoError(t, err, "strategy %s", st)
		require.NoError(t, enc.Fit(train))

		out1, err := enc.Transform(train)
		require.NoError(t, err)
		out2, err := enc.Transform(train)
		require.NoError(t, err)

		require.Equal(t, out1.Names(), out2.Names(), "strategy %s", st)
		for _, name := range out1.Names() {
			col1, _ := out1.Column(name)
			col2, _ := out2.Column(name)
			require.Equal(t, col1.Numeric(), col2.Numeric(), "strategy %s column %s", st, name)
		}
	}
}

func TestEmptyTrainingColumn(t *testing.T) {
	// Zero-category fits must not fail, and transforms against them follow
	// the all-unseen path.
	strategies := []format.StrategyType{
		format.StrategyOrdinal,
		format.StrategyOneHot,
		format.StrategyBinary,
		format.StrategyHashing,
		format.StrategyHelmert,
		format.StrategySum,
		format.StrategyBackwardDifference,
		format.StrategyPolynomial,
	}

	empty := mustFrame(t, frame.NewCategoricalColumn("color", nil))
	// The pass-through column keeps the row count observable even when a
	// zero-category fit emits no encoded columns (one-hot, contrast).
	newData := mustFrame(t,
		frame.NewCategoricalColumn("color", []string{"never_seen"}),
		frame.NewNumericColumn("n", []float64{42}),
	)

	for _, st := range strategies {
		enc, err := New(st, WithColumns("color"))
		require.NoError(t, err, "strategy %s", st)
		require.NoError(t, enc.Fit(empty), "strategy %s", st)

		out, err := enc.Transform(newData)
		require.NoError(t, err, "strategy %s", st)
		require.Equal(t, 1, out.NumRows(), "strategy %s", st)
	}
}
