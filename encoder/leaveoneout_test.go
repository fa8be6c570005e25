package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/frame"
)

func looTrainFrame(t *testing.T) *frame.Frame {
	t.Helper()

	return mustFrame(t,
		frame.NewCategoricalColumn("cat", []string{"A", "A", "B"}),
		frame.NewNumericColumn("y", []float64{10, 20, 30}),
	)
}

func TestLeaveOneOutFitTransform(t *testing.T) {
	enc, err := New(format.StrategyLeaveOneOut, WithColumns("cat"), WithTargetColumn("y"))
	require.NoError(t, err)

	out, err := enc.FitTransform(looTrainFrame(t))
	require.NoError(t, err)
	require.True(t, enc.IsFitted())

	encoded, err := out.Numeric("cat")
	require.NoError(t, err)
	// Row 0 (A): mean of the other A = 20.
	// Row 1 (A): mean of the other A = 10.
	// Row 2 (B): no other B rows, global mean of {10,20,30} = 20.
	require.Equal(t, []float64{20, 10, 20}, encoded)
}

func TestLeaveOneOutDegenerateDiagnostic(t *testing.T) {
	enc, err := New(format.StrategyLeaveOneOut, WithColumns("cat"), WithTargetColumn("y"))
	require.NoError(t, err)

	_, err = enc.FitTransform(looTrainFrame(t))
	require.NoError(t, err)

	diags := enc.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, "cat", diags[0].Column)
	require.Equal(t, "B", diags[0].Category)
}

func TestLeaveOneOutTransformOnNewData(t *testing.T) {
	// A plain transform after fit has no own row to exclude; it uses the
	// per-category means, equivalent to target encoding.
	enc, err := New(format.StrategyLeaveOneOut, WithColumns("cat"), WithTargetColumn("y"))
	require.NoError(t, err)
	require.NoError(t, enc.Fit(looTrainFrame(t)))

	out, err := enc.Transform(mustFrame(t, frame.NewCategoricalColumn("cat", []string{"A", "B", "C"})))
	require.NoError(t, err)

	encoded, err := out.Numeric("cat")
	require.NoError(t, err)
	require.Equal(t, []float64{15, 30, 20}, encoded)
}

func TestLeaveOneOutMatchesTargetOnNewData(t *testing.T) {
	train := looTrainFrame(t)
	probe := mustFrame(t, frame.NewCategoricalColumn("cat", []string{"B", "A", "unseen"}))

	loo, err := New(format.StrategyLeaveOneOut, WithColumns("cat"), WithTargetColumn("y"))
	require.NoError(t, err)
	require.NoError(t, loo.Fit(train))

	target, err := New(format.StrategyTarget, WithColumns("cat"), WithTargetColumn("y"))
	require.NoError(t, err)
	require.NoError(t, target.Fit(train))

	looOut, err := loo.Transform(probe)
	require.NoError(t, err)
	targetOut, err := target.Transform(probe)
	require.NoError(t, err)

	looVals, err := looOut.Numeric("cat")
	require.NoError(t, err)
	targetVals, err := targetOut.Numeric("cat")
	require.NoError(t, err)
	require.Equal(t, targetVals, looVals)
}

func TestFitTransformEquivalenceForStatelessCoupling(t *testing.T) {
	// For every strategy except leave-one-out, FitTransform must equal Fit
	// followed by Transform.
	train := mustFrame(t,
		frame.NewCategoricalColumn("cat", []string{"A", "B", "A", "C"}),
		frame.NewNumericColumn("y", []float64{1, 2, 3, 4}),
	)

	strategies := []format.StrategyType{
		format.StrategyOrdinal,
		format.StrategyOneHot,
		format.StrategyBinary,
		format.StrategyHashing,
		format.StrategyTarget,
		format.StrategyHelmert,
		format.StrategySum,
		format.StrategyBackwardDifference,
		format.StrategyPolynomial,
	}

	for _, st := range strategies {
		opts := []Option{WithColumns("cat")}
		if st.UsesTarget() {
			opts = append(opts, WithTargetColumn("y"))
		}

		enc1, err := New(st, opts...)
		require.NoError(t, err, "strategy %s", st)
		coupled, err := enc1.FitTransform(train)
		require.NoError(t, err, "strategy %s", st)

		enc2, err := New(st, opts...)
		require.NoError(t, err, "strategy %s", st)
		require.NoError(t, enc2.Fit(train))
		separate, err := enc2.Transform(train)
		require.NoError(t, err, "strategy %s", st)

		require.Equal(t, separate.Names(), coupled.Names(), "strategy %s", st)
		for _, name := range separate.Names() {
			want, _ := separate.Column(name)
			got, _ := coupled.Column(name)
			require.Equal(t, want.Numeric(), got.Numeric(), "strategy %s column %s", st, name)
		}
	}
}
