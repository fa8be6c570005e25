package contrast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

const tolerance = 1e-9

func TestHelmertThreeLevels(t *testing.T) {
	m := Helmert(3)

	expected := Matrix{
		{-1, -1},
		{1, -1},
		{0, 2},
	}
	require.Equal(t, expected, m)
}

func TestSumThreeLevels(t *testing.T) {
	m := Sum(3)

	expected := Matrix{
		{1, 0},
		{0, 1},
		{-1, -1},
	}
	require.Equal(t, expected, m)
}

func TestBackwardDifferenceFourLevels(t *testing.T) {
	m := BackwardDifference(4)

	expected := Matrix{
		{-0.75, -0.5, -0.25},
		{0.25, -0.5, -0.25},
		{0.25, 0.5, -0.25},
		{0.25, 0.5, 0.75},
	}

	require.Equal(t, 4, m.NumLevels())
	require.Equal(t, 3, m.NumColumns())
	for i := range expected {
		for j := range expected[i] {
			require.InDelta(t, expected[i][j], m[i][j], tolerance, "entry (%d,%d)", i, j)
		}
	}
}

func TestPolynomialThreeLevels(t *testing.T) {
	m := Polynomial(3)

	// Known linear and quadratic contrasts for 3 equally spaced levels.
	linear := []float64{-1 / math.Sqrt2, 0, 1 / math.Sqrt2}
	quadratic := []float64{1 / math.Sqrt(6), -2 / math.Sqrt(6), 1 / math.Sqrt(6)}

	require.Equal(t, 3, m.NumLevels())
	require.Equal(t, 2, m.NumColumns())
	for i := 0; i < 3; i++ {
		require.InDelta(t, linear[i], m[i][0], tolerance, "linear contrast row %d", i)
		require.InDelta(t, quadratic[i], m[i][1], tolerance, "quadratic contrast row %d", i)
	}
}

func TestPolynomialOrthonormal(t *testing.T) {
	for _, k := range []int{2, 3, 5, 8} {
		m := Polynomial(k)

		for a := 0; a < m.NumColumns(); a++ {
			var norm float64
			for i := 0; i < k; i++ {
				norm += m[i][a] * m[i][a]
			}
			require.InDelta(t, 1.0, norm, tolerance, "k=%d column %d should have unit norm", k, a)

			for b := a + 1; b < m.NumColumns(); b++ {
				var dot float64
				for i := 0; i < k; i++ {
					dot += m[i][a] * m[i][b]
				}
				require.InDelta(t, 0.0, dot, tolerance, "k=%d columns %d,%d should be orthogonal", k, a, b)
			}
		}
	}
}

func TestColumnsSumToZero(t *testing.T) {
	builders := map[string]func(int) Matrix{
		"helmert":             Helmert,
		"sum":                 Sum,
		"backward_difference": BackwardDifference,
		"polynomial":          Polynomial,
	}

	for name, build := range builders {
		for _, k := range []int{2, 4, 6} {
			m := build(k)
			for j := 0; j < m.NumColumns(); j++ {
				var sum float64
				for i := 0; i < k; i++ {
					sum += m[i][j]
				}
				require.InDelta(t, 0.0, sum, tolerance, "%s k=%d column %d should sum to zero", name, k, j)
			}
		}
	}
}

func TestDegenerateSizes(t *testing.T) {
	for name, build := range map[string]func(int) Matrix{
		"helmert":             Helmert,
		"sum":                 Sum,
		"backward_difference": BackwardDifference,
		"polynomial":          Polynomial,
	} {
		m0 := build(0)
		require.Equal(t, 0, m0.NumLevels(), name)
		require.Equal(t, 0, m0.NumColumns(), name)

		m1 := build(1)
		require.Equal(t, 1, m1.NumLevels(), name)
		require.Equal(t, 0, m1.NumColumns(), name)
	}
}

func TestRowOutOfRange(t *testing.T) {
	m := Helmert(3)

	row := m.Row(5)
	require.Equal(t, []float64{0, 0}, row)

	row = m.Row(-1)
	require.Equal(t, []float64{0, 0}, row)
}

func TestForStrategy(t *testing.T) {
	for _, st := range []format.StrategyType{
		format.StrategyHelmert,
		format.StrategySum,
		format.StrategyBackwardDifference,
		format.StrategyPolynomial,
	} {
		m, err := ForStrategy(st, 4)
		require.NoError(t, err)
		require.Equal(t, 4, m.NumLevels())
		require.Equal(t, 3, m.NumColumns())
	}

	_, err := ForStrategy(format.StrategyOrdinal, 4)
	require.ErrorIs(t, err, errs.ErrUnknownStrategy)
}
