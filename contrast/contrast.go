// Package contrast constructs the contrast matrices used by catenc's
// contrast encoding strategies.
//
// A contrast matrix for k category levels has k rows and k-1 columns; a
// category's encoded representation is its row. The constructions follow
// the standard statistical definitions (the same matrices R's contr.helmert,
// contr.sum, contr.poly and the usual backward-difference coding produce):
//
//   - Helmert: compares each level to the mean of the preceding levels.
//   - Sum: compares each level to the grand mean, with the last level as
//     the implicit reference.
//   - Backward difference: compares each level to the immediately
//     preceding level.
//   - Polynomial: orthonormal polynomial contrasts of increasing degree,
//     built from the QR decomposition of the centered Vandermonde matrix.
package contrast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// Matrix is a k×(k-1) contrast matrix, one row per category level.
type Matrix [][]float64

// NumLevels returns the number of category levels (rows).
func (m Matrix) NumLevels() int {
	return len(m)
}

// NumColumns returns the number of contrast columns, k-1 for k levels.
func (m Matrix) NumColumns() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Row returns the contrast row for the given level index, or a zero row if
// the index is out of range (the unseen-category path).
func (m Matrix) Row(level int) []float64 {
	if level < 0 || level >= len(m) {
		return make([]float64, m.NumColumns())
	}

	return m[level]
}

// ForStrategy builds the contrast matrix of the given contrast strategy for
// k levels. Returns ErrUnknownStrategy for non-contrast strategies.
func ForStrategy(strategy format.StrategyType, k int) (Matrix, error) {
	switch strategy {
	case format.StrategyHelmert:
		return Helmert(k), nil
	case format.StrategySum:
		return Sum(k), nil
	case format.StrategyBackwardDifference:
		return BackwardDifference(k), nil
	case format.StrategyPolynomial:
		return Polynomial(k), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a contrast strategy", errs.ErrUnknownStrategy, strategy)
	}
}

// newMatrix allocates a k×(k-1) zero matrix. k < 2 yields k zero-width rows.
func newMatrix(k int) Matrix {
	cols := k - 1
	if cols < 0 {
		cols = 0
	}

	m := make(Matrix, k)
	for i := range m {
		m[i] = make([]float64, cols)
	}

	return m
}

// Helmert builds the Helmert contrast matrix for k levels.
//
// Column j contrasts level j+1 against the mean of levels 0..j: rows 0..j
// hold -1, row j+1 holds j+1, later rows hold 0.
func Helmert(k int) Matrix {
	m := newMatrix(k)
	for j := 0; j < k-1; j++ {
		for i := 0; i <= j; i++ {
			m[i][j] = -1
		}
		m[j+1][j] = float64(j + 1)
	}

	return m
}

// Sum builds the sum (deviation) contrast matrix for k levels.
//
// Column j holds 1 at level j and -1 at the last level, making the last
// level the implicit reference against the grand mean.
func Sum(k int) Matrix {
	m := newMatrix(k)
	for j := 0; j < k-1; j++ {
		m[j][j] = 1
		m[k-1][j] = -1
	}

	return m
}

// BackwardDifference builds the backward-difference contrast matrix for k
// levels.
//
// Column j contrasts level j+1 against level j: rows 0..j hold -(k-1-j)/k,
// rows j+1..k-1 hold (j+1)/k.
func BackwardDifference(k int) Matrix {
	m := newMatrix(k)
	for j := 0; j < k-1; j++ {
		lower := -float64(k-1-j) / float64(k)
		upper := float64(j+1) / float64(k)
		for i := 0; i < k; i++ {
			if i <= j {
				m[i][j] = lower
			} else {
				m[i][j] = upper
			}
		}
	}

	return m
}

// Polynomial builds the orthonormal polynomial contrast matrix for k levels.
//
// The construction mirrors the classical one for equally spaced levels:
// build the Vandermonde matrix on centered level scores 1..k, take its QR
// decomposition, fix column signs with the diagonal of R, normalize each
// column to unit length, and drop the degree-0 column. Column j then holds
// the degree-(j+1) orthogonal polynomial contrast.
func Polynomial(k int) Matrix {
	if k < 2 {
		return newMatrix(k)
	}

	// Centered level scores.
	mean := float64(k+1) / 2
	scores := make([]float64, k)
	for i := 0; i < k; i++ {
		scores[i] = float64(i+1) - mean
	}

	// Vandermonde matrix: column j holds scores^j.
	vand := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		pow := 1.0
		for j := 0; j < k; j++ {
			vand.Set(i, j, pow)
			pow *= scores[i]
		}
	}

	var qr mat.QR
	qr.Factorize(vand)

	var q, r mat.Dense
	qr.QTo(&q)
	qr.RTo(&r)

	m := newMatrix(k)
	for j := 1; j < k; j++ {
		// Sign correction via the diagonal of R, then unit normalization.
		sign := 1.0
		if r.At(j, j) < 0 {
			sign = -1.0
		}

		var norm float64
		for i := 0; i < k; i++ {
			v := q.At(i, j) * sign
			norm += v * v
		}
		norm = math.Sqrt(norm)

		for i := 0; i < k; i++ {
			m[i][j-1] = q.At(i, j) * sign / norm
		}
	}

	return m
}
