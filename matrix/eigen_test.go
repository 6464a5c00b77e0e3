// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlpca/matrix"
)

func TestEigen_DiagonalMatrix(t *testing.T) {
	t.Parallel()

	// Already diagonal: eigenvalues are the diagonal, Q stays identity.
	m := NewFilledDense(t, 3, 3, []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	})

	eigs, q, err := matrix.Eigen(m, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	assert.NoError(t, err)
	sliceClose(t, eigs, []float64{3, 1, 2}, epsTight)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, MustAt(t, q, i, j), epsTight)
		}
	}
}

func TestEigen_Known2x2(t *testing.T) {
	t.Parallel()

	// [[2,1],[1,2]] has eigenvalues 1 and 3.
	m := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})

	eigs, q, err := matrix.Eigen(m, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	assert.NoError(t, err)

	sorted := append([]float64(nil), eigs...)
	sort.Float64s(sorted)
	sliceClose(t, sorted, []float64{1, 3}, 1e-9)

	// Columns of Q are orthonormal.
	assertOrthonormalColumns(t, q, 1e-9)
}

func TestEigen_ReconstructsMatrix(t *testing.T) {
	t.Parallel()

	// Check A ≈ Q·diag(λ)·Qᵀ for a generic symmetric matrix.
	m := NewFilledDense(t, 3, 3, []float64{
		4, 1, 0.5,
		1, 3, -1,
		0.5, -1, 2,
	})

	eigs, q, err := matrix.Eigen(m, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	assert.NoError(t, err)

	// D = diag(eigs)
	d := MustDense(t, 3, 3)
	for i, ev := range eigs {
		MustSet(t, d, i, i, ev)
	}
	qd, err := matrix.Mul(q, d)
	assert.NoError(t, err)
	qt, err := matrix.Transpose(q)
	assert.NoError(t, err)
	rec, err := matrix.Mul(qd, qt)
	assert.NoError(t, err)

	CompareClose(t, rec, m, 1e-8)
}

func TestEigen_RejectsAsymmetric(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	_, _, err := matrix.Eigen(m, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestEigen_RejectsNonSquare(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	_, _, err := matrix.Eigen(m, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// assertOrthonormalColumns checks QᵀQ ≈ I within tol.
func assertOrthonormalColumns(t *testing.T, q matrix.Matrix, tol float64) {
	t.Helper()
	n := q.Cols()
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			dot := 0.0
			for i := 0; i < q.Rows(); i++ {
				dot += MustAt(t, q, i, a) * MustAt(t, q, i, b)
			}
			want := 0.0
			if a == b {
				want = 1.0
			}
			if math.Abs(dot-want) > tol {
				t.Fatalf("columns %d,%d: dot=%g want %g", a, b, dot, want)
			}
		}
	}
}
