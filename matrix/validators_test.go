// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlpca/matrix"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)
	assert.NoError(t, matrix.ValidateMulCompatible(a, b))

	// a.Cols != b.Rows
	assert.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	assert.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	assert.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2, 3}, 3))
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1, 2}, 3), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	assert.NoError(t, matrix.ValidateFinite(m))
	assert.NoError(t, matrix.ValidateFinite(hide{m}), "fallback path agrees")

	MustSet(t, m, 0, 1, math.NaN())
	assert.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
	assert.ErrorIs(t, matrix.ValidateFinite(hide{m}), matrix.ErrNaNInf)

	MustSet(t, m, 0, 1, math.Inf(1))
	assert.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)

	assert.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	assert.NoError(t, matrix.ValidateSymmetric(sym, 1e-12))
	assert.NoError(t, matrix.ValidateSymmetric(hide{sym}, 1e-12), "fallback path agrees")

	asym := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-12), matrix.ErrAsymmetry)
	assert.ErrorIs(t, matrix.ValidateSymmetric(hide{asym}, 1e-12), matrix.ErrAsymmetry)

	// Asymmetry within tolerance is accepted.
	near := NewFilledDense(t, 2, 2, []float64{2, 1, 1 + 1e-14, 2})
	assert.NoError(t, matrix.ValidateSymmetric(near, 1e-12))

	assert.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 1e-12), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateSymmetric(nil, 1e-12), matrix.ErrNilMatrix)
}
