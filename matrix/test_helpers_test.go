// SPDX-License-Identifier: MIT

// Shared helpers for matrix package tests: must-style constructors and an
// interface wrapper that hides *Dense so kernels exercise their fallback
// paths.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlpca/matrix"
)

// hide wraps a Matrix so type assertions on *Dense fail and kernels take the
// generic At/Set path.
type hide struct{ matrix.Matrix }

// MustDense builds a rows×cols Dense or aborts the test.
func MustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}
	return m
}

// NewFilledDense builds a Dense and fills it row-major from vals.
func NewFilledDense(t *testing.T, rows, cols int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != rows*cols {
		t.Fatalf("NewFilledDense: got %d values, want %d", len(vals), rows*cols)
	}
	m := MustDense(t, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			MustSet(t, m, i, j, vals[i*cols+j])
		}
	}
	return m
}

// MustAt reads (i,j) or aborts the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// MustSet writes (i,j) or aborts the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// CompareClose fails unless a and b agree elementwise within tol.
func CompareClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > tol {
				t.Fatalf("mismatch at [%d,%d]: %g vs %g", i, j, av, bv)
			}
		}
	}
}

// sliceClose fails unless two float slices agree elementwise within tol.
func sliceClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("mismatch at %d: got %g, want %g", i, got[i], want[i])
		}
	}
}
