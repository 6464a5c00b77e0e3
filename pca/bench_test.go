// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlpca/matrix"
	"github.com/katalvlaran/lvlpca/pca"
)

// benchData builds a deterministic m×n matrix with mixed-frequency waves so
// the covariance has a non-trivial spectrum.
func benchData(m, n int) *matrix.Dense {
	rows := make([][]float64, m)
	for i := 0; i < m; i++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			row[j] = math.Sin(float64(i)*0.1+float64(j)) + 0.25*math.Cos(float64(i*j)*0.01)
		}
		rows[i] = row
	}
	X, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		panic(err)
	}
	return X
}

func BenchmarkFit_SVD(b *testing.B) {
	X := benchData(256, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pca.Fit(X, pca.WithSolver(pca.SolverSVD)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFit_Jacobi(b *testing.B) {
	X := benchData(256, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pca.Fit(X, pca.WithSolver(pca.SolverJacobi)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransform(b *testing.B) {
	X := benchData(256, 16)
	model, err := pca.Fit(X, pca.WithComponents(4))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := model.Transform(X); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInverseTransform(b *testing.B) {
	X := benchData(256, 16)
	model, err := pca.Fit(X, pca.WithComponents(4))
	if err != nil {
		b.Fatal(err)
	}
	Z, err := model.Transform(X)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := model.InverseTransform(Z); err != nil {
			b.Fatal(err)
		}
	}
}
