// SPDX-License-Identifier: MIT

package pca_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpca/matrix"
	"github.com/katalvlaran/lvlpca/pca"
)

// ExampleFit fits three collinear points. A single direction carries all
// the variance, so a 95% threshold keeps exactly one component.
func ExampleFit() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{0, 0},
		{1, 1},
		{2, 2},
	})

	model, _ := pca.Fit(X, pca.WithVarianceThreshold(0.95))

	fmt.Println("components:", model.NumComponents())
	fmt.Printf("first ratio: %.2f\n", model.ExplainedVarianceRatio()[0])
	// Output:
	// components: 1
	// first ratio: 1.00
}

// ExampleModel_Transform projects collinear points onto their principal
// axis: the projection is the signed distance from the mean along the line.
func ExampleModel_Transform() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{0, 0},
		{1, 1},
		{2, 2},
	})

	model, _ := pca.Fit(X, pca.WithComponents(1))
	Z, _ := model.Transform(X)

	for i := 0; i < Z.Rows(); i++ {
		v, _ := Z.At(i, 0)
		fmt.Printf("%.3f\n", v)
	}
	// Output:
	// -1.414
	// 0.000
	// 1.414
}
