// SPDX-License-Identifier: MIT

// Package pca: applying a fitted model. Transform projects samples into the
// learned basis, InverseTransform reconstructs approximate originals, and
// ReconstructionError summarizes the information lost by truncation.
// All three are pure functions of (model, argument): no state is touched,
// and identical inputs yield bit-identical outputs.
package pca

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpca/matrix"
)

// Transform projects the m×n matrix X into the retained basis, producing an
// m×k matrix. X may be the training data or out-of-sample points.
//
// Implementation:
//   - Stage 1: Validate model and X; width must equal NumFeatures
//     (ErrDimensionMismatch otherwise). Whitening additionally requires every
//     retained eigenvalue > epsilon (ErrNumerical otherwise).
//   - Stage 2: Per sample: subtract the mean, then take inner products with
//     each retained component via matrix.MatVec; divide by √λⱼ when whitening.
//
// Sample order is preserved. Complexity: O(m·n·k).
func (m *Model) Transform(X *matrix.Dense) (*matrix.Dense, error) {
	if m == nil {
		return nil, pcaErrorf(opTransform, ErrNilModel)
	}
	if X == nil {
		return nil, pcaErrorf(opTransform, fmt.Errorf("nil data matrix: %w", ErrInvalidInput))
	}
	if X.Cols() != m.n {
		return nil, pcaErrorf(opTransform, fmt.Errorf("got %d features, model has %d: %w",
			X.Cols(), m.n, ErrDimensionMismatch))
	}

	// Whitening guard: a vanishing eigenvalue would blow the division up.
	var invSqrt []float64
	if m.whiten {
		invSqrt = make([]float64, m.k)
		for j, ev := range m.eigenvalues {
			if ev <= m.eps {
				return nil, pcaErrorf(opTransform, fmt.Errorf("eigenvalue %g of component %d too small to whiten: %w",
					ev, j, ErrNumerical))
			}
			invSqrt[j] = 1.0 / math.Sqrt(ev)
		}
	}

	rows := X.Rows()
	Z, err := matrix.NewDense(rows, m.k)
	if err != nil {
		return nil, pcaErrorf(opTransform, err)
	}

	centered := make([]float64, m.n)
	for i := 0; i < rows; i++ {
		row, rowErr := X.Row(i)
		if rowErr != nil {
			return nil, pcaErrorf(opTransform, rowErr)
		}
		for j := range row {
			centered[j] = row[j] - m.mean[j]
		}

		// coords = components · centered, one inner product per component.
		coords, mvErr := matrix.MatVec(m.components, centered)
		if mvErr != nil {
			return nil, pcaErrorf(opTransform, mvErr)
		}
		for j, c := range coords {
			if m.whiten {
				c *= invSqrt[j]
			}
			if setErr := Z.Set(i, j, c); setErr != nil {
				return nil, pcaErrorf(opTransform, setErr)
			}
		}
	}

	return Z, nil
}

// InverseTransform maps projected samples back to the original feature
// space: x = mean + Σⱼ zⱼ·componentⱼ (un-whitening first when the model
// whitens). Z may be narrower than k — trailing components are simply not
// used, which is exactly the further-truncation semantics of dropping the
// weakest directions.
//
// Errors:
//   - ErrNilModel, ErrInvalidInput (nil Z).
//   - ErrDimensionMismatch when Z has more than k columns.
//
// Reconstruction is exact (up to floating-point error) only when k = n and
// no coordinates were dropped; otherwise it is the least-squares-optimal
// rank-k approximation under the learned basis. Complexity: O(m·n·k).
func (m *Model) InverseTransform(Z *matrix.Dense) (*matrix.Dense, error) {
	if m == nil {
		return nil, pcaErrorf(opInverse, ErrNilModel)
	}
	if Z == nil {
		return nil, pcaErrorf(opInverse, fmt.Errorf("nil projection matrix: %w", ErrInvalidInput))
	}
	width := Z.Cols()
	if width > m.k {
		return nil, pcaErrorf(opInverse, fmt.Errorf("got %d coordinates, model retains %d: %w",
			width, m.k, ErrDimensionMismatch))
	}

	rows := Z.Rows()
	X, err := matrix.NewDense(rows, m.n)
	if err != nil {
		return nil, pcaErrorf(opInverse, err)
	}

	// Hoist component rows out of the sample loop; they are reused m times.
	comps := make([][]float64, width)
	for j := 0; j < width; j++ {
		comp, rowErr := m.components.Row(j)
		if rowErr != nil {
			return nil, pcaErrorf(opInverse, rowErr)
		}
		comps[j] = comp
	}

	out := make([]float64, m.n)
	for i := 0; i < rows; i++ {
		copy(out, m.mean) // start from the mean offset

		for j := 0; j < width; j++ {
			c, atErr := Z.At(i, j)
			if atErr != nil {
				return nil, pcaErrorf(opInverse, atErr)
			}
			if m.whiten {
				// Undo whitening before combining.
				c *= math.Sqrt(m.eigenvalues[j])
			}
			if c == 0 {
				continue // zeroed-out coordinate contributes nothing
			}
			for f := 0; f < m.n; f++ {
				out[f] += c * comps[j][f]
			}
		}

		for f := 0; f < m.n; f++ {
			if setErr := X.Set(i, f, out[f]); setErr != nil {
				return nil, pcaErrorf(opInverse, setErr)
			}
		}
	}

	return X, nil
}

// ReconstructionError reports the mean squared reconstruction error of X
// under the model: transform, invert, and average the per-sample MSE.
// Lower values mean the retained components preserve more information.
func (m *Model) ReconstructionError(X *matrix.Dense) (float64, error) {
	if m == nil {
		return 0, pcaErrorf(opReconErr, ErrNilModel)
	}
	if X == nil || X.Rows() == 0 {
		return 0, nil
	}

	Z, err := m.Transform(X)
	if err != nil {
		return 0, err
	}
	Xr, err := m.InverseTransform(Z)
	if err != nil {
		return 0, err
	}

	rows, cols := X.Rows(), X.Cols()
	total := 0.0
	for i := 0; i < rows; i++ {
		orig, rowErr := X.Row(i)
		if rowErr != nil {
			return 0, pcaErrorf(opReconErr, rowErr)
		}
		rec, rowErr := Xr.Row(i)
		if rowErr != nil {
			return 0, pcaErrorf(opReconErr, rowErr)
		}
		sq := 0.0
		for f := 0; f < cols; f++ {
			d := orig[f] - rec[f]
			sq += d * d
		}
		total += sq / float64(cols)
	}

	return total / float64(rows), nil
}
