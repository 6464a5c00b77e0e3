// SPDX-License-Identifier: MIT

// Package matrix: symmetric eigendecomposition via classical Jacobi sweeps.
// This is the deterministic reference spectral routine of the library; the
// pca package uses it for its covariance-eigen solver path and to cross-check
// the SVD path in tests.
package matrix

import (
	"fmt"
	"math"
)

// Default Jacobi parameters. Good for n ≤ a few hundred, which covers
// feature-space covariance matrices this library targets.
const (
	// DefaultEigenTol is the convergence threshold on the largest
	// off-diagonal magnitude.
	DefaultEigenTol = 1e-10

	// DefaultEigenMaxIter caps the number of Jacobi rotations.
	DefaultEigenMaxIter = 10000
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol (not nil, square,
//     |A[i,j]-A[j,i]| ≤ tol).
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in fixed i→j
//     order and apply a Jacobi rotation, accumulating rotations into Q.
//   - Stage 3: Verify convergence and read eigenvalues off the diagonal.
//
// Behavior highlights:
//   - Stable, deterministic pivot scan; fast path for *Dense updates.
//   - If |A[p,q]| ≤ tol the rotation is skipped to avoid numerical blow-ups.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - *Dense: Q whose COLUMNS are the matching eigenvectors.
//
// Errors:
//   - ErrDimensionMismatch (non-square), ErrAsymmetry (not symmetric within
//     tol), ErrEigenFailed (max off-diagonal ≥ tol after maxIter).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter·n²) per sweep scan plus O(n) per rotation, Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	// Stage 1 (Validate): notNil; Square; Symmetric.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Prepare working copy A and orthogonal accumulator Q.
	n := m.Rows()
	a, err := denseCopyOf(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	// Initialize Q as identity: Q[i,i] = 1.
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	// Stage 2 (Rotate): classical Jacobi with deterministic pivoting.
	var (
		iter           int     // rotation counter
		p, pq          int     // current pivot row and column
		maxOff, off    float64 // maxOff — current max |A[p,q]|; off — temporary
		app, aqq, apq  float64 // pivot-block entries
		aip, aiq       float64 // temporaries for A[i,p], A[i,q]
		qip, qiq       float64 // temporaries for Q[i,p], Q[i,q]
		newIP, newIQ   float64 // updated values for A[i,p] and A[i,q]
		theta, t, c, s float64 // rotation parameters
	)
	for iter = 0; iter < maxIter; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]| over the upper triangle.
		maxOff = 0
		for i = 0; i < n; i++ {
			base := i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, pq = off, i, j
				}
			}
		}

		// Converged: largest off-diagonal below tolerance.
		if maxOff < tol {
			break
		}

		// Rotation parameters from A[p,p], A[q,q], A[p,q].
		app = a.data[p*n+p]
		aqq = a.data[pq*n+pq]
		apq = a.data[p*n+pq]
		if math.Abs(apq) <= tol {
			// No-op rotation keeps determinism and prevents blow-ups.
			continue
		}
		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1))
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		// c = 1/√(1+t²), s = t·c
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply rotation to A (symmetric update).
		for i = 0; i < n; i++ {
			if i == p || i == pq {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+pq]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+pq], a.data[pq*n+i] = newIQ, newIQ
		}
		// Update diagonals and zero out A[p,q], A[q,p].
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[pq*n+pq] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+pq], a.data[pq*n+p] = 0, 0

		// Accumulate rotation into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+pq]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+pq] = s*qip + c*qiq
		}
	}

	// Stage 3 (Verify): recompute max off-diagonal after the loop.
	maxOff = 0
	for i = 0; i < n; i++ {
		base := i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	// Extract eigenvalues from the diagonal of A.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// denseCopyOf materializes any Matrix into a fresh *Dense working copy.
func denseCopyOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		cp := d.Clone().(*Dense)
		return cp, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
