// SPDX-License-Identifier: MIT

// Package pca: the fitted model value and its read-only accessors.
// A Model is constructed by Fit (or Load), never mutated afterwards, and is
// safe to share across goroutines. Accessors hand out defensive copies so a
// caller can never corrupt shared state.
package pca

import "github.com/katalvlaran/lvlpca/matrix"

// Model is an immutable fitted PCA transform.
//
// Invariants (established by Fit, preserved by Load):
//   - components is k×n; every row has unit L2 norm; rows are mutually
//     orthogonal within numerical tolerance.
//   - eigenvalues has length k, is non-increasing, and each entry is ≥ 0.
//   - ratios has length n (the FULL spectrum, not just the retained part),
//     sums to 1 within tolerance when total variance is positive, and is
//     all zeros when the training data had no variance.
//   - mean has length n.
type Model struct {
	mean        []float64     // per-feature training means, len n
	components  *matrix.Dense // k×n; row i is the i-th principal direction
	eigenvalues []float64     // retained variances, len k, descending
	ratios      []float64     // explained-variance ratios over ALL n components
	n           int           // original feature count
	k           int           // retained component count
	whiten      bool          // whitening requested at fit time
	eps         float64       // vanishing-eigenvalue guard
}

// NumComponents returns k, the number of retained components.
func (m *Model) NumComponents() int {
	if m == nil {
		return 0
	}
	return m.k
}

// NumFeatures returns n, the original feature count.
func (m *Model) NumFeatures() int {
	if m == nil {
		return 0
	}
	return m.n
}

// Whitened reports whether projections are whitened.
func (m *Model) Whitened() bool {
	return m != nil && m.whiten
}

// Mean returns a copy of the per-feature training mean vector (length n).
func (m *Model) Mean() []float64 {
	if m == nil {
		return nil
	}
	out := make([]float64, len(m.mean))
	copy(out, m.mean)

	return out
}

// Components returns a copy of the retained principal directions as a k×n
// matrix; row i is the unit eigenvector with the i-th largest eigenvalue.
// Intended for callers that visualize or reconstruct outside
// InverseTransform.
func (m *Model) Components() *matrix.Dense {
	if m == nil {
		return nil
	}
	return m.components.Clone().(*matrix.Dense)
}

// Eigenvalues returns a copy of the retained eigenvalues (length k,
// non-increasing). Each is the variance of the data along its component.
func (m *Model) Eigenvalues() []float64 {
	if m == nil {
		return nil
	}
	out := make([]float64, len(m.eigenvalues))
	copy(out, m.eigenvalues)

	return out
}

// ExplainedVarianceRatio returns a copy of the per-component explained
// variance ratios over the FULL spectrum (length n, not k), so the sequence
// sums to 1 and truncation loss stays visible.
func (m *Model) ExplainedVarianceRatio() []float64 {
	if m == nil {
		return nil
	}
	out := make([]float64, len(m.ratios))
	copy(out, m.ratios)

	return out
}

// CumulativeExplainedVariance returns the running sum of
// ExplainedVarianceRatio (length n, non-decreasing).
func (m *Model) CumulativeExplainedVariance() []float64 {
	if m == nil {
		return nil
	}
	out := make([]float64, len(m.ratios))
	sum := 0.0
	for i, r := range m.ratios {
		sum += r
		out[i] = sum
	}

	return out
}

// TotalVarianceRetained returns the fraction of total variance captured by
// the k retained components.
func (m *Model) TotalVarianceRetained() float64 {
	if m == nil {
		return 0
	}
	sum := 0.0
	for i := 0; i < m.k && i < len(m.ratios); i++ {
		sum += m.ratios[i]
	}

	return sum
}
