// SPDX-License-Identifier: MIT

// Package pca: functional configuration for Fit.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: option VALUES coming from callers are validated
//     at Fit and surface as ErrInvalidInput — constructors never panic, since
//     thresholds and component counts are routinely data-driven.
//   - Tagged selection variant: FixedCount(k) | VarianceThreshold(ratio) |
//     keep-everything, resolved to a concrete k before truncation.

package pca

// Solver selects the spectral routine used by Fit.
//
//   - SolverSVD    — singular value decomposition of the centered data matrix
//     via gonum. Numerically preferred, especially for correlated features.
//   - SolverJacobi — eigendecomposition of the covariance matrix with the
//     in-house Jacobi sweeps from the matrix package. Simpler reference
//     algorithm; produces the same basis up to numerical error.
type Solver int

const (
	// SolverSVD is the default gonum-backed SVD path.
	SolverSVD Solver = iota

	// SolverJacobi is the covariance + Jacobi reference path.
	SolverJacobi
)

// selectionMode is the tagged variant behind component selection.
type selectionMode int

const (
	selectAll       selectionMode = iota // keep all n components
	selectFixed                          // explicit k
	selectThreshold                      // smallest k reaching the ratio
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultEpsilon guards whitening divisions and the zero-variance cutoff.
	// An eigenvalue at or below this value is treated as vanishing.
	DefaultEpsilon = 1e-12

	// DefaultSolver is the spectral routine used when none is chosen.
	DefaultSolver = SolverSVD
)

// Option mutates internal options. Safe to apply repeatedly; last-writer-wins.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported; Fit accepts `...Option` and resolves them
// via gatherOptions. Values are validated inside Fit, not here.
type options struct {
	mode      selectionMode // tagged selection variant
	k         int           // explicit component count (selectFixed)
	threshold float64       // variance ratio target (selectThreshold)
	whiten    bool          // divide projections by sqrt(eigenvalue)
	eps       float64       // vanishing-eigenvalue guard
	solver    Solver        // spectral routine
}

// WithComponents retains exactly k principal components.
// Fit fails with ErrInvalidInput unless 1 ≤ k ≤ n (n = feature count).
// Overrides any earlier WithVarianceThreshold (last-writer-wins).
func WithComponents(k int) Option {
	return func(o *options) {
		o.mode = selectFixed
		o.k = k
	}
}

// WithVarianceThreshold retains the smallest leading set of components whose
// cumulative explained-variance ratio first reaches or exceeds ratio.
// Fit fails with ErrInvalidInput unless ratio ∈ (0, 1].
// Overrides any earlier WithComponents (last-writer-wins).
func WithVarianceThreshold(ratio float64) Option {
	return func(o *options) {
		o.mode = selectThreshold
		o.threshold = ratio
	}
}

// WithWhitening rescales each projected coordinate by the inverse square
// root of its component's eigenvalue, producing unit-variance projected
// features. Transform fails with ErrNumerical when a retained eigenvalue is
// at or below the configured epsilon.
func WithWhitening() Option {
	return func(o *options) { o.whiten = true }
}

// WithEpsilon sets the vanishing-eigenvalue guard used by whitening and the
// zero-variance checks. Fit fails with ErrInvalidInput unless eps > 0 and
// finite.
func WithEpsilon(eps float64) Option {
	return func(o *options) { o.eps = eps }
}

// WithSolver selects the spectral routine. Fit fails with ErrInvalidInput on
// an unknown Solver value.
func WithSolver(s Solver) Option {
	return func(o *options) { o.solver = s }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; validation happens in Fit so misuse surfaces
// as ErrInvalidInput rather than a panic.
func gatherOptions(user ...Option) options {
	o := options{
		mode:   selectAll,
		eps:    DefaultEpsilon,
		solver: DefaultSolver,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
