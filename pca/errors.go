// SPDX-License-Identifier: MIT
// Package pca: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the pca
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package pca

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "pca: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidInput marks malformed or degenerate fit input and bad option
	// values: fewer than two samples, zero features, NaN/±Inf entries,
	// a component count outside [1, n], or a variance threshold outside (0,1].
	ErrInvalidInput = errors.New("pca: invalid input")

	// ErrDimensionMismatch indicates that the feature count of a Transform or
	// InverseTransform argument disagrees with the fitted model.
	ErrDimensionMismatch = errors.New("pca: dimension mismatch")

	// ErrNumerical signals a numerical breakdown: the factorization failed to
	// converge, whitening would divide by a vanishing eigenvalue, or a
	// variance threshold cannot be met because total variance is zero.
	ErrNumerical = errors.New("pca: numerical failure")

	// ErrNilModel indicates a method call on a nil *Model.
	ErrNilModel = errors.New("pca: nil model")

	// ErrBadRecord marks a persisted model record that is structurally
	// inconsistent: unknown version, ragged components, non-finite values,
	// or disagreeing lengths.
	ErrBadRecord = errors.New("pca: bad model record")
)
