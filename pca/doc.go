// Package pca fits, applies, and inverts Principal Component Analysis
// transforms over in-memory feature matrices.
//
// 🚀 What is PCA?
//
//	PCA rotates a dataset's coordinate system so the axes line up with the
//	directions of maximal variance (the eigenvectors of the covariance
//	matrix). Keeping only the strongest directions gives a compact,
//	decorrelated representation. It's widely used for:
//	  • Dimensionality reduction before classification/clustering
//	  • Decorrelating features and whitening
//	  • Lossy compression & denoising of numeric data
//	  • 2-D/3-D embedding of high-dimensional points
//
// ✨ Key features:
//   - Fit → immutable Model: mean, unit eigenvectors sorted by variance,
//     explained-variance ratios against the FULL spectrum
//   - Component selection: fixed count or variance-threshold resolution
//   - Transform / InverseTransform, with optional whitening
//   - Deterministic output: stable eigenvalue ordering and a fixed
//     sign convention (largest-magnitude coordinate made positive)
//   - Two solver paths: gonum SVD (default, numerically robust) and the
//     in-house Jacobi covariance eigensolver (reference)
//   - Versioned JSON persistence via Model.Save / Load
//
// ⚙️ Usage:
//
//	X, err := matrix.NewDenseFromRows(samples)   // m×n, rows are samples
//	if err != nil { ... }                        // ragged input fails here
//
//	model, err := pca.Fit(X, pca.WithVarianceThreshold(0.95))
//	if err != nil { ... }
//
//	Z, err := model.Transform(X)                 // m×k projection
//	Xr, err := model.InverseTransform(Z)         // m×n reconstruction
//
// Errors are package sentinels checked via errors.Is: ErrInvalidInput for
// malformed fit input or option values, ErrDimensionMismatch when a matrix
// width disagrees with the fitted model, ErrNumerical for factorization or
// whitening breakdowns.
//
// Performance:
//
//   - Fit: O(m·n²) for the covariance plus O(n³) for the decomposition
//   - Transform / InverseTransform: O(m·n·k)
//
// Models are immutable after Fit and safe for concurrent readers.
package pca
