// Package lvlpca turns correlated feature matrices into compact,
// decorrelated coordinates — Principal Component Analysis done as a small,
// deterministic, dependency-light Go library.
//
// 🚀 What is lvlpca?
//
//	A pure-Go PCA toolkit built around one idea: fit an orthonormal basis
//	aligned with the directions of maximal variance, then move data into
//	and out of that basis.
//		• Fit: mean + covariance/SVD → sorted, sign-fixed eigenpairs
//		• Transform: project samples onto the retained components
//		• InverseTransform: reconstruct approximate originals
//		• Explained-variance bookkeeping for choosing how much to keep
//		• Optional whitening for unit-variance projected features
//
// ✨ Why choose lvlpca?
//
//   - Deterministic – identical input yields bit-identical output, always
//   - Honest errors – sentinel errors, errors.Is-friendly, no panics on data
//   - Immutable models – fit once, share across goroutines freely
//   - Pure Go core – dense kernels in matrix/, SVD delegated to gonum
//
// Everything is organized under two subpackages:
//
//	matrix/ — row-major Dense storage, centering, covariance, Jacobi eigen
//	pca/    — the transformer: Fit, Transform, InverseTransform, persistence
//
// Quick sketch:
//
//	X, _ := matrix.NewDenseFromRows(samples)        // m×n feature matrix
//	model, _ := pca.Fit(X, pca.WithComponents(2))   // keep top-2 directions
//	Z, _ := model.Transform(X)                      // m×2 projection
//	Xr, _ := model.InverseTransform(Z)              // m×n reconstruction
//
// See pca/doc.go for the full contract and matrix/doc.go for the numeric
// support surface.
package lvlpca
