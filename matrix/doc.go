// Package matrix provides the dense numeric primitives underneath lvlpca:
// row-major storage, column statistics, and a deterministic symmetric
// eigensolver.
//
// The package deliberately stays small:
//
//   - Dense — a row-major float64 matrix with bounds-checked At/Set and a
//     flat backing slice for cache-friendly kernels.
//   - Kernels (Mul, Transpose, Scale, MatVec) — strict fail-fast validation,
//     *Dense fast paths, deterministic i→j traversal.
//   - Statistics (CenterColumns, Covariance) — column centering and the
//     unbiased sample covariance (Xcᵀ·Xc)/(m−1).
//   - Eigen — Jacobi sweeps over a symmetric matrix, fixed pivot order, used
//     as the reference spectral routine when gonum's SVD is not wanted.
//
// All functions return package sentinel errors (see errors.go) and never
// panic on user input; check them with errors.Is. Matrices are never mutated
// by kernels — every operation allocates its result.
//
// Matrices are best kept as *Dense: interface values still work through the
// At/Set fallback paths but skip the flat-slice fast paths.
package matrix
