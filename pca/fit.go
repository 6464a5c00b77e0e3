// SPDX-License-Identifier: MIT

// Package pca: fitting. Fit owns the whole pipeline: validation, centering,
// the spectral decomposition (SVD or Jacobi), deterministic ordering and
// sign fixing, explained-variance bookkeeping, and component selection.
package pca

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlpca/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opFit       = "Fit"
	opTransform = "Transform"
	opInverse   = "InverseTransform"
	opReconErr  = "ReconstructionError"
	opSave      = "Save"
	opLoad      = "Load"
)

// pcaErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func pcaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// spectrum is the solver-independent decomposition result: n candidate
// eigenpairs in computed (unsorted) order. vectors[i] has length n.
type spectrum struct {
	values  []float64
	vectors [][]float64
}

// Fit learns a PCA transform from the m×n sample matrix X.
//
// Implementation:
//   - Stage 1 (Validate): X non-nil, m ≥ 2, n ≥ 1, all entries finite, and
//     option values in range. Violations surface as ErrInvalidInput.
//   - Stage 2 (Center): per-feature means via matrix.CenterColumns.
//   - Stage 3 (Decompose): SVD of the centered matrix (default) or Jacobi
//     eigendecomposition of the covariance matrix. Both yield the same basis
//     up to sign and numerical error; eigenvalues are σ²ᵢ/(m−1) on the SVD
//     path and clamped at zero against roundoff noise on both.
//   - Stage 4 (Order): sort eigenpairs by eigenvalue descending with a
//     stable sort, so ties keep their original computed order.
//   - Stage 5 (Normalize & sign): unit-norm every eigenvector, then make the
//     largest-magnitude coordinate positive (first such index wins), so
//     repeated fits on identical data are bit-identical.
//   - Stage 6 (Select): resolve FixedCount/VarianceThreshold to a concrete k
//     and truncate. Ratios are computed against the FULL eigenvalue sum so
//     retained/discarded information stays honest.
//
// Returns the immutable *Model, or:
//   - ErrInvalidInput — m<2, n<1, NaN/±Inf, k∉[1,n], threshold∉(0,1],
//     eps≤0, unknown solver.
//   - ErrNumerical — factorization failure, or a variance threshold that
//     cannot be met because total variance is zero.
//
// Complexity: O(m·n²+n³) time, O(n²) space, independent of the solver.
func Fit(X *matrix.Dense, opts ...Option) (*Model, error) {
	// Stage 1 (Validate input presence and shape).
	if X == nil {
		return nil, pcaErrorf(opFit, fmt.Errorf("nil data matrix: %w", ErrInvalidInput))
	}
	m, n := X.Rows(), X.Cols()
	if m < 2 {
		return nil, pcaErrorf(opFit, fmt.Errorf("need at least 2 samples, got %d: %w", m, ErrInvalidInput))
	}
	if n < 1 {
		return nil, pcaErrorf(opFit, fmt.Errorf("need at least 1 feature, got %d: %w", n, ErrInvalidInput))
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return nil, pcaErrorf(opFit, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	// Stage 1 (Validate options).
	o := gatherOptions(opts...)
	if err := validateOptions(o, n); err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 2 (Center): means come from the same pass that centers the data.
	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 3 (Decompose).
	var spec spectrum
	switch o.solver {
	case SolverSVD:
		spec, err = svdSpectrum(Xc.(*matrix.Dense), m, n)
	case SolverJacobi:
		spec, err = jacobiSpectrum(X)
	}
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Clamp roundoff noise: covariance is positive-semidefinite, so any
	// negative eigenvalue is numerical dust.
	for i, v := range spec.values {
		if v < 0 {
			spec.values[i] = 0
		}
	}

	// Stage 4 (Order): eigenvalue descending, stable on ties.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return spec.values[order[a]] > spec.values[order[b]]
	})

	sortedVals := make([]float64, n)
	sortedVecs := make([][]float64, n)
	for rank, idx := range order {
		sortedVals[rank] = spec.values[idx]
		sortedVecs[rank] = spec.vectors[idx]
	}

	// Stage 5 (Normalize & sign convention).
	for _, vec := range sortedVecs {
		normalizeInPlace(vec)
		fixSignInPlace(vec)
	}

	// Stage 6 (Ratios over the FULL spectrum).
	total := 0.0
	for _, v := range sortedVals {
		total += v
	}
	ratios := make([]float64, n)
	if total > 0 {
		for i, v := range sortedVals {
			ratios[i] = v / total
		}
	}

	// Stage 6 (Resolve the selection variant to a concrete k).
	k, err := resolveComponentCount(o, ratios, total, n)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Assemble the retained k×n component matrix.
	components, err := matrix.NewDenseFromRows(sortedVecs[:k])
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	return &Model{
		mean:        means,
		components:  components,
		eigenvalues: sortedVals[:k:k],
		ratios:      ratios,
		n:           n,
		k:           k,
		whiten:      o.whiten,
		eps:         o.eps,
	}, nil
}

// FitTransform fits a model on X and immediately projects X through it.
// Equivalent to Fit followed by Model.Transform on the same matrix.
func FitTransform(X *matrix.Dense, opts ...Option) (*Model, *matrix.Dense, error) {
	model, err := Fit(X, opts...)
	if err != nil {
		return nil, nil, err
	}
	Z, err := model.Transform(X)
	if err != nil {
		return nil, nil, err
	}

	return model, Z, nil
}

// validateOptions checks user-supplied option values against the data shape.
// Returns plain wrapped sentinels; Fit adds the operation tag.
func validateOptions(o options, n int) error {
	if math.IsNaN(o.eps) || math.IsInf(o.eps, 0) || o.eps <= 0 {
		return fmt.Errorf("epsilon must be a positive finite value, got %g: %w", o.eps, ErrInvalidInput)
	}
	if o.solver != SolverSVD && o.solver != SolverJacobi {
		return fmt.Errorf("unknown solver %d: %w", o.solver, ErrInvalidInput)
	}
	switch o.mode {
	case selectFixed:
		if o.k < 1 || o.k > n {
			return fmt.Errorf("component count %d outside [1,%d]: %w", o.k, n, ErrInvalidInput)
		}
	case selectThreshold:
		if math.IsNaN(o.threshold) || o.threshold <= 0 || o.threshold > 1 {
			return fmt.Errorf("variance threshold %g outside (0,1]: %w", o.threshold, ErrInvalidInput)
		}
	}

	return nil
}

// svdSpectrum decomposes the centered data matrix with gonum's SVD and maps
// singular values to covariance eigenvalues: λᵢ = σᵢ²/(m−1).
// Full-V factorization is used so all n right singular vectors exist even
// when m < n (trailing ones span the null space, eigenvalue 0).
func svdSpectrum(Xc *matrix.Dense, m, n int) (spectrum, error) {
	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(m, n, Xc.RawRowMajor()), mat.SVDFullV); !ok {
		return spectrum{}, fmt.Errorf("SVD factorization did not converge: %w", ErrNumerical)
	}

	sv := svd.Values(nil) // min(m,n) singular values, descending
	var v mat.Dense
	svd.VTo(&v) // n×n, column j pairs with σⱼ

	values := make([]float64, n)
	vectors := make([][]float64, n)
	inv := 1.0 / float64(m-1)
	for j := 0; j < n; j++ {
		if j < len(sv) {
			values[j] = sv[j] * sv[j] * inv
		}
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = v.At(i, j)
		}
		vectors[j] = col
	}

	return spectrum{values: values, vectors: vectors}, nil
}

// jacobiSpectrum decomposes the sample covariance of X with the matrix
// package's Jacobi routine. The covariance path is the simpler reference
// algorithm; it must agree with the SVD path up to sign and roundoff.
func jacobiSpectrum(X *matrix.Dense) (spectrum, error) {
	Cov, _, err := matrix.Covariance(X)
	if err != nil {
		return spectrum{}, err
	}

	eigs, q, err := matrix.Eigen(Cov, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	if err != nil {
		return spectrum{}, fmt.Errorf("%w: %w", ErrNumerical, err)
	}

	n := len(eigs)
	vectors := make([][]float64, n)
	for j := 0; j < n; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			// Q columns are eigenvectors; errors impossible on in-range reads.
			v, atErr := q.At(i, j)
			if atErr != nil {
				return spectrum{}, atErr
			}
			col[i] = v
		}
		vectors[j] = col
	}

	return spectrum{values: eigs, vectors: vectors}, nil
}

// normalizeInPlace scales vec to unit L2 norm; a zero vector is left as-is.
func normalizeInPlace(vec []float64) {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	inv := 1.0 / math.Sqrt(sum)
	for i := range vec {
		vec[i] *= inv
	}
}

// fixSignInPlace applies the deterministic sign convention: the coordinate
// with the largest magnitude is made positive. The FIRST index attaining the
// maximum wins, so the convention is total and reproducible.
func fixSignInPlace(vec []float64) {
	arg, maxAbs := 0, 0.0
	for i, v := range vec {
		if a := math.Abs(v); a > maxAbs {
			arg, maxAbs = i, a
		}
	}
	if vec[arg] < 0 {
		for i := range vec {
			vec[i] = -vec[i]
		}
	}
}

// resolveComponentCount turns the tagged selection variant into a concrete k.
// thresholdSlack absorbs floating-point shortfall when ratios sum to
// 1−ulp instead of exactly 1.
const thresholdSlack = 1e-12

func resolveComponentCount(o options, ratios []float64, total float64, n int) (int, error) {
	switch o.mode {
	case selectFixed:
		return o.k, nil
	case selectThreshold:
		if total <= 0 {
			return 0, fmt.Errorf("zero total variance, threshold unreachable: %w", ErrNumerical)
		}
		cum := 0.0
		for i, r := range ratios {
			cum += r
			if cum+thresholdSlack >= o.threshold {
				return i + 1, nil
			}
		}
		// Floating-point safety net: the loop above reaches 1.0 within slack.
		return n, nil
	default:
		return n, nil
	}
}
