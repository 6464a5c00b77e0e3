// SPDX-License-Identifier: MIT

// Package pca: model persistence. A fitted model is written as a flat,
// versioned JSON record — mean vector, retained eigenpairs, full-spectrum
// ratios, and the whitening flag. JSON keeps float64 values exact
// (shortest round-trip encoding) and the record human-inspectable.
package pca

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvlpca/matrix"
)

// recordVersion is the current persisted-record schema version.
const recordVersion = 1

// modelRecord is the wire form of a fitted model.
type modelRecord struct {
	Version     int         `json:"version"`
	Whiten      bool        `json:"whiten"`
	Epsilon     float64     `json:"epsilon"`
	Mean        []float64   `json:"mean"`
	Eigenvalues []float64   `json:"eigenvalues"`
	Ratios      []float64   `json:"explained_variance_ratio"`
	Components  [][]float64 `json:"components"`
}

// Save writes the model to w as a versioned JSON record.
// The record is self-contained: Load on the output reproduces a model whose
// Transform/InverseTransform behave identically.
func (m *Model) Save(w io.Writer) error {
	if m == nil {
		return pcaErrorf(opSave, ErrNilModel)
	}

	rec := modelRecord{
		Version:     recordVersion,
		Whiten:      m.whiten,
		Epsilon:     m.eps,
		Mean:        m.Mean(),
		Eigenvalues: m.Eigenvalues(),
		Ratios:      m.ExplainedVarianceRatio(),
		Components:  make([][]float64, m.k),
	}
	for i := 0; i < m.k; i++ {
		row, err := m.components.Row(i)
		if err != nil {
			return pcaErrorf(opSave, err)
		}
		rec.Components[i] = row
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(&rec); err != nil {
		return pcaErrorf(opSave, err)
	}

	return nil
}

// Load reads a model record written by Save and reconstructs the model.
//
// The record is validated the way Fit validates its own output: known
// version, consistent lengths, finite values, unit-norm components, and
// non-increasing eigenvalues. Structural violations surface as ErrBadRecord.
func Load(r io.Reader) (*Model, error) {
	var rec modelRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rec); err != nil {
		return nil, pcaErrorf(opLoad, fmt.Errorf("%w: %w", ErrBadRecord, err))
	}

	if rec.Version != recordVersion {
		return nil, pcaErrorf(opLoad, fmt.Errorf("unsupported version %d: %w", rec.Version, ErrBadRecord))
	}
	if err := validateRecord(&rec); err != nil {
		return nil, pcaErrorf(opLoad, err)
	}

	components, err := matrix.NewDenseFromRows(rec.Components)
	if err != nil {
		return nil, pcaErrorf(opLoad, fmt.Errorf("%w: %w", ErrBadRecord, err))
	}

	return &Model{
		mean:        rec.Mean,
		components:  components,
		eigenvalues: rec.Eigenvalues,
		ratios:      rec.Ratios,
		n:           len(rec.Mean),
		k:           len(rec.Eigenvalues),
		whiten:      rec.Whiten,
		eps:         rec.Epsilon,
	}, nil
}

// validateRecord enforces the Model invariants on an incoming record.
func validateRecord(rec *modelRecord) error {
	n := len(rec.Mean)
	k := len(rec.Eigenvalues)
	if n < 1 || k < 1 || k > n {
		return fmt.Errorf("mean length %d / %d eigenvalues: %w", n, k, ErrBadRecord)
	}
	if len(rec.Components) != k {
		return fmt.Errorf("%d component rows for %d eigenvalues: %w", len(rec.Components), k, ErrBadRecord)
	}
	if len(rec.Ratios) != n {
		return fmt.Errorf("ratio length %d, want %d: %w", len(rec.Ratios), n, ErrBadRecord)
	}
	if math.IsNaN(rec.Epsilon) || math.IsInf(rec.Epsilon, 0) || rec.Epsilon <= 0 {
		return fmt.Errorf("epsilon %g: %w", rec.Epsilon, ErrBadRecord)
	}

	for _, v := range rec.Mean {
		if !isFinite(v) {
			return fmt.Errorf("non-finite mean entry: %w", ErrBadRecord)
		}
	}
	for i, ev := range rec.Eigenvalues {
		if !isFinite(ev) || ev < 0 {
			return fmt.Errorf("eigenvalue %d is %g: %w", i, ev, ErrBadRecord)
		}
		if i > 0 && ev > rec.Eigenvalues[i-1] {
			return fmt.Errorf("eigenvalues not descending at %d: %w", i, ErrBadRecord)
		}
	}
	for i, r := range rec.Ratios {
		if !isFinite(r) || r < 0 {
			return fmt.Errorf("ratio %d is %g: %w", i, r, ErrBadRecord)
		}
	}
	for i, row := range rec.Components {
		if len(row) != n {
			return fmt.Errorf("component %d has %d values, want %d: %w", i, len(row), n, ErrBadRecord)
		}
		norm := 0.0
		for _, v := range row {
			if !isFinite(v) {
				return fmt.Errorf("non-finite value in component %d: %w", i, ErrBadRecord)
			}
			norm += v * v
		}
		if math.Abs(norm-1) > 1e-6 {
			return fmt.Errorf("component %d not unit length (|v|²=%g): %w", i, norm, ErrBadRecord)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
