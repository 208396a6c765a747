// SPDX-License-Identifier: MIT
// Package stochastic: shared types, constructors, and input guards.
// This file defines the Norm enumeration used by convergence checks, the
// column-oriented FromColumns constructor, and the private shape guards that
// every public operation routes through. Guards return sentinels from
// errors.go; they never panic.

package stochastic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Norm selects the distance used to compare successive iterates in
// convergence mode (EvolveUntil).
type Norm int

const (
	// MaxAbs compares iterates by the largest absolute componentwise
	// difference (the L∞ norm). Default.
	MaxAbs Norm = iota

	// L1 compares iterates by the sum of absolute componentwise differences.
	// Twice the total-variation distance when both iterates are
	// distributions.
	L1

	// Euclid compares iterates by the Euclidean (L2) distance.
	Euclid
)

// lNorm maps a Norm onto the L parameter understood by floats.Distance.
func (n Norm) lNorm() float64 {
	switch n {
	case L1:
		return 1
	case Euclid:
		return 2
	default:
		return math.Inf(1)
	}
}

// FromColumns builds a dense matrix from explicit columns.
//
// The package speaks the column convention (entry (i,j) is the probability
// of moving from state j to state i), so tests and callers usually know a
// matrix by its columns, while gonum's mat.NewDense wants row-major data.
// FromColumns removes that mismatch:
//
//	A, err := stochastic.FromColumns(
//	    []float64{0.9, 0.1}, // out of state 0
//	    []float64{0.2, 0.8}, // out of state 1
//	)
//
// Inputs:
//   - cols: one slice per column, all of equal, positive length.
//
// Returns:
//   - *mat.Dense with len(cols) columns; the slices are copied, never
//     retained.
//
// Errors:
//   - ErrBadDimension when no columns or empty columns are supplied.
//   - ErrDimensionMismatch when columns have unequal lengths.
//
// Complexity: Time O(r·c), Space O(r·c).
func FromColumns(cols ...[]float64) (*mat.Dense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrBadDimension
	}
	rows := len(cols[0])
	for j := 1; j < len(cols); j++ {
		if len(cols[j]) != rows {
			return nil, fmt.Errorf("FromColumns: column %d has length %d, want %d: %w",
				j, len(cols[j]), rows, ErrDimensionMismatch)
		}
	}
	out := mat.NewDense(rows, len(cols), nil)
	for j, col := range cols {
		out.SetCol(j, col)
	}

	return out, nil
}

// ensureSquare rejects nil, non-square, and empty matrices, returning the
// shared dimension on success.
func ensureSquare(a mat.Matrix) (int, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}
	r, c := a.Dims()
	if r != c {
		return 0, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare)
	}
	if r == 0 {
		return 0, ErrBadDimension
	}

	return r, nil
}

// ensureVector rejects nil vectors and lengths other than n.
func ensureVector(x mat.Vector, n int) error {
	if x == nil {
		return ErrNilVector
	}
	if x.Len() != n {
		return fmt.Errorf("len %d vs dimension %d: %w", x.Len(), n, ErrBadVectorLen)
	}

	return nil
}

// isNonFinite reports whether f is NaN or ±Inf.
func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
