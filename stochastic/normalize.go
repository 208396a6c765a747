// SPDX-License-Identifier: MIT
// Package stochastic: column normalization.
// Rescales an arbitrary nonnegative matrix into a column-stochastic one by
// dividing every column by its sum. The divisors actually applied (the
// per-column sums after noise clamping) are returned alongside, so callers
// can undo the rescale exactly.

package stochastic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ColumnSums returns the sum of each column of a.
//
// Inputs:
//   - a: any mat.Matrix (square not required); not mutated.
//
// Returns:
//   - one sum per column, left to right.
//
// Errors:
//   - ErrNilMatrix, ErrBadDimension.
//
// Complexity: Time O(r·c), Space O(r) scratch + O(c) result.
func ColumnSums(a mat.Matrix) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, ErrBadDimension
	}

	sums := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, a)
		sums[j] = floats.Sum(col)
	}

	return sums, nil
}

// NormalizeColumns rescales each column of m by its sum, producing a
// column-stochastic matrix.
// Implementation:
//   - Stage 1: shape guard (nil, non-empty; square NOT required).
//   - Stage 2: per column, left to right: reject NaN/Inf and entries below
//     -eps; clamp negative noise within eps to 0.
//   - Stage 3: reject columns summing to at most eps (nothing to rescale).
//   - Stage 4: scale the column by 1/sum and write it into a fresh Dense.
//
// Behavior highlights:
//   - m is never mutated; the result is freshly allocated.
//   - The returned slice holds the post-clamp column sums: exactly the
//     divisors applied in Stage 4, which is what undoing the rescale
//     needs. Where Stage 2 clamped noise, they differ from the raw sums
//     by the clamped amount.
//   - On a square input the result passes Validate: clamping guarantees
//     nonnegativity, rescaling guarantees unit sums up to rounding.
//
// Inputs:
//   - m: nonnegative matrix, any shape; at least one positive entry per
//     column.
//   - opts: WithEpsilon for the nonnegativity/zero-column tolerance.
//
// Returns:
//   - the normalized matrix and the per-column divisors (post-clamp sums).
//
// Errors:
//   - ErrNilMatrix, ErrBadDimension on malformed shape.
//   - EntryError wrapping ErrNaNInf or ErrNegativeEntry with the position.
//   - ColumnError wrapping ErrZeroColumn with the unnormalizable column.
//
// Determinism: same input and eps, same output; the first violation in
// column-major scan order wins.
//
// Complexity: Time O(r·c), Space O(r·c) for the result.
func NormalizeColumns(m mat.Matrix, opts ...Option) (*mat.Dense, []float64, error) {
	o := gatherOptions(opts...)

	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, nil, ErrBadDimension
	}

	out := mat.NewDense(r, c, nil)
	sums := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		for i, v := range col {
			if isNonFinite(v) {
				return nil, nil, &EntryError{Row: i, Col: j, Value: v, Err: ErrNaNInf}
			}
			if v < -o.eps {
				return nil, nil, &EntryError{Row: i, Col: j, Value: v, Err: ErrNegativeEntry}
			}
			if v < 0 {
				// Negative noise within eps: clamp so the output is a
				// genuine probability column.
				col[i] = 0
			}
		}

		s := floats.Sum(col)
		if s <= o.eps {
			return nil, nil, &ColumnError{Col: j, Sum: s, Err: ErrZeroColumn}
		}
		sums[j] = s

		floats.Scale(1/s, col)
		out.SetCol(j, col)
	}

	return out, sums, nil
}
