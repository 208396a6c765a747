// SPDX-License-Identifier: MIT
// Package stochastic: Markov-matrix validation.
// A Markov (column-stochastic) matrix is square, has nonnegative entries,
// and every column sums to 1. Validity is a derived predicate over any
// mat.Matrix; there is no separate owned type to construct.

package stochastic

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Validate checks that a is a column-stochastic (Markov) matrix within eps.
// Implementation:
//   - Stage 1: shape guard (nil, square, non-empty).
//   - Stage 2: entry scan, row-major: finite values, then nonnegativity
//     (entries below -eps fail; small negative noise within eps passes).
//   - Stage 3: column scan, left to right: each column sum must lie within
//     eps of 1.
//
// Behavior highlights:
//   - The first violation wins; the scan order above is part of the
//     contract, so failures are reproducible.
//   - Violations carry their position: EntryError (row, col, value) wraps
//     ErrNaNInf or ErrNegativeEntry; ColumnError (col, sum) wraps
//     ErrColumnSum. Match kinds with errors.Is, recover positions with
//     errors.As.
//
// Inputs:
//   - a: any mat.Matrix; not mutated, not retained.
//   - opts: WithEpsilon to widen or tighten the tolerance (DefaultEpsilon).
//
// Returns:
//   - nil iff a is a valid Markov matrix within eps.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadDimension on malformed shape
//     (never a panic, per the error contract).
//   - ErrNaNInf, ErrNegativeEntry, ErrColumnSum as described above.
//
// Determinism: same input and eps, same verdict and same reported position.
//
// Complexity: Time O(n²), Space O(n) for the column buffer.
//
// AI-Hints:
//   - Validate once at the boundary; Evolve and SteadyState deliberately
//     skip re-validation so hot paths stay O(n²) without double scans.
func Validate(a mat.Matrix, opts ...Option) error {
	o := gatherOptions(opts...)

	n, err := ensureSquare(a)
	if err != nil {
		return err
	}

	// Entry scan: finite values first, then nonnegativity. NaN must not
	// slip into column sums, where comparisons silently come out false.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			if isNonFinite(v) {
				return &EntryError{Row: i, Col: j, Value: v, Err: ErrNaNInf}
			}
			if v < -o.eps {
				return &EntryError{Row: i, Col: j, Value: v, Err: ErrNegativeEntry}
			}
		}
	}

	// Column scan: each column is a probability distribution and must sum
	// to 1 within eps.
	sums, err := ColumnSums(a)
	if err != nil {
		return err
	}
	for j, s := range sums {
		if math.Abs(s-1) > o.eps {
			return &ColumnError{Col: j, Sum: s, Err: ErrColumnSum}
		}
	}

	return nil
}

// IsStochastic reports whether Validate(a, opts...) passes. Convenience
// predicate for call sites that do not care which invariant failed.
func IsStochastic(a mat.Matrix, opts ...Option) bool {
	return Validate(a, opts...) == nil
}
