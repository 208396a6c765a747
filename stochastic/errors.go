// SPDX-License-Identifier: MIT
// Package stochastic: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors used across the
// stochastic package, plus two small typed carriers (EntryError, ColumnError)
// that attach the offending position to a sentinel. All operations MUST
// return these sentinels and tests MUST check them via errors.Is; positions
// are recovered via errors.As. No operation panics on user-triggered error
// conditions. Panics are reserved for programmer errors in option
// constructors.

package stochastic

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "stochastic: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary. Callers still use
// errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil inputs -> shape violations -> entry scan -> column sums ->
// iteration/decomposition outcomes. The entry scan runs row-major and the
// first violating entry wins, whatever its kind; within a single entry,
// non-finiteness (NaN/Inf) is judged before negativity. Column sums are
// only checked once the whole entry scan is clean.

var (
	// ErrNilMatrix indicates that a nil Matrix argument was supplied.
	ErrNilMatrix = errors.New("stochastic: nil matrix")

	// ErrNilVector indicates that a nil Vector argument was supplied.
	ErrNilVector = errors.New("stochastic: nil vector")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("stochastic: matrix is not square")

	// ErrBadDimension is returned when a requested size is invalid (n <= 0)
	// or an input matrix has no rows or columns.
	ErrBadDimension = errors.New("stochastic: dimension must be positive")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ragged columns handed to FromColumns.
	ErrDimensionMismatch = errors.New("stochastic: dimension mismatch")

	// ErrBadVectorLen signals that a vector's length does not match the
	// matrix dimension it is paired with.
	ErrBadVectorLen = errors.New("stochastic: vector length does not match matrix dimension")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy.
	ErrNaNInf = errors.New("stochastic: NaN or Inf encountered")

	// ErrNegativeEntry signals an entry below -eps; probabilities must be
	// nonnegative. Carried by EntryError with the offending position.
	ErrNegativeEntry = errors.New("stochastic: negative entry")

	// ErrColumnSum signals a column whose sum deviates from 1 by more than
	// eps. Carried by ColumnError with the offending column.
	ErrColumnSum = errors.New("stochastic: column sum deviates from 1")

	// ErrZeroColumn signals a column summing to at most eps; such a column
	// cannot be rescaled into a probability distribution. Carried by
	// ColumnError with the offending column.
	ErrZeroColumn = errors.New("stochastic: column sums to zero")

	// ErrNegativeSteps is returned when a step or power count is negative.
	ErrNegativeSteps = errors.New("stochastic: step count must be non-negative")

	// ErrNonConvergence is returned by EvolveUntil when the iteration cap is
	// reached before successive iterates come within tolerance. The last
	// iterate is still returned alongside this signal; the caller decides
	// whether that is fatal.
	ErrNonConvergence = errors.New("stochastic: iteration cap reached before convergence")

	// ErrEigenFailed signals that the delegated eigendecomposition did not
	// converge. Deterministic inputs make retries pointless; treat as fatal.
	ErrEigenFailed = errors.New("stochastic: eigendecomposition failed")

	// ErrNoUnitEigenvalue signals that no eigenvalue lies within eps of 1,
	// so no steady state exists. Usually means the input is not a valid
	// Markov matrix, or eps is too tight for the accumulated rounding.
	ErrNoUnitEigenvalue = errors.New("stochastic: no eigenvalue within tolerance of 1")

	// ErrComplexSteadyState signals that the selected eigenvector carries a
	// non-negligible imaginary component. A real eigenvalue ~1 of a real
	// matrix has a real eigenvector, so this guards numerical artifacts.
	ErrComplexSteadyState = errors.New("stochastic: steady-state eigenvector has non-negligible imaginary part")

	// ErrZeroSum signals that the selected eigenvector's components cancel
	// to numerical zero relative to the vector's own L1 mass, so the ray
	// cannot be pinned to a conserved total.
	ErrZeroSum = errors.New("stochastic: steady-state components sum to zero")
)

// EntryError attaches the offending coordinate and value to a structural
// sentinel (ErrNegativeEntry or ErrNaNInf). Match the kind with errors.Is
// and recover the position with errors.As:
//
//	var ee *stochastic.EntryError
//	if errors.As(err, &ee) { fmt.Println(ee.Row, ee.Col) }
type EntryError struct {
	Row, Col int
	Value    float64
	Err      error
}

// Error renders the wrapped sentinel followed by the position and value.
func (e *EntryError) Error() string {
	return fmt.Sprintf("%v (row %d, col %d: value %g)", e.Err, e.Row, e.Col, e.Value)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *EntryError) Unwrap() error { return e.Err }

// ColumnError attaches the offending column index and its sum to a column
// sentinel (ErrColumnSum or ErrZeroColumn).
type ColumnError struct {
	Col int
	Sum float64
	Err error
}

// Error renders the wrapped sentinel followed by the column and its sum.
func (e *ColumnError) Error() string {
	return fmt.Sprintf("%v (column %d: sum %g)", e.Err, e.Col, e.Sum)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *ColumnError) Unwrap() error { return e.Err }
