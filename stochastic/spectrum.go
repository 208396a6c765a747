// SPDX-License-Identifier: MIT
// Package stochastic: spectrum utilities.
// Thin views over the delegated eigendecomposition. The spectrum of a
// Markov matrix is the short story of its dynamics: everything lives inside
// the closed unit disk, 1 is always present, and the second-largest
// magnitude governs how fast power iteration forgets the initial vector.

package stochastic

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Eigenvalues returns the full spectrum of a, in the backend's order.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadDimension, ErrEigenFailed.
//
// Complexity: Time O(n³), Space O(n).
func Eigenvalues(a mat.Matrix) ([]complex128, error) {
	if _, err := ensureSquare(a); err != nil {
		return nil, err
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return nil, ErrEigenFailed
	}

	return eig.Values(nil), nil
}

// SpectralRadius returns max |λ| over the spectrum of a. For a valid Markov
// matrix the radius is 1 up to rounding; materially larger values mean the
// input is not column-stochastic.
//
// Errors: as in Eigenvalues.
func SpectralRadius(a mat.Matrix) (float64, error) {
	vals, err := Eigenvalues(a)
	if err != nil {
		return 0, err
	}

	var rho float64
	for _, v := range vals {
		if m := cmplx.Abs(v); m > rho {
			rho = m
		}
	}

	return rho, nil
}

// SpectralGap returns 1 − SLEM, where SLEM is the largest |λ| after setting
// aside one eigenvalue closest to 1 (the steady-state eigenvalue, chosen by
// the same tie-break as SteadyState).
//
// The gap measures mixing: iterates approach the steady state like
// SLEMᵏ, so a gap of 0 means another eigenvalue sits on the unit circle
// (periodic oscillation, no convergence) and a gap of 1 means one-step
// mixing. A 1×1 chain has an empty remainder spectrum and gap 1.
//
// Inputs:
//   - a: square matrix; opts: WithEpsilon for the unit-distance tolerance.
//
// Errors:
//   - as in Eigenvalues, plus ErrNoUnitEigenvalue when no eigenvalue lies
//     within eps of 1.
//
// Notes:
//   - The gap can come out negative for inputs that are not substochastic
//     (SLEM > 1); it is reported as computed rather than clamped.
func SpectralGap(a mat.Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	vals, err := Eigenvalues(a)
	if err != nil {
		return 0, err
	}

	best, dist := closestToUnit(vals)
	if dist > o.eps {
		return 0, fmt.Errorf("closest eigenvalue %v at distance %.3g: %w",
			vals[best], dist, ErrNoUnitEigenvalue)
	}

	var slem float64
	for i, v := range vals {
		if i == best {
			continue
		}
		if m := cmplx.Abs(v); m > slem {
			slem = m
		}
	}

	return 1 - slem, nil
}
