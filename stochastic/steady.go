// SPDX-License-Identifier: MIT
// Package stochastic: steady-state extraction.
// The all-ones row vector is a left eigenvector of every column-stochastic
// matrix with eigenvalue 1, and a matrix shares its characteristic
// polynomial with its transpose, so a right eigenvector for eigenvalue 1
// always exists: the steady state. This file selects it from a delegated
// eigendecomposition and pins its arbitrary scale to a conserved total.

package stochastic

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SteadyState extracts the eigenvector for the eigenvalue nearest 1 and
// rescales it so its components sum to the configured total.
// Implementation:
//   - Stage 1: shape guard, then general (non-symmetric) right
//     eigendecomposition via gonum's mat.Eigen.
//   - Stage 2: select the eigenvalue minimizing |λ−1|; exact ties prefer
//     the larger real part, then the smaller imaginary magnitude. Reject
//     the winner if its distance to 1 exceeds eps.
//   - Stage 3: take the winning right eigenvector; reject it if any
//     component's imaginary part is non-negligible, else drop the
//     imaginary parts.
//   - Stage 4: rescale so the component sum equals total (WithTotal,
//     default 1).
//
// Behavior highlights:
//   - Selection matches +1, never magnitude alone: a chain with an
//     eigenvalue at −1 (period-2 oscillation) keeps its steady state, and
//     the −1 eigenvector is never chosen.
//   - For a strictly positive Markov matrix, eigenvalue 1 is simple and
//     dominant (Perron–Frobenius), so the winner is unique and its
//     eigenvector sign-consistent; the rescale then yields nonnegative
//     components summing to total.
//   - Matrices with zero entries may put further eigenvalues on the unit
//     circle; the closeness-to-1 criterion still isolates the steady one.
//
// Inputs:
//   - a: square matrix; not mutated, not retained.
//   - opts: WithTotal for the conserved sum, WithEpsilon for the
//     unit-distance and imaginary-negligibility tolerance.
//
// Returns:
//   - the steady-state vector with component sum = total.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadDimension on malformed shape.
//   - ErrEigenFailed when the backend does not converge.
//   - ErrNoUnitEigenvalue when no eigenvalue lies within eps of 1
//     (reported instead of silently returning a wrong direction).
//   - ErrComplexSteadyState when the winning eigenvector is materially
//     complex (numerical artifact guard; a real λ≈1 has a real eigenvector).
//   - ErrZeroSum when the component sum cancels to numerical zero
//     relative to the vector's own L1 mass, so no rescale can reach the
//     total. The cancellation threshold is fixed at DefaultEpsilon;
//     WithEpsilon does not move it.
//
// Determinism: same input and options, same vector; the tie-break order
// makes the selection reproducible even for repeated eigenvalues.
//
// Complexity: Time O(n³) for the decomposition, Space O(n²).
//
// AI-Hints:
//   - Match total to the component sum of the chain's initial vector to
//     compare directly against Evolve output (the sum is invariant).
func SteadyState(a mat.Matrix, opts ...Option) (*mat.VecDense, error) {
	o := gatherOptions(opts...)

	n, err := ensureSquare(a)
	if err != nil {
		return nil, err
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		return nil, ErrEigenFailed
	}

	vals := eig.Values(nil)
	best, dist := closestToUnit(vals)
	if dist > o.eps {
		return nil, fmt.Errorf("closest eigenvalue %v at distance %.3g: %w",
			vals[best], dist, ErrNoUnitEigenvalue)
	}

	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	// Split the winning column into real parts and the largest observed
	// magnitudes. The eigenvector scale is backend-chosen (unit Euclidean
	// norm), so negligibility is judged relative to that scale.
	v := make([]float64, n)
	var maxAbs, maxImag float64
	for i := 0; i < n; i++ {
		c := vecs.At(i, best)
		v[i] = real(c)
		if m := cmplx.Abs(c); m > maxAbs {
			maxAbs = m
		}
		if im := math.Abs(imag(c)); im > maxImag {
			maxImag = im
		}
	}
	if maxImag > o.eps*math.Max(1, maxAbs) {
		return nil, fmt.Errorf("max imaginary magnitude %.3g: %w",
			maxImag, ErrComplexSteadyState)
	}

	// A sum cancelling to numerical zero relative to the vector's own L1
	// mass marks the zero ray: no rescale can reach the total. The
	// threshold stays at DefaultEpsilon; eps governs structural
	// acceptance, not cancellation.
	s := floats.Sum(v)
	if math.Abs(s) <= DefaultEpsilon*floats.Norm(v, 1) {
		return nil, ErrZeroSum
	}
	// total/s also repairs orientation: backends are free to return the
	// Perron vector with either sign.
	floats.Scale(o.total/s, v)

	return mat.NewVecDense(n, v), nil
}

// closestToUnit returns the index of the eigenvalue minimizing |λ−1| plus
// that distance. Exact ties prefer the larger real part, then the smaller
// imaginary magnitude, so +1 beats −1 at equal distance and conjugate
// partners resolve deterministically.
func closestToUnit(vals []complex128) (int, float64) {
	best := 0
	bestD := cmplx.Abs(vals[0] - 1)
	for i := 1; i < len(vals); i++ {
		d := cmplx.Abs(vals[i] - 1)
		switch {
		case d < bestD:
			best, bestD = i, d
		case d == bestD && real(vals[i]) > real(vals[best]):
			best = i
		case d == bestD && real(vals[i]) == real(vals[best]) &&
			math.Abs(imag(vals[i])) < math.Abs(imag(vals[best])):
			best = i
		}
	}

	return best, bestD
}
