// SPDX-License-Identifier: MIT

// Package stochastic validates, builds, iterates, and solves Markov
// (column-stochastic) matrices, delegating the heavy linear algebra to
// gonum.
//
// 🚀 What is a Markov matrix?
//
//	A square matrix of transition probabilities: entry (i,j) is the
//	probability of moving from state j to state i, so every column is a
//	probability distribution and sums to 1.  Repeated multiplication
//	A, A², A³, ... drives any starting distribution toward a steady
//	state — or keeps it oscillating when the spectrum says so.
//
// ✨ Key operations:
//   - Validate / IsStochastic: nonnegativity + column sums, with the exact
//     violating position carried in the error
//   - NormalizeColumns: rescale any nonnegative matrix into a Markov one
//   - Evolve / EvolveUntil: Aⁿx step by step, or iterate to convergence
//     with a norm, tolerance, and iteration cap
//   - MatrixPower / Trajectory: Aⁿ by repeated squaring, or every iterate
//     x, Ax, ..., Aⁿx at once
//   - SteadyState: the λ=1 eigenvector, rescaled to a conserved total
//   - Eigenvalues / SpectralRadius / SpectralGap: the spectrum and the
//     mixing rate it implies
//   - RandomStochastic: column-normalized Uniform(0,1) matrices for demos
//     and property tests
//
// ⚙️ Usage:
//
//	A, _ := stochastic.FromColumns(
//	    []float64{0.9, 0.1},
//	    []float64{0.2, 0.8},
//	)
//	if err := stochastic.Validate(A); err != nil {
//	    // errors.Is picks the invariant, errors.As the position
//	}
//	x := mat.NewVecDense(2, []float64{17, 4})
//	later, _ := stochastic.Evolve(A, x, 1000)       // ≈ (14, 7)
//	pi, _ := stochastic.SteadyState(A,
//	    stochastic.WithTotal(21))                   // (14, 7)
//
// Conventions:
//
//   - Columns, not rows, are distributions; transposing adapts row-oriented
//     data (Validate(R.T()) for a row-stochastic R).
//   - Component sums are invariant under multiplication, so Evolve output
//     remains comparable to its input and WithTotal pins SteadyState to the
//     same scale.
//   - All operations are pure: inputs are never mutated or retained, and
//     results are freshly allocated.
//
// Errors are sentinels (errors.Is) with positional carriers (errors.As);
// see errors.go for the full contract. Numeric tolerances default to
// DefaultEpsilon and are adjusted per call via functional options.
//
// Performance: validation and normalization are O(n²); power iteration is
// O(k·n²); SteadyState and the spectrum utilities are O(n³) through
// gonum's general eigendecomposition.
package stochastic
