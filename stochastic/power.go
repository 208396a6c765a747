// SPDX-License-Identifier: MIT
// Package stochastic: power iteration.
// Computes Aⁿx by repeated matrix-vector products, either for a fixed step
// count or until successive iterates converge, plus the matrix-power and
// full-trajectory companions. Because the all-ones row vector is a left
// eigenvector of every column-stochastic matrix, the component sum of the
// iterate is invariant along the way; nothing here renormalizes.

package stochastic

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Evolve computes Aⁿx by n successive matrix-vector products (fixed-count
// mode).
// Implementation:
//   - Stage 1: shape guards (square a, matching x, steps ≥ 0).
//   - Stage 2: copy x into a working buffer (inputs are never mutated).
//   - Stage 3: ping-pong two buffers through steps applications of a,
//     delegating each product to gonum's VecDense.MulVec.
//
// Behavior highlights:
//   - steps = 0 returns a fresh copy of x (A⁰x = x).
//   - For a valid Markov matrix the component sum of the result equals the
//     component sum of x, up to rounding; iteration never renormalizes.
//   - a is applied as given. Validate first if stochasticity matters;
//     Evolve itself works for any square matrix.
//
// Inputs:
//   - a: square matrix, applied on the left.
//   - x: initial vector of matching length.
//   - steps: nonnegative application count.
//
// Returns:
//   - a freshly allocated Aⁿx; x and a are untouched.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadDimension, ErrNilVector,
//     ErrBadVectorLen, ErrNegativeSteps.
//
// Determinism: same inputs, bit-identical output.
//
// Complexity: Time O(steps·n²), Space O(n).
//
// AI-Hints:
//   - For very large fixed steps on a small matrix, MatrixPower followed by
//     one MulVec costs O(log(steps)·n³) and agrees within rounding.
func Evolve(a mat.Matrix, x mat.Vector, steps int) (*mat.VecDense, error) {
	n, err := ensureSquare(a)
	if err != nil {
		return nil, err
	}
	if err = ensureVector(x, n); err != nil {
		return nil, err
	}
	if steps < 0 {
		return nil, fmt.Errorf("Evolve: steps=%d: %w", steps, ErrNegativeSteps)
	}

	cur := mat.VecDenseCopyOf(x)
	if steps == 0 {
		return cur, nil
	}

	next := mat.NewVecDense(n, nil)
	for k := 0; k < steps; k++ {
		next.MulVec(a, cur)
		cur, next = next, cur
	}

	return cur, nil
}

// EvolveUntil applies a to x until successive iterates differ by less than
// tol in the configured norm, or until the iteration cap is reached
// (convergence mode).
// Implementation:
//   - Stage 1: shape guards as in Evolve.
//   - Stage 2: per iteration, compute the next iterate and its distance to
//     the previous one (floats.Distance under the selected norm).
//   - Stage 3: stop on distance < tol, or return the last iterate together
//     with ErrNonConvergence once the cap is exhausted.
//
// Behavior highlights:
//   - ErrNonConvergence is a caller-visible signal, not a hard failure: the
//     best-effort iterate and the iteration count are still returned.
//     Periodic chains (spectral gap 0) oscillate forever and always take
//     this path.
//   - The iteration count reports applications of a actually performed
//     (at least 1: convergence is judged between consecutive iterates).
//
// Inputs:
//   - a, x: as in Evolve.
//   - opts: WithTolerance (DefaultTolerance), WithMaxIterations
//     (DefaultMaxIterations), WithNorm (DefaultNorm).
//
// Returns:
//   - the converged (or last) iterate, and the number of applications.
//
// Errors:
//   - shape errors as in Evolve; ErrNonConvergence on cap exhaustion.
//
// Determinism: same inputs and options, same iterate and count.
//
// Complexity: Time O(k·n²) for k performed iterations, Space O(n).
func EvolveUntil(a mat.Matrix, x mat.Vector, opts ...Option) (*mat.VecDense, int, error) {
	o := gatherOptions(opts...)

	n, err := ensureSquare(a)
	if err != nil {
		return nil, 0, err
	}
	if err = ensureVector(x, n); err != nil {
		return nil, 0, err
	}

	cur := mat.VecDenseCopyOf(x)
	next := mat.NewVecDense(n, nil)
	for k := 1; k <= o.maxIter; k++ {
		next.MulVec(a, cur)
		if iterDistance(next, cur, o.norm) < o.tol {
			return next, k, nil
		}
		cur, next = next, cur
	}

	return cur, o.maxIter, ErrNonConvergence
}

// MatrixPower returns Aⁿ via binary exponentiation: O(log n) dense
// multiplies, each delegated to gonum. A⁰ is the identity. Agrees with n
// repeated multiplications up to rounding; prefer it when n is large and a
// full matrix (rather than one trajectory) is wanted.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadDimension, ErrNegativeSteps.
//
// Complexity: Time O(log(n)·d³) for a d×d matrix, Space O(d²).
func MatrixPower(a mat.Matrix, n int) (*mat.Dense, error) {
	d, err := ensureSquare(a)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("MatrixPower: n=%d: %w", n, ErrNegativeSteps)
	}

	result := identityDense(d)
	if n == 0 {
		return result, nil
	}

	// Square-and-multiply over the bits of n, low to high. Three buffers
	// rotate so no Mul receiver ever aliases its operands.
	base := mat.DenseCopyOf(a)
	tmp := mat.NewDense(d, d, nil)
	for e := n; e > 0; e >>= 1 {
		if e&1 == 1 {
			tmp.Mul(result, base)
			result, tmp = tmp, result
		}
		if e > 1 {
			tmp.Mul(base, base)
			base, tmp = tmp, base
		}
	}

	return result, nil
}

// Trajectory records the full iterate sequence x, Ax, ..., Aⁿx as a dense
// n×(steps+1) matrix whose column k holds Aᵏx. Column 0 is x itself. The
// same ping-pong scheme as Evolve produces each column; memory is the only
// difference, so use Evolve when just the endpoint matters.
//
// Errors: as in Evolve.
//
// Complexity: Time O(steps·n²), Space O(n·steps).
func Trajectory(a mat.Matrix, x mat.Vector, steps int) (*mat.Dense, error) {
	n, err := ensureSquare(a)
	if err != nil {
		return nil, err
	}
	if err = ensureVector(x, n); err != nil {
		return nil, err
	}
	if steps < 0 {
		return nil, fmt.Errorf("Trajectory: steps=%d: %w", steps, ErrNegativeSteps)
	}

	out := mat.NewDense(n, steps+1, nil)
	cur := mat.VecDenseCopyOf(x)
	out.SetCol(0, cur.RawVector().Data)

	next := mat.NewVecDense(n, nil)
	for k := 1; k <= steps; k++ {
		next.MulVec(a, cur)
		out.SetCol(k, next.RawVector().Data)
		cur, next = next, cur
	}

	return out, nil
}

// iterDistance measures the gap between consecutive iterates under the
// selected norm. Both vectors are package-allocated (unit stride), so the
// raw data view is safe.
func iterDistance(u, v *mat.VecDense, norm Norm) float64 {
	return floats.Distance(u.RawVector().Data, v.RawVector().Data, norm.lNorm())
}

// identityDense builds the n×n identity.
func identityDense(n int) *mat.Dense {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}

	return mat.NewDense(n, n, data)
}
