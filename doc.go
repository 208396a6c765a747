// Package markov is an in-memory toolkit for Markov (stochastic) matrices —
// validate them, build them, iterate them, and extract their steady states.
//
// 🚀 What is markov?
//
//	A small, focused numeric library that brings together:
//		• Validation: nonnegativity + column-sum checks with exact violation positions
//		• Normalization: turn any nonnegative matrix into a column-stochastic one
//		• Power iteration: Aⁿx step by step, to convergence, or as a full trajectory
//		• Steady states: λ=1 eigenvector extraction pinned to a conserved total
//		• Spectra: eigenvalues, spectral radius, spectral gap
//		• Structure: communicating classes, periods, absorbing states
//
// ✨ Why choose markov?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest numerics – heavy linear algebra delegated to gonum, not re-derived
//   - Deterministic – same input, same output, sentinel errors you can test with errors.Is
//   - Column convention throughout – A(i,j) is the probability of moving from state j to state i
//
// Under the hood, everything is organized under two subpackages:
//
//	stochastic/ — the numeric core: Validate, NormalizeColumns, Evolve,
//	              EvolveUntil, MatrixPower, Trajectory, SteadyState,
//	              Eigenvalues, SpectralRadius, SpectralGap, RandomStochastic
//	chain/      — structural analysis of the transition digraph:
//	              communicating classes, periodicity, absorbing states
//
// Quick numeric example:
//
//	    A = ⎡0.9  0.2⎤        steady state of A with total 21:
//	        ⎣0.1  0.8⎦        (14, 7)
//
//	column 1 = (0.9, 0.1), column 2 = (0.2, 0.8); both sum to 1.
//
// Dive into the subpackage docs for the full model, tolerances, and the
// error contract of every operation.
//
//	go get github.com/katalvlaran/markov
package markov
