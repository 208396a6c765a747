// SPDX-License-Identifier: MIT
// Package stochastic_test contains shared test fixtures and helpers.
//
// Purpose:
//   - Provide small, deterministic chains reused across the suite.
//   - Keep all data finite and well-formed unless a test says otherwise.

package stochastic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/markov/stochastic"
)

// hide WRAPS any Matrix to mask its concrete type.
// Embedding the interface hides gonum's RawMatrixer upgrade, forcing code
// under test through the generic At-based paths. Wrap only the operand
// whose path you want to de-opt.
type hide struct{ mat.Matrix }

// mustFromColumns builds a Dense from explicit columns or aborts the test.
func mustFromColumns(t *testing.T, cols ...[]float64) *mat.Dense {
	t.Helper()
	m, err := stochastic.FromColumns(cols...)
	require.NoError(t, err, "FromColumns fixture must construct")

	return m
}

// textbookChain is the two-state chain used throughout the docs: columns
// (0.9, 0.1) and (0.2, 0.8). Its steady ray is proportional to (2, 1) and
// its spectrum is {1, 0.7}.
func textbookChain(t *testing.T) *mat.Dense {
	t.Helper()

	return mustFromColumns(t, []float64{0.9, 0.1}, []float64{0.2, 0.8})
}

// permutationChain is the two-state swap: columns (0, 1) and (1, 0).
// Eigenvalues {1, -1}; period 2; no convergence under power iteration.
func permutationChain(t *testing.T) *mat.Dense {
	t.Helper()

	return mustFromColumns(t, []float64{0, 1}, []float64{1, 0})
}

// eye builds the n×n identity as a Dense.
func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}

	return d
}

// vecOf wraps values in a fresh VecDense.
func vecOf(vals ...float64) *mat.VecDense {
	return mat.NewVecDense(len(vals), vals)
}

// vecData exposes the raw values of a package-allocated vector.
func vecData(v *mat.VecDense) []float64 {
	return v.RawVector().Data
}

// requireIs asserts the sentinel identity of err, with a readable message.
func requireIs(t *testing.T, err, want error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errors.Is(err, want), "expected errors.Is(%v, %v)", err, want)
}

// expectPanic runs fn and asserts it panics with exactly the given message.
func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic %q, got none", want)
		require.Equal(t, want, r)
	}()
	fn()
}
