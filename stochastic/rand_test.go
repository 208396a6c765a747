// SPDX-License-Identifier: MIT
// Package stochastic_test contains unit tests for random chain generation.
package stochastic_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/markov/stochastic"
)

// TestRandomStochastic_Validates: whatever the draws, the output is a
// strictly positive valid chain.
func TestRandomStochastic_Validates(t *testing.T) {
	t.Parallel()

	got, err := stochastic.RandomStochastic(5, rand.NewSource(42))
	require.NoError(t, err)

	r, c := got.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 5, c)
	require.NoError(t, stochastic.Validate(got))

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Greater(t, got.At(i, j), 0.0, "uniform draws normalize to positive entries")
			require.LessOrEqual(t, got.At(i, j), 1.0)
		}
	}
}

// TestRandomStochastic_SeedReproduces: equal seeds, equal matrices.
func TestRandomStochastic_SeedReproduces(t *testing.T) {
	t.Parallel()

	first, err := stochastic.RandomStochastic(4, rand.NewSource(7))
	require.NoError(t, err)
	second, err := stochastic.RandomStochastic(4, rand.NewSource(7))
	require.NoError(t, err)
	require.True(t, mat.Equal(first, second))

	other, err := stochastic.RandomStochastic(4, rand.NewSource(8))
	require.NoError(t, err)
	require.False(t, mat.Equal(first, other), "different seeds should differ")
}

// TestRandomStochastic_NilSourceWorks falls back to the global source.
func TestRandomStochastic_NilSourceWorks(t *testing.T) {
	t.Parallel()

	got, err := stochastic.RandomStochastic(3, nil)
	require.NoError(t, err)
	require.NoError(t, stochastic.Validate(got))
}

// TestRandomStochastic_BadDimension rejects non-positive sizes.
func TestRandomStochastic_BadDimension(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -3} {
		_, err := stochastic.RandomStochastic(n, rand.NewSource(1))
		requireIs(t, err, stochastic.ErrBadDimension)
	}
}

// TestRandomStochastic_PerronPipeline: strictly positive chains have a
// unique steady state; the whole toolkit agrees on it.
func TestRandomStochastic_PerronPipeline(t *testing.T) {
	t.Parallel()

	a, err := stochastic.RandomStochastic(6, rand.NewSource(1234))
	require.NoError(t, err)

	pi, err := stochastic.SteadyState(a)
	require.NoError(t, err)

	limit, _, err := stochastic.EvolveUntil(a, pi)
	require.NoError(t, err)
	require.InDeltaSlice(t, vecData(pi), vecData(limit), 1e-8,
		"the eigen steady state must be a fixed point of iteration")

	gap, err := stochastic.SpectralGap(a)
	require.NoError(t, err)
	require.Greater(t, gap, 0.0, "strictly positive chains mix")
}
