// SPDX-License-Identifier: MIT
// Package stochastic: random Markov matrices.
// The classic demonstration input: draw every entry from Uniform(0,1), then
// column-normalize. The result is strictly positive, so Perron–Frobenius
// applies and power iteration converges to a unique steady state.

package stochastic

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomStochastic builds an n×n column-stochastic matrix from Uniform(0,1)
// draws normalized column by column.
//
// Inputs:
//   - n: positive dimension.
//   - src: randomness source; nil falls back to the package-global source
//     (fine for demos, pass a seeded source for reproducible output).
//
// Returns:
//   - a matrix that passes Validate; strictly positive entries make the
//     steady state unique.
//
// Errors:
//   - ErrBadDimension when n < 1. Normalization errors cannot occur for
//     uniform draws but still propagate if the source misbehaves.
//
// Determinism: determined entirely by src; a seeded source reproduces the
// same matrix.
//
// Complexity: Time O(n²), Space O(n²).
func RandomStochastic(n int, src rand.Source) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomStochastic: n=%d: %w", n, ErrBadDimension)
	}

	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	data := make([]float64, n*n)
	for i := range data {
		data[i] = u.Rand()
	}

	out, _, err := NormalizeColumns(mat.NewDense(n, n, data))

	return out, err
}
