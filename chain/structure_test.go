// Package chain_test contains unit tests for structural classification.
package chain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/markov/chain"
)

// emptyMatrix is a 0×0 mat.Matrix; gonum constructors reject zero sizes,
// so the degenerate shape needs a bespoke type.
type emptyMatrix struct{}

func (emptyMatrix) Dims() (int, int)    { return 0, 0 }
func (emptyMatrix) At(_, _ int) float64 { panic("chain_test: At on empty matrix") }
func (emptyMatrix) T() mat.Matrix       { return emptyMatrix{} }

// TestClassify_StrictlyPositive: a dense chain forms a single aperiodic
// recurrent class, the regular case.
func TestClassify_StrictlyPositive(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 2, []float64{
		0.9, 0.2,
		0.1, 0.8,
	})

	s, err := chain.Classify(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}}, s.Classes)
	require.Equal(t, []int{0, 0}, s.Index)
	require.Equal(t, []int{1}, s.Period)
	require.Equal(t, []bool{true}, s.Recurrent)
	require.Empty(t, s.Absorbing)
	require.True(t, s.Irreducible())
	require.True(t, s.Aperiodic())
	require.True(t, s.Regular())
}

// TestClassify_Permutation: the two-state swap is irreducible but carries
// period 2, so it is not regular.
func TestClassify_Permutation(t *testing.T) {
	t.Parallel()

	p := mat.NewDense(2, 2, []float64{
		0, 1,
		1, 0,
	})

	s, err := chain.Classify(p)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}}, s.Classes)
	require.Equal(t, []int{2}, s.Period)
	require.Equal(t, []bool{true}, s.Recurrent)
	require.True(t, s.Irreducible())
	require.False(t, s.Aperiodic())
	require.False(t, s.Regular())
}

// TestClassify_ThreeCycle: 0→1→2→0 has period 3.
func TestClassify_ThreeCycle(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(3, 3, []float64{
		0, 0, 1,
		1, 0, 0,
		0, 1, 0,
	})

	s, err := chain.Classify(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2}}, s.Classes)
	require.Equal(t, []int{3}, s.Period)
}

// TestClassify_AbsorbingChain: state 0 absorbs, state 1 leaks into it.
// The leaking class is transient, the absorbing one recurrent.
func TestClassify_AbsorbingChain(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 2, []float64{
		1, 0.3,
		0, 0.7,
	})

	s, err := chain.Classify(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1}}, s.Classes)
	require.Equal(t, []int{0, 1}, s.Index)
	require.Equal(t, []int{1, 1}, s.Period)
	require.Equal(t, []bool{true, false}, s.Recurrent)
	require.Equal(t, []int{0}, s.Absorbing)
	require.False(t, s.Irreducible())
	require.True(t, s.Aperiodic())
	require.False(t, s.Regular())
}

// TestClassify_TransientWithoutSelfLoop: state 0 hops to 1 with certainty
// and never returns; its class has no cycle at all, hence period 0, and
// period 0 on a transient class does not spoil aperiodicity.
func TestClassify_TransientWithoutSelfLoop(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 2, []float64{
		0, 0,
		1, 1,
	})

	s, err := chain.Classify(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1}}, s.Classes)
	require.Equal(t, []int{0, 1}, s.Period)
	require.Equal(t, []bool{false, true}, s.Recurrent)
	require.Equal(t, []int{1}, s.Absorbing)
	require.True(t, s.Aperiodic())
}

// TestClassify_TwoBlocks: a block-diagonal chain decomposes into two
// recurrent classes; the periodic block vetoes aperiodicity.
func TestClassify_TwoBlocks(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(4, 4, []float64{
		0.9, 0.2, 0, 0,
		0.1, 0.8, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})

	s, err := chain.Classify(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {2, 3}}, s.Classes)
	require.Equal(t, []int{0, 0, 1, 1}, s.Index)
	require.Equal(t, []int{1, 2}, s.Period)
	require.Equal(t, []bool{true, true}, s.Recurrent)
	require.False(t, s.Irreducible())
	require.False(t, s.Aperiodic())
}

// TestClassify_EpsilonThreshold: couplings of 1e-12 sit below the default
// threshold and vanish; tightening epsilon brings them back and fuses the
// blocks into one class.
func TestClassify_EpsilonThreshold(t *testing.T) {
	t.Parallel()

	const leak = 1e-12
	a := mat.NewDense(4, 4, []float64{
		0, 1, leak, 0,
		1, 0, 0, 0,
		leak, 0, 0, 1,
		0, 0, 1, 0,
	})

	coarse, err := chain.Classify(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {2, 3}}, coarse.Classes)

	fine, err := chain.Classify(a, chain.WithEpsilon(1e-15))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2, 3}}, fine.Classes)
	require.Equal(t, []int{2}, fine.Period, "every cycle through the fused graph has even length")
}

// TestClassify_SingleAbsorbingState: the 1×1 identity is the smallest
// regular chain.
func TestClassify_SingleAbsorbingState(t *testing.T) {
	t.Parallel()

	s, err := chain.Classify(mat.NewDense(1, 1, []float64{1}))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}}, s.Classes)
	require.Equal(t, []int{1}, s.Period)
	require.Equal(t, []bool{true}, s.Recurrent)
	require.Equal(t, []int{0}, s.Absorbing)
	require.True(t, s.Regular())
}

// TestClassify_EmptyMatrix: zero states classify to an empty Structure.
func TestClassify_EmptyMatrix(t *testing.T) {
	t.Parallel()

	s, err := chain.Classify(emptyMatrix{})
	require.NoError(t, err)
	require.Empty(t, s.Classes)
	require.Empty(t, s.Index)
	require.Empty(t, s.Absorbing)
	require.False(t, s.Irreducible())
	require.True(t, s.Aperiodic())
}

// TestClassify_Guards covers nil input, shape violations, and option abuse.
func TestClassify_Guards(t *testing.T) {
	t.Parallel()

	_, err := chain.Classify(nil)
	require.Truef(t, errors.Is(err, chain.ErrNilMatrix), "expected ErrNilMatrix, got %v", err)

	_, err = chain.Classify(mat.NewDense(2, 3, nil))
	require.Truef(t, errors.Is(err, chain.ErrNonSquare), "expected ErrNonSquare, got %v", err)

	valid := mat.NewDense(1, 1, []float64{1})
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = chain.Classify(valid, chain.WithEpsilon(eps))
		require.Truef(t, errors.Is(err, chain.ErrOptionViolation), "eps=%v: expected ErrOptionViolation, got %v", eps, err)
	}
}

// TestClassify_EpsilonZeroKeepsAllPositiveEntries: with eps 0 any strictly
// positive entry is an edge, while exact zeros still are not.
func TestClassify_EpsilonZeroKeepsAllPositiveEntries(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 2, []float64{
		0, 1e-300,
		1, 1,
	})

	s, err := chain.Classify(a, chain.WithEpsilon(0))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}}, s.Classes, "the 1e-300 back-edge makes the chain irreducible")

	s, err = chain.Classify(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1}}, s.Classes)
}
