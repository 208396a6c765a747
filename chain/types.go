// Package chain provides tunable options and error definitions
// for structural classification of transition matrices.
package chain

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for structural classification.
var (
	// ErrNilMatrix is returned if a nil matrix is passed.
	ErrNilMatrix = errors.New("chain: nil matrix")

	// ErrNonSquare is returned when the input matrix is not square.
	ErrNonSquare = errors.New("chain: matrix is not square")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chain: invalid option supplied")
)

// DefaultEpsilon is the edge threshold: an entry A(i,j) counts as a
// transition j→i only when it exceeds this value. Matches the numeric
// tolerance used elsewhere in the module.
const DefaultEpsilon = 1e-9

// Option configures classification via functional arguments.
// If an Option is invalid (e.g. negative epsilon), it is recorded
// internally and surfaced as ErrOptionViolation when Classify is invoked.
type Option func(*Options)

// Options holds parameters customizing classification.
type Options struct {
	// Epsilon is the threshold separating structural zeros from genuine
	// transition probabilities.
	Epsilon float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Epsilon = DefaultEpsilon
//   - error channel clear.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, err: nil}
}

// WithEpsilon overrides the edge threshold.
//
//	eps >= 0 and finite: entries at or below eps are structural zeros
//	eps < 0 or NaN/Inf:  invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		switch {
		case math.IsNaN(eps) || math.IsInf(eps, 0):
			o.err = fmt.Errorf("%w: Epsilon must be finite (%g)", ErrOptionViolation, eps)
		case eps < 0:
			o.err = fmt.Errorf("%w: Epsilon cannot be negative (%g)", ErrOptionViolation, eps)
		default:
			o.Epsilon = eps
		}
	}
}

// Structure holds the outcome of a structural classification:
//   - Classes: communicating classes, each sorted ascending, ordered by
//     their smallest member.
//   - Index: map from state to the position of its class in Classes.
//   - Period: per-class period (gcd of cycle lengths through the class);
//     0 marks a class containing no cycle at all.
//   - Recurrent: per-class flag, true when no transition leaves the class.
//   - Absorbing: states i whose self-transition A(i,i) is within epsilon
//     of 1, sorted ascending.
type Structure struct {
	Classes   [][]int
	Index     []int
	Period    []int
	Recurrent []bool
	Absorbing []int
}

// Irreducible reports whether every state communicates with every other,
// i.e. the chain forms a single class.
func (s *Structure) Irreducible() bool { return len(s.Classes) == 1 }

// Aperiodic reports whether every recurrent class has period one.
// Transient classes do not count: their states are left forever, so they
// impose no cycle on the long-run behavior.
func (s *Structure) Aperiodic() bool {
	for ci, p := range s.Period {
		if s.Recurrent[ci] && p != 1 {
			return false
		}
	}

	return true
}

// Regular reports whether the chain is irreducible and aperiodic, the
// precondition for a unique strictly positive steady state reached from
// every starting distribution.
func (s *Structure) Regular() bool { return s.Irreducible() && s.Aperiodic() }
