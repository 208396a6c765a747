// SPDX-License-Identifier: MIT

// Package stochastic: functional configuration for numeric policy and
// iteration control. This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults then setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package stochastic

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the structural tolerance: entries may undershoot 0
	// by eps, column sums may deviate from 1 by eps, and the steady-state
	// eigenvalue must lie within eps of 1. The steady-state cancellation
	// threshold is pinned to this value and does not follow WithEpsilon.
	DefaultEpsilon = 1e-9

	// DefaultTolerance is the convergence threshold for successive iterates
	// in EvolveUntil, measured in the configured Norm.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps convergence-mode iteration. Reaching the cap
	// yields ErrNonConvergence together with the last iterate.
	DefaultMaxIterations = 1000

	// DefaultTotal is the conserved component-sum target a steady state is
	// rescaled to. 1 pins the steady state to a probability distribution.
	DefaultTotal = 1.0

	// DefaultNorm is the iterate-comparison norm for convergence mode.
	DefaultNorm = MaxAbs
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "stochastic: WithEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid = "stochastic: WithTolerance: tol must be finite, positive"
	panicMaxIterInvalid   = "stochastic: WithMaxIterations: cap must be positive"
	panicTotalInvalid     = "stochastic: WithTotal: total must be finite, non-zero"
	panicNormInvalid      = "stochastic: WithNorm: unknown norm"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-by-field to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	tol     float64 // > 0; DefaultTolerance
	maxIter int     // >= 1; DefaultMaxIterations
	total   float64 // finite, != 0; DefaultTotal
	norm    Norm    // DefaultNorm
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the structural tolerance eps.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - eps bounds entry negativity, column-sum deviation, unit-eigenvalue
//     distance, and imaginary-part negligibility. One knob, one meaning.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity: Time O(1), Space O(1).
//
// AI-Hints:
//   - Keep eps near 1e-9 for double-precision data; widen only for inputs
//     that went through lossy pipelines.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithTolerance sets the convergence threshold for successive iterates in
// EvolveUntil: iteration stops once dist(x_k, x_{k-1}) < tol in the
// configured Norm.
//
// Inputs:
//   - tol: positive finite threshold.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity: Time O(1), Space O(1).
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps convergence-mode iteration. When the cap is reached
// before tolerance, EvolveUntil returns the last iterate together with
// ErrNonConvergence.
//
// Inputs:
//   - n: positive iteration cap.
//
// Errors:
//   - Panics with a stable message when n < 1.
//
// Complexity: Time O(1), Space O(1).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithTotal sets the conserved component-sum target T for SteadyState.
// The steady-state ray is rescaled so its components sum to T; matching T
// to the initial vector's sum aligns the steady state with power iteration
// (component sums are invariant under a Markov matrix).
//
// Inputs:
//   - total: finite, non-zero target sum. Negative totals are legal and
//     flip the vector's orientation.
//
// Errors:
//   - Panics with a stable message when total is 0, NaN, or ±Inf.
//
// Complexity: Time O(1), Space O(1).
func WithTotal(total float64) Option {
	if isNonFinite(total) || total == 0 {
		panic(panicTotalInvalid)
	}

	return func(o *Options) { o.total = total }
}

// WithNorm selects the iterate-comparison norm for convergence mode.
//
// Inputs:
//   - n: MaxAbs, L1, or Euclid.
//
// Errors:
//   - Panics with a stable message on values outside the enumeration.
//
// Complexity: Time O(1), Space O(1).
func WithNorm(n Norm) Option {
	if n != MaxAbs && n != L1 && n != Euclid {
		panic(panicNormInvalid)
	}

	return func(o *Options) { o.norm = n }
}

// ---------- Internal resolution ----------

// defaultOptions returns the documented defaults. Kept separate from
// gatherOptions so tests can assert the defaults directly.
func defaultOptions() Options {
	return Options{
		eps:     DefaultEpsilon,
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
		total:   DefaultTotal,
		norm:    DefaultNorm,
	}
}

// gatherOptions resolves defaults, then applies user setters in order.
// Later setters win; all setters are idempotent.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		opt(&o)
	}

	return o
}
