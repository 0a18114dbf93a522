// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors, the determinant
// engine and the random generator. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters in order.
//
// Design goals:
//   - Deterministic behavior: no global state; randomness only via an explicit seed.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in constructors.
	DefaultValidateNaNInf = true

	// DefaultAlgorithm is the determinant kernel used when none is requested.
	DefaultAlgorithm = AlgorithmElimination

	// DefaultPivoting is the pivot strategy of the elimination kernel.
	DefaultPivoting = PivotLargest

	// DefaultSingularTolerance is the |det| threshold at or below which Inverse
	// reports ErrSingular. Zero means "exactly zero".
	DefaultSingularTolerance = 0.0

	// DefaultEpsilon is the tolerance used by tests and callers comparing
	// floating results with EqualApprox.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularTolInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
	panicAlgorithmInvalid   = "matrix: WithAlgorithm: unknown algorithm"
	panicPivotingInvalid    = "matrix: WithPivoting: unknown pivoting strategy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	// numeric policy
	validateNaNInf bool    // DefaultValidateNaNInf
	singularTol    float64 // DefaultSingularTolerance

	// determinant engine
	algorithm Algorithm // DefaultAlgorithm
	pivoting  Pivoting  // DefaultPivoting

	// random generator
	seed   int64
	seeded bool
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation (default).
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation in constructors (use with care).
//
// Notes:
//   - Kernels still run on such matrices; results follow IEEE-754 propagation.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAlgorithm selects the determinant kernel.
// Implementation:
//   - Stage 1: validate a is a known Algorithm.
//   - Stage 2: return a setter.
//
// Behavior highlights:
//   - Affects Determinant, Cofactor, CofactorMatrix, Adjugate and Inverse.
//
// Errors:
//   - Panics with a stable message on unknown values.
func WithAlgorithm(a Algorithm) Option {
	if a != AlgorithmElimination && a != AlgorithmCofactor {
		panic(panicAlgorithmInvalid)
	}

	return func(o *Options) { o.algorithm = a }
}

// WithPivoting selects the pivot strategy of the elimination kernel.
// Both strategies keep swap-count bookkeeping, so the sign of the result is
// identical; PivotLargest is numerically more stable on ill-conditioned input.
func WithPivoting(p Pivoting) Option {
	if p != PivotFirstNonZero && p != PivotLargest {
		panic(panicPivotingInvalid)
	}

	return func(o *Options) { o.pivoting = p }
}

// WithSingularTolerance sets the |det| threshold used by Inverse.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - The default 0 reproduces the exact "determinant == 0" rule.
//
// AI-Hints:
//   - Use a small positive tol (e.g., 1e-12) when inputs come from measurements.
func WithSingularTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithSeed makes RandomMatrix reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// gatherOptions applies user setters over the documented defaults.
// Last writer wins. Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		singularTol:    DefaultSingularTolerance,
		algorithm:      DefaultAlgorithm,
		pivoting:       DefaultPivoting,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
