// SPDX-License-Identifier: MIT

// Package gauss: functional configuration for the solver.
// This file defines:
//   - PivotPolicy and its text form (for CLI flags),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package gauss

import (
	"fmt"
	"io"
	"math"
	"os"
)

// PivotPolicy selects how pivot rows are chosen.
type PivotPolicy int

const (
	// PivotPartial brings the largest-magnitude entry of each column to the diagonal
	// in a pre-pass over the not-yet-placed rows, and re-selects by magnitude at every
	// elimination step (classic partial pivoting).
	PivotPartial PivotPolicy = iota

	// PivotOnce runs only the magnitude pre-pass; elimination keeps the resulting order.
	// A pivot that becomes zero during elimination fails with ErrSingular.
	PivotOnce

	// PivotPositive reproduces the historic pre-pass: per column the largest value is
	// chosen with a strict > against a running maximum that starts at zero, over ALL
	// rows (placed ones included), and the remembered row carries over to the next
	// column when nothing positive is found. Negative pivots are never selected.
	// No re-selection during elimination.
	PivotPositive
)

var pivotNames = [...]string{
	PivotPartial:  "partial",
	PivotOnce:     "once",
	PivotPositive: "positive",
}

// String returns the flag spelling of p.
func (p PivotPolicy) String() string {
	if p < 0 || int(p) >= len(pivotNames) {
		return fmt.Sprintf("PivotPolicy(%d)", int(p))
	}

	return pivotNames[p]
}

// ParsePivotPolicy maps "partial", "once" or "positive" to a PivotPolicy.
func ParsePivotPolicy(s string) (PivotPolicy, error) {
	for p, name := range pivotNames {
		if name == s {
			return PivotPolicy(p), nil
		}
	}

	return 0, fmt.Errorf("gauss: unknown pivot policy %q (want partial, once or positive)", s)
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative singularity tolerance: a pivot p fails when
	// |p| <= DefaultEpsilon * scale, scale being the largest coefficient magnitude.
	DefaultEpsilon = 1e-12

	// DefaultPivot is the pivot policy used when WithPivot is not given.
	DefaultPivot = PivotPartial
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "gauss: WithEpsilon: eps must be finite, non-negative"
	panicPivotInvalid   = "gauss: WithPivot: unknown pivot policy"
	panicTraceNil       = "gauss: WithTrace: writer must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps   float64     // >= 0; DefaultEpsilon
	pivot PivotPolicy // DefaultPivot
	trace io.Writer   // verbose output sink; os.Stdout
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the relative tolerance used to declare a pivot singular.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Notes:
//   - eps == 0 detects exact zeros only; any nonzero pivot is divided by.
//
// AI-Hints:
//   - 1e-12 suits well-scaled float64 data; raise it for noisy inputs.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivot selects the pivot policy. Panics on values outside the declared set.
func WithPivot(p PivotPolicy) Option {
	if p < PivotPartial || p > PivotPositive {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = p }
}

// WithTrace redirects verbose output (matrix dumps, swap lines, solution line).
// Has no effect unless Solve is called with verbose=true.
func WithTrace(w io.Writer) Option {
	if w == nil {
		panic(panicTraceNil)
	}

	return func(o *Options) { o.trace = w }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:   DefaultEpsilon,
		pivot: DefaultPivot,
		trace: os.Stdout,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
