// SPDX-License-Identifier: MIT
// Package gauss solves dense linear systems given as augmented matrices.
//
// Purpose:
//   - Bind a Solver to one caller-owned *matrix.Dense[T] holding [A | b].
//   - Run three sequential phases in place: pivot reordering, forward
//     elimination to row-echelon form, back-substitution.
//   - Keep the last solution vector inside the Solver for later retrieval.
//
// Determinism & Policy:
//   - Fixed loop orders; ties in pivot search keep the earliest row.
//   - Elimination and back-substitution run on a float64 copy of the rows
//     whatever T is; the bound matrix receives the echelon form and the
//     solution is converted once, both through matrix.FromFloat.
//   - Unsigned element types are rejected: elimination produces negative
//     intermediates that have no unsigned representation.
//   - A pivot with |p| <= eps*scale fails with ErrSingular for every T; no
//     division by zero, no silent NaN/Inf propagation.

package gauss

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/linsolve/matrix"
)

var log = logging.Logger("gauss")

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opSetMatrix = "SetMatrix"
	opSolve     = "Solve"
	opResidual  = "Residual"
)

// solverErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solver runs Gaussian elimination on a bound matrix.
//
// The Solver holds a NON-owning pointer: Solve mutates the caller's matrix
// (rows are reordered, the coefficient block becomes upper triangular).
// Clone the matrix first if the original system is still needed.
//
// A Solver is not safe for concurrent use, and nothing else may read or
// write the bound matrix while Solve runs.
type Solver[T matrix.Number] struct {
	m        *matrix.Dense[T] // bound system [A | b]; never nil
	solution []T              // last successful result; empty otherwise
	opts     Options
}

// New binds a Solver to m.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Complexity: O(k) for k options.
func New[T matrix.Number](m *matrix.Dense[T], opts ...Option) (*Solver[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, solverErrorf(opNew, err)
	}

	return &Solver[T]{
		m:        m,
		solution: []T{},
		opts:     gatherOptions(opts...),
	}, nil
}

// SetMatrix rebinds the Solver to m and discards the previous solution.
// Must not be called while Solve runs.
func (s *Solver[T]) SetMatrix(m *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return solverErrorf(opSetMatrix, err)
	}
	s.m = m
	s.solution = []T{}

	return nil
}

// Matrix returns the bound matrix (the same pointer passed to New/SetMatrix).
func (s *Solver[T]) Matrix() *matrix.Dense[T] { return s.m }

// Solution returns a copy of the last computed solution.
// Before any successful Solve (or after a failed one) it is empty, not nil.
func (s *Solver[T]) Solution() []T {
	out := make([]T, len(s.solution))
	copy(out, s.solution)

	return out
}

// Solve computes x with A·x = b for the bound N×(N+1) matrix [A | b].
// MAIN DESCRIPTION:
//   - Validates the shape, then reorders rows, eliminates below the diagonal and
//     back-substitutes; the solution is stored and a copy returned.
//
// Implementation:
//   - Stage 1: ValidateAugmented and the unsigned check (before ANY mutation).
//   - Stage 2: moveMaxRows per the pivot policy.
//   - Stage 3: makeDiagonal on the float64 working copy (sub-diagonal cells set to
//     exact zeros), then flush the echelon form into the matrix.
//   - Stage 4: calcSolution (bottom-up back-substitution).
//
// Behavior highlights:
//   - verbose=true writes the matrix before each phase, one line per row swap and
//     the final "{ x1 = ...; ... }" line to the WithTrace writer.
//   - N == 0 (a 0×1 matrix) is a valid empty system and returns an empty slice.
//
// Errors:
//   - ErrDimensionMismatch when Cols != Rows+1; the matrix is untouched.
//   - ErrUnsignedElements for unsigned T; the matrix is untouched.
//   - ErrSingular on a (near-)zero pivot. The matrix is left in whatever partially
//     reordered/eliminated state the failing step reached and the stored solution
//     is cleared; reload or restore a Clone before retrying.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the float64 working copy.
func (s *Solver[T]) Solve(verbose bool) ([]T, error) {
	s.solution = []T{}
	if err := matrix.ValidateAugmented(s.m); err != nil {
		return nil, solverErrorf(opSolve, err)
	}
	if matrix.IsUnsigned[T]() {
		return nil, solverErrorf(opSolve, ErrUnsignedElements)
	}

	e := newElimination(s.m, s.opts, newTracer(s.opts.trace, verbose))
	log.Debugw("solve", "unknowns", e.h, "pivot", s.opts.pivot.String(), "tolerance", e.tol)

	e.tr.dump(s.m, headerPivot)
	e.moveMaxRows()

	e.tr.dump(s.m, headerEchelon)
	err := e.makeDiagonal()
	e.flush()
	if err != nil {
		return nil, solverErrorf(opSolve, err)
	}

	e.tr.dump(s.m, headerSolution)
	x, err := e.calcSolution()
	if err != nil {
		return nil, solverErrorf(opSolve, err)
	}

	out := make([]T, len(x))
	for i, v := range x {
		out[i] = matrix.FromFloat[T](v)
	}
	solutionLine(e.tr, out)
	s.solution = out

	return s.Solution(), nil
}
