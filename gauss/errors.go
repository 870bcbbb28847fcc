// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set.
// Solve and Residual return these (or the matrix sentinels re-exported here),
// wrapped with an operation tag; match them via errors.Is.

package gauss

import (
	"errors"

	"github.com/katalvlaran/linsolve/matrix"
)

var (
	// ErrSingular is returned when a pivot is zero or within eps*scale of zero
	// during elimination or back-substitution. The system has no unique solution
	// (singular or inconsistent) or is too ill-conditioned to solve reliably.
	// Raised for every element type, integer or float, instead of dividing.
	ErrSingular = errors.New("gauss: singular system")

	// ErrUnsignedElements is returned by Solve for matrices of unsigned integers.
	ErrUnsignedElements = errors.New("gauss: unsigned element type not supported")

	// ErrResidual is returned by Verify when a solution misses an equation by
	// more than the requested tolerance.
	ErrResidual = errors.New("gauss: residual exceeds tolerance")

	// ErrDimensionMismatch is returned by Solve when the matrix is not N×(N+1).
	// Alias of matrix.ErrDimensionMismatch so either name matches with errors.Is.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNilMatrix is returned when a nil matrix is bound to a Solver.
	ErrNilMatrix = matrix.ErrNilMatrix
)
