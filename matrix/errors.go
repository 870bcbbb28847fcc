// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Callers match them via errors.Is. Public accessors never panic on
// user-triggered conditions; they return one of these, wrapped with the
// method context and coordinates at the detection site.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrapping happens at the nearest detection site, e.g. "Dense.At(3,1): %w".

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set/Row/SwapRows return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a shape that does not fit the operation,
	// e.g. an augmented system whose width is not height+1, or a vector whose
	// length differs from the number of rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrFormat signals a token in a text source that cannot be parsed as the
	// element type of the target matrix.
	ErrFormat = errors.New("matrix: malformed number")
)
