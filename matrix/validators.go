// SPDX-License-Identifier: MIT
// Package matrix: centralized validators.
//
// Purpose:
//   - Keep shape/argument checks in one place so every consumer (solver,
//     residual, CLI) reports the same sentinels with the same tags.
//   - Validators never mutate their input.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAugmented – Ensures m is an augmented system matrix [A | b]:
// N equations, N unknowns, one constant column (Cols == Rows+1).
//
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateAugmented[T Number](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.c != m.r+1 {
		return validatorErrorf(
			fmt.Sprintf("ValidateAugmented: %dx%d, want %dx%d", m.r, m.c, m.r, m.r+1),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
// Time: O(1). Space: O(1).
func ValidateVecLen[T Number](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}
