// SPDX-License-Identifier: MIT

// Package matrix: element types.
// This file contains ONLY the numeric constraint shared by every generic type
// and helper in the package, plus the float64 bridge used by kernels that must
// compute in floating point regardless of the stored element type.
package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Dense may hold: any integer or
// floating-point type (named types included).
type Number interface {
	constraints.Integer | constraints.Float
}

// IsInteger reports whether T is an integer type.
// Complexity: O(1).
func IsInteger[T Number]() bool {
	half := 0.5 // non-constant so the conversion truncates instead of failing to compile

	return T(half) == 0
}

// IsUnsigned reports whether T is an unsigned integer type.
// Complexity: O(1).
func IsUnsigned[T Number]() bool {
	var zero T

	return zero-1 > 0
}

// FromFloat converts a float64 result back into T.
// Integer types round half away from zero; float types convert directly.
// Negative v has no defined conversion to an unsigned T; callers producing
// signed intermediates must reject unsigned types (see IsUnsigned).
//
// AI-Hints:
//   - Kernels computing in float64 (elimination factors, back-substitution)
//     use this to store results without truncation bias on integer matrices.
func FromFloat[T Number](v float64) T {
	if IsInteger[T]() {
		return T(math.Round(v))
	}

	return T(v)
}
