// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and gonum's mat.Dense,
// used when a float64 BLAS-backed view of the data is needed (residual checks,
// interop with gonum-based callers).
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a float64 copy of m as a *mat.Dense.
// gonum rejects zero-sized matrices, so an empty m yields ErrInvalidDimensions.
//
// Time Complexity: O(r*c)
func (m *Dense[T]) ToGonum() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("ToGonum(%dx%d): %w", m.r, m.c, ErrInvalidDimensions)
	}

	data := make([]float64, len(m.data))
	for k, v := range m.data {
		data[k] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum matrix into a new Dense[T].
// Values are converted with FromFloat, so integer targets round to nearest.
//
// Time Complexity: O(r*c)
func FromGonum[T Number](g mat.Matrix) *Dense[T] {
	r, c := g.Dims()
	out := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = FromFloat[T](g.At(i, j))
		}
	}

	return out
}
