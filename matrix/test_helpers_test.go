// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and accessors that fail the test
//     immediately instead of threading errors through every assertion.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

// MustDense ALLOCATES an r×c zero matrix or fails the test.
func MustDense[T matrix.Number](t *testing.T, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Number](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES (i,j) or fails the test.
func MustSet[T matrix.Number](t *testing.T, m *matrix.Dense[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// RowsOf EXPORTS m as nested slices (copies) for whole-matrix comparisons.
func RowsOf[T matrix.Number](m *matrix.Dense[T]) [][]T {
	out := make([][]T, 0, m.Rows())
	m.ForEachRow(func(_ int, row []T) {
		out = append(out, append([]T(nil), row...))
	})

	return out
}
