// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, growable) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/SwapRows return errors instead of panicking.
//   - Allow the shape to grow row by row (AddRow) while keeping len(data) == rows*cols.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Prefer Row(i) views in hot loops: one bounds check per row, then plain slice indexing.
//   - Row views alias the backing buffer; they stay valid across SwapRows (contents move, slots do not)
//     but NOT across AddRow, which may reallocate.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); SwapRows: O(c); AddRow: O(c) amortized, O(r*c) on widening.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"       // method tag used in error wrappers
	ctxSet  = "Set"      // method tag used in error wrappers
	ctxRow  = "Row"      // method tag used in error wrappers
	ctxSwap = "SwapRows" // method tag used in error wrappers
)

// FieldWidth is the minimum width of one right-justified cell in Text output.
const FieldWidth = 10

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(a,b): <sentinel>", preserving the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, a, b, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows = height, cols = width).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is an empty 0×0 matrix ready for AddRow.
// Dense performs no internal synchronization; it is meant for a single owner.
type Dense[T Number] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for an explicit shape; 0 rows or 0 cols are legal.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Returns:
//   - *Dense[T]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFromRows builds a matrix from nested rows, exactly as successive AddRow
// calls would: the width is the longest row and shorter rows are zero-padded.
// The input slices are copied; later changes to them do not affect the matrix.
//
// Complexity: Time O(r*c), Space O(r*c) (single allocation, no relayout).
func NewFromRows[T Number](rows [][]T) *Dense[T] {
	cols := 0
	for _, row := range rows { // first pass: final width
		if len(row) > cols {
			cols = len(row)
		}
	}

	m := &Dense[T]{r: len(rows), c: cols, data: make([]T, len(rows)*cols)}
	for i, row := range rows {
		copy(m.data[i*cols:], row)
	}

	return m
}

// Rows returns the row count (height). Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count (width). Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Dimensions returns the current shape as (width, height).
// Complexity: O(1).
func (m *Dense[T]) Dimensions() (width, height int) { return m.c, m.r }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Callers wrap the sentinel with their own method tag and coordinates.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a mutable view of row i: a slice over the backing storage,
// capped at the row end so that append on the view can never spill into row i+1.
// MAIN DESCRIPTION:
//   - Bounds-checked row access replacing raw pointer arithmetic.
//
// Behavior highlights:
//   - Writes through the view are visible in the matrix.
//   - The view refers to a row SLOT: after SwapRows(i, j) it shows the new contents of slot i.
//   - AddRow may reallocate the buffer; views taken before it become detached.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.row(i), nil
}

// row is the unchecked form of Row for internal loops.
func (m *Dense[T]) row(i int) []T {
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi]
}

// AddRow appends values as a new bottom row.
// MAIN DESCRIPTION:
//   - Grows height by one; grows width to len(values) when the row is longer than the matrix.
//
// Implementation:
//   - Stage 1: if len(values) > Cols(), relayout every stored row into a wider buffer
//     (old cells keep their (row, col); new cells are zero).
//   - Stage 2: append one zero row of the current width and copy values into it
//     (shorter rows stay zero-padded on the right).
//
// Behavior highlights:
//   - Invariant len(data) == Rows()*Cols() holds after every call.
//   - values is copied; the caller may reuse it.
//
// Complexity:
//   - Time O(c) amortized; O(r*c) when the width grows. Space O(r*c) on relayout.
func (m *Dense[T]) AddRow(values []T) {
	if len(values) > m.c {
		m.widen(len(values))
	}
	m.data = append(m.data, make([]T, m.c)...)
	copy(m.data[m.r*m.c:], values)
	m.r++
}

// widen relayouts all stored rows to cols columns (cols > m.c).
// Reserves one extra row of capacity since AddRow appends right after.
func (m *Dense[T]) widen(cols int) {
	buf := make([]T, m.r*cols, (m.r+1)*cols)
	for i := 0; i < m.r; i++ {
		copy(buf[i*cols:i*cols+m.c], m.data[i*m.c:(i+1)*m.c])
	}
	m.data = buf
	m.c = cols
}

// SwapRows exchanges the contents of rows i and j in place.
// Both indices are validated first; i == j is then a no-op.
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, Rows()).
//
// Complexity: Time O(c), Space O(1).
func (m *Dense[T]) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}

	ri, rj := m.row(i), m.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ForEachRow calls action for every row in ascending index order, passing the
// row index and a mutable view of the row (see Row for aliasing rules).
// action must not call AddRow on m.
// Complexity: O(r) calls.
func (m *Dense[T]) ForEachRow(action func(i int, row []T)) {
	for i := 0; i < m.r; i++ {
		action(i, m.row(i))
	}
}

// Clone returns a deep copy with an independent buffer.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether other has the same shape and identical cells.
// A nil other is never equal.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for k, v := range m.data {
		if other.data[k] != v {
			return false
		}
	}

	return true
}

// Text renders the matrix as text: every cell right-justified in FieldWidth
// characters, cells separated by one space, one newline-terminated line per row.
// Integers print in decimal, floats in the shortest form that parses back to
// the same value, so ParseText(Text()) reproduces the contents.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Text() string {
	var b strings.Builder
	m.ForEachRow(func(_ int, row []T) {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*v", FieldWidth, v)
		}
		b.WriteByte('\n')
	})

	return b.String()
}

// String implements fmt.Stringer; identical to Text.
func (m *Dense[T]) String() string { return m.Text() }
