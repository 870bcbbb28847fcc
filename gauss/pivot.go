// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// moveMaxRows reorders rows so that, column by column, a large leading
// coefficient lands on the diagonal. Applied once, before elimination.
func (e *elimination[T]) moveMaxRows() {
	if e.policy == PivotPositive {
		e.movePositiveRows()
		return
	}

	// Magnitude pre-pass: only rows not yet placed compete for slot moveTo.
	var (
		bestI, moveTo int
		best, a       float64
	)
	for j := 0; j < e.w && moveTo < e.h; j++ {
		bestI, best = moveTo, -1
		for i := moveTo; i < e.h; i++ {
			if a = math.Abs(e.a[i][j]); a > best {
				best, bestI = a, i
			}
		}
		e.swap(bestI, moveTo, j)
		moveTo++
	}
}

// movePositiveRows is the historic pre-pass (PivotPositive): strict > against
// a running maximum reset to zero per column, all rows scanned, and the
// remembered row index is NOT reset between columns.
func (e *elimination[T]) movePositiveRows() {
	var (
		maxV          float64
		maxI, moveTo  int
		width, height = e.w, e.h
	)
	for j := 0; j < width; j++ {
		for i := 0; i < height; i++ {
			if e.a[i][j] > maxV {
				maxV = e.a[i][j]
				maxI = i
			}
		}
		if moveTo > height-1 {
			return // every row placed
		}
		e.swap(maxI, moveTo, j)
		maxV = 0
		moveTo++
	}
}

// reselect swaps the largest-magnitude entry of column k (rows k..h-1) into
// row k. Used by PivotPartial at each elimination step.
func (e *elimination[T]) reselect(k int) {
	p, best := k, math.Abs(e.a[k][k])
	for i := k + 1; i < e.h; i++ {
		if a := math.Abs(e.a[i][k]); a > best {
			p, best = i, a
		}
	}
	e.swap(p, k, k)
}

// swap moves row src into slot dst (exchanging contents) and reports the
// pivot now sitting at (dst, col). No-op, and no trace, when src == dst.
func (e *elimination[T]) swap(src, dst, col int) {
	if src == dst {
		return
	}
	_ = e.m.SwapRows(src, dst) // indices come from loops bounded by Rows(); cannot fail
	e.a[src], e.a[dst] = e.a[dst], e.a[src]
	pivot := matrix.FromFloat[T](e.a[dst][col])
	e.tr.swap(src, dst, pivot)
	log.Debugw("pivot swap", "from", src, "to", dst, "col", col, "pivot", pivot)
}
