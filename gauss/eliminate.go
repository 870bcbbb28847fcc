// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// elimination is the per-Solve working state over one augmented matrix.
// a is a float64 copy of m, row for row; every swap is applied to both so
// that m always shows the current row order. Elimination and back-substitution
// read and write only a; m receives the reduced cells once, through flush.
type elimination[T matrix.Number] struct {
	m      *matrix.Dense[T]
	a      [][]float64
	h, w   int         // height (unknowns) and width (h+1)
	tol    float64     // absolute singularity threshold: eps * scale
	policy PivotPolicy // pre-pass and per-step pivoting behavior
	tr     *tracer
}

// newElimination copies m into float64 rows and derives the singularity threshold.
// The scale is the largest magnitude in the coefficient block (constants excluded).
func newElimination[T matrix.Number](m *matrix.Dense[T], opts Options, tr *tracer) *elimination[T] {
	h, w := m.Rows(), m.Cols()
	a := make([][]float64, h)
	m.ForEachRow(func(i int, row []T) {
		a[i] = make([]float64, w)
		for j, v := range row {
			a[i][j] = float64(v)
		}
	})

	var scale float64
	for i := 0; i < h; i++ {
		for j := 0; j < h; j++ {
			scale = math.Max(scale, math.Abs(a[i][j]))
		}
	}

	return &elimination[T]{
		m:      m,
		a:      a,
		h:      h,
		w:      w,
		tol:    opts.eps * scale,
		policy: opts.pivot,
		tr:     tr,
	}
}

// checkPivot rejects a diagonal entry that is not strictly above the tolerance.
// Exact zeros always fail; so do NaN pivots, and every pivot when the
// tolerance itself is not finite (an infinite coefficient).
func (e *elimination[T]) checkPivot(k int) (float64, error) {
	p := e.a[k][k]
	if !(math.Abs(p) > e.tol) {
		log.Debugw("singular pivot", "row", k, "pivot", p, "tolerance", e.tol)
		return 0, fmt.Errorf("pivot %v in row %d (tolerance %g): %w", p, k+1, e.tol, ErrSingular)
	}

	return p, nil
}

// makeDiagonal reduces the working copy to row-echelon form.
// For each pivot row k and each row i below it: f = a[i][k]/a[k][k],
// a[i][j] -= f*a[k][j] for j > k, then a[i][k] is set to exactly zero.
// Under PivotPartial the pivot row is re-selected by magnitude first.
//
// Complexity: Time O(n^3), Space O(1).
func (e *elimination[T]) makeDiagonal() error {
	var (
		i, j, k    int
		pivot, f   float64
		err        error
		rowK, rowI []float64
	)
	for k = 0; k < e.h; k++ {
		if e.policy == PivotPartial {
			e.reselect(k)
		}
		if pivot, err = e.checkPivot(k); err != nil {
			return err
		}
		rowK = e.a[k]
		for i = k + 1; i < e.h; i++ {
			rowI = e.a[i]
			f = rowI[k] / pivot
			for j = k + 1; j < e.w; j++ {
				rowI[j] -= f * rowK[j]
			}
			rowI[k] = 0 // exact zero, not the rounded difference
		}
	}

	return nil
}

// flush stores the working copy back into m through matrix.FromFloat.
// Float matrices receive the exact reduced values; integer matrices the
// rounded ones, which are for display only and never fed back into a.
func (e *elimination[T]) flush() {
	e.m.ForEachRow(func(i int, row []T) {
		for j := range row {
			row[j] = matrix.FromFloat[T](e.a[i][j])
		}
	})
}

// calcSolution back-substitutes on the echelon form, bottom row first:
// x[i] = (a[i][n] - Σ_{j>i} a[i][j]*x[j]) / a[i][i].
//
// Complexity: Time O(n^2), Space O(n).
func (e *elimination[T]) calcSolution() ([]float64, error) {
	n := e.h
	x := make([]float64, n)

	var (
		sum, pivot float64
		err        error
	)
	for i := n - 1; i >= 0; i-- {
		row := e.a[i]
		sum = row[n]
		for j := i + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		if pivot, err = e.checkPivot(i); err != nil {
			return nil, err
		}
		x[i] = sum / pivot
	}

	return x, nil
}
