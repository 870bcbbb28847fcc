// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
)

// Residual returns r = A·x − b for the augmented system orig = [A | b].
// orig must be the UNSOLVED system (Solve reorders and eliminates in place,
// so keep a Clone taken before solving).
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch from shape validation.
//   - ErrDimensionMismatch when len(x) != Rows.
//
// Complexity: O(n^2) via gonum MulVec.
func Residual[T matrix.Number](orig *matrix.Dense[T], x []T) ([]float64, error) {
	if err := matrix.ValidateAugmented(orig); err != nil {
		return nil, solverErrorf(opResidual, err)
	}
	n := orig.Rows()
	if err := matrix.ValidateVecLen(x, n); err != nil {
		return nil, solverErrorf(opResidual, err)
	}
	if n == 0 {
		return []float64{}, nil
	}

	g, err := orig.ToGonum()
	if err != nil {
		return nil, solverErrorf(opResidual, err)
	}
	a := g.Slice(0, n, 0, n)
	b := mat.NewVecDense(n, mat.Col(nil, n, g))

	xs := make([]float64, n)
	for i, v := range x {
		xs[i] = float64(v)
	}

	var r mat.VecDense
	r.MulVec(a, mat.NewVecDense(n, xs))
	r.SubVec(&r, b)

	out := make([]float64, n)
	for i := range out {
		out[i] = r.AtVec(i)
	}

	return out, nil
}

// MaxResidual returns max_i |(A·x − b)_i|, the infinity norm of Residual.
// An empty system has residual 0.
func MaxResidual[T matrix.Number](orig *matrix.Dense[T], x []T) (float64, error) {
	r, err := Residual(orig, x)
	if err != nil {
		return 0, err
	}
	if len(r) == 0 {
		return 0, nil
	}

	return floats.Norm(r, math.Inf(1)), nil
}

// Verify checks that x satisfies orig within tol (absolute, per equation).
// A miss is reported as ErrResidual.
func Verify[T matrix.Number](orig *matrix.Dense[T], x []T, tol float64) error {
	worst, err := MaxResidual(orig, x)
	if err != nil {
		return err
	}
	if worst > tol || math.IsNaN(worst) {
		return fmt.Errorf("%s: max residual %g, tolerance %g: %w", opResidual, worst, tol, ErrResidual)
	}

	return nil
}
