// Package gauss_test contains unit tests for the Gaussian elimination solver.
package gauss_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/matrix"
)

const solveTol = 1e-9

var allPolicies = []gauss.PivotPolicy{gauss.PivotPartial, gauss.PivotOnce, gauss.PivotPositive}

// solveRows builds a matrix from rows, solves it quietly and returns the
// solution together with an untouched copy of the system.
func solveRows[T matrix.Number](t *testing.T, rows [][]T, opts ...gauss.Option) ([]T, *matrix.Dense[T], error) {
	t.Helper()
	m := matrix.NewFromRows(rows)
	orig := m.Clone()
	s, err := gauss.New(m, opts...)
	require.NoError(t, err)
	x, err := s.Solve(false)

	return x, orig, err
}

// TestSolveZeroLeadingPivot checks that the pre-pass relocates a zero first pivot.
func TestSolveZeroLeadingPivot(t *testing.T) {
	for _, p := range allPolicies {
		t.Run(p.String(), func(t *testing.T) {
			x, _, err := solveRows(t, [][]float64{{0, 1, 3}, {1, 0, 2}}, gauss.WithPivot(p))
			require.NoError(t, err)
			require.InDeltaSlice(t, []float64{2, 3}, x, solveTol)
		})
	}
}

// TestSolveInconsistentSystem covers a 3×4 system whose rows satisfy
// r1 - 2·r2 + r3 = (0 0 0 | 6): no vector solves it, so every policy
// must report ErrSingular instead of returning Inf or NaN.
func TestSolveInconsistentSystem(t *testing.T) {
	rows := [][]float64{{1, 2, 3, 1}, {4, 5, 6, 0}, {7, 8, 9, 5}}
	for _, p := range allPolicies {
		t.Run(p.String(), func(t *testing.T) {
			s, err := gauss.New(matrix.NewFromRows(rows), gauss.WithPivot(p))
			require.NoError(t, err)

			x, err := s.Solve(false)
			require.ErrorIs(t, err, gauss.ErrSingular)
			require.Nil(t, x)
			require.Empty(t, s.Solution())
		})
	}
}

// TestSolveDimensionMismatch ensures non-augmented shapes fail before any mutation.
func TestSolveDimensionMismatch(t *testing.T) {
	cases := map[string][][]float64{
		"square":    {{0, 1}, {1, 0}},
		"too wide":  {{0, 1, 2, 3}, {4, 5, 6, 7}},
		"tall":      {{0, 1}, {2, 3}, {4, 5}},
		"one row":   {{0, 1, 2}},
		"empty 0x0": {},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			m := matrix.NewFromRows(rows)
			before := m.Clone()
			s, err := gauss.New(m)
			require.NoError(t, err)

			_, err = s.Solve(false)
			require.ErrorIs(t, err, gauss.ErrDimensionMismatch)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			require.True(t, m.Equal(before), "matrix must be untouched")
		})
	}
}

// TestSolveEmptySystem treats a 0×1 matrix as zero equations in zero unknowns.
func TestSolveEmptySystem(t *testing.T) {
	m, err := matrix.NewDense[float64](0, 1)
	require.NoError(t, err)
	s, err := gauss.New(m)
	require.NoError(t, err)

	x, err := s.Solve(false)
	require.NoError(t, err)
	require.NotNil(t, x)
	require.Empty(t, x)
}

// TestSolutionBeforeSolve checks the stored solution starts empty and non-nil.
func TestSolutionBeforeSolve(t *testing.T) {
	s, err := gauss.New(matrix.NewFromRows([][]float64{{2, 1, 5}, {1, 3, 10}}))
	require.NoError(t, err)
	require.NotNil(t, s.Solution())
	require.Empty(t, s.Solution())
}

// TestSolutionIsCopy ensures callers cannot mutate the stored solution.
func TestSolutionIsCopy(t *testing.T) {
	s, err := gauss.New(matrix.NewFromRows([][]float64{{2, 1, 5}, {1, 3, 10}}))
	require.NoError(t, err)

	x, err := s.Solve(false)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 3}, x, solveTol)

	x[0] = 100
	got := s.Solution()
	require.InDelta(t, 1.0, got[0], solveTol)
	got[1] = 100
	require.InDelta(t, 3.0, s.Solution()[1], solveTol)
}

// TestSolveFailureClearsSolution makes a solved matrix singular and re-solves.
func TestSolveFailureClearsSolution(t *testing.T) {
	m := matrix.NewFromRows([][]float64{{2, 1, 5}, {1, 3, 10}})
	s, err := gauss.New(m)
	require.NoError(t, err)
	_, err = s.Solve(false)
	require.NoError(t, err)
	require.Len(t, s.Solution(), 2)

	// Solve left [[2 1 5] [0 2.5 7.5]]; zero the second pivot.
	require.NoError(t, m.Set(1, 1, 0))
	_, err = s.Solve(false)
	require.ErrorIs(t, err, gauss.ErrSingular)
	require.Empty(t, s.Solution())
}

// TestNewAndSetMatrix covers binding, rebinding and nil rejection.
func TestNewAndSetMatrix(t *testing.T) {
	_, err := gauss.New[float64](nil)
	require.ErrorIs(t, err, gauss.ErrNilMatrix)

	first := matrix.NewFromRows([][]float64{{2, 1, 5}, {1, 3, 10}})
	s, err := gauss.New(first)
	require.NoError(t, err)
	require.Same(t, first, s.Matrix())
	_, err = s.Solve(false)
	require.NoError(t, err)

	second := matrix.NewFromRows([][]float64{{4, 8}})
	require.NoError(t, s.SetMatrix(second))
	require.Same(t, second, s.Matrix())
	require.Empty(t, s.Solution(), "rebinding discards the old solution")

	x, err := s.Solve(false)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2}, x, solveTol)

	require.ErrorIs(t, s.SetMatrix(nil), gauss.ErrNilMatrix)
	require.Same(t, second, s.Matrix())
}

// TestSolveMutatesInPlace checks the bound matrix ends in row-echelon form
// with exact zeros below the diagonal.
func TestSolveMutatesInPlace(t *testing.T) {
	m := matrix.NewFromRows([][]float64{{1, 2, 1, 8}, {3, 1, 2, 13}, {2, 3, 4, 20}})
	s, err := gauss.New(m)
	require.NoError(t, err)
	_, err = s.Solve(false)
	require.NoError(t, err)

	for i := 1; i < m.Rows(); i++ {
		for j := 0; j < i; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v, "cell (%d,%d)", i, j)
		}
	}
}

// TestSolveRandomSystems is a property check: for diagonally dominant random
// systems every policy yields a vector within tolerance of all equations.
func TestSolveRandomSystems(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, p := range allPolicies {
		for n := 1; n <= 8; n++ {
			rows := make([][]float64, n)
			for i := range rows {
				rows[i] = make([]float64, n+1)
				for j := range rows[i] {
					rows[i][j] = rng.Float64()*2 - 1
				}
				rows[i][i] = float64(n) + 1 + rng.Float64()
			}

			x, orig, err := solveRows(t, rows, gauss.WithPivot(p))
			require.NoError(t, err, "policy %s, n=%d", p, n)
			worst, err := gauss.MaxResidual(orig, x)
			require.NoError(t, err)
			require.LessOrEqual(t, worst, solveTol, "policy %s, n=%d", p, n)
			require.NoError(t, gauss.Verify(orig, x, solveTol))
		}
	}
}

// TestSolveIntegerElements checks integer matrices: exact results, rounding of
// non-integral results and ErrSingular instead of a division panic.
func TestSolveIntegerElements(t *testing.T) {
	for _, p := range allPolicies {
		t.Run(p.String(), func(t *testing.T) {
			x, _, err := solveRows(t, [][]int{{1, 1, 3}, {1, -1, 1}}, gauss.WithPivot(p))
			require.NoError(t, err)
			require.Equal(t, []int{2, 1}, x)

			x64, _, err := solveRows(t, [][]int64{{2, 0, 3}, {0, 1, 1}}, gauss.WithPivot(p))
			require.NoError(t, err)
			require.Equal(t, []int64{2, 1}, x64, "1.5 rounds half away from zero")

			require.NotPanics(t, func() {
				_, _, err = solveRows(t, [][]int{{0, 0, 1}, {0, 0, 2}}, gauss.WithPivot(p))
			})
			require.ErrorIs(t, err, gauss.ErrSingular)
		})
	}
}

// TestSolveIntegerFractions covers integer systems whose elimination passes
// through non-integral factors and cells; intermediate values must not be rounded.
func TestSolveIntegerFractions(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want []int64
	}{
		{"2x2 det 1", [][]int64{{2, 1, 3}, {3, 2, 5}}, []int64{1, 1}},
		{"3x3 det 1", [][]int64{{5, 7, 3, 20}, {7, 11, 2, 20}, {3, 2, 6, 20}}, []int64{140, -80, -40}},
		{"3x3 det -1", [][]int64{{2, 1, 1, 7}, {1, 3, 2, 13}, {1, 0, 0, 1}}, []int64{1, 2, 3}},
	}
	for _, tc := range cases {
		for _, p := range allPolicies {
			t.Run(tc.name+"/"+p.String(), func(t *testing.T) {
				x, orig, err := solveRows(t, tc.rows, gauss.WithPivot(p))
				require.NoError(t, err)
				require.Equal(t, tc.want, x)

				worst, err := gauss.MaxResidual(orig, x)
				require.NoError(t, err)
				require.Zero(t, worst)
			})
		}
	}
}

// TestSolveIntegerEchelonWriteBack checks the bound integer matrix receives the
// rounded echelon form, with exact zeros below the diagonal.
func TestSolveIntegerEchelonWriteBack(t *testing.T) {
	m := matrix.NewFromRows([][]int64{{2, 1, 3}, {3, 2, 5}})
	s, err := gauss.New(m)
	require.NoError(t, err)
	_, err = s.Solve(false)
	require.NoError(t, err)

	// Rows swapped to [3 2 5] [2 1 3]; the second becomes [0 -1/3 -1/3], rounded to zero.
	require.True(t, m.Equal(matrix.NewFromRows([][]int64{{3, 2, 5}, {0, 0, 0}})), "got:\n%s", m)
}

// TestSolveUnsignedRejected ensures unsigned matrices fail before any mutation.
func TestSolveUnsignedRejected(t *testing.T) {
	m := matrix.NewFromRows([][]uint{{0, 1, 3}, {1, 0, 2}})
	before := m.Clone()
	s, err := gauss.New(m)
	require.NoError(t, err)

	_, err = s.Solve(false)
	require.ErrorIs(t, err, gauss.ErrUnsignedElements)
	require.True(t, m.Equal(before))
	require.Empty(t, s.Solution())
}

// TestSolveInfiniteCoefficient checks that an infinite coefficient yields
// ErrSingular rather than NaN, with and without a zero epsilon.
func TestSolveInfiniteCoefficient(t *testing.T) {
	rows := [][]float64{{math.Inf(1), 0, 1}, {0, 0, 2}}
	for _, opts := range [][]gauss.Option{nil, {gauss.WithEpsilon(0)}} {
		x, _, err := solveRows(t, rows, opts...)
		require.ErrorIs(t, err, gauss.ErrSingular)
		require.Nil(t, x)
	}
}

// TestSolveExactZeroPivotWithZeroEpsilon checks exact-zero detection when eps is 0.
func TestSolveExactZeroPivotWithZeroEpsilon(t *testing.T) {
	_, _, err := solveRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}}, gauss.WithEpsilon(0))
	require.ErrorIs(t, err, gauss.ErrSingular)
}

// TestPivotOnceVersusPartial builds a system whose pivot vanishes during
// elimination under the pre-pass order; re-selection avoids it.
func TestPivotOnceVersusPartial(t *testing.T) {
	// A = [[4 2 1] [2 1 9] [1 0.9 5]], x = (1, 2, 3).
	rows := [][]float64{{4, 2, 1, 11}, {2, 1, 9, 31}, {1, 0.9, 5, 17.8}}

	_, _, err := solveRows(t, rows, gauss.WithPivot(gauss.PivotOnce))
	require.ErrorIs(t, err, gauss.ErrSingular)

	x, _, err := solveRows(t, rows, gauss.WithPivot(gauss.PivotPartial))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2, 3}, x, solveTol)
}

// TestPivotPositiveNegativeLeading shows the historic pre-pass never chooses a
// negative pivot and can move a zero onto the diagonal, while the magnitude
// policies solve the same system.
func TestPivotPositiveNegativeLeading(t *testing.T) {
	rows := [][]float64{{-1, 0, -2}, {0, -1, -3}}

	_, _, err := solveRows(t, rows, gauss.WithPivot(gauss.PivotPositive))
	require.ErrorIs(t, err, gauss.ErrSingular)

	for _, p := range []gauss.PivotPolicy{gauss.PivotPartial, gauss.PivotOnce} {
		x, _, err := solveRows(t, rows, gauss.WithPivot(p))
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{2, 3}, x, solveTol)
	}
}

// TestSolveEpsilon checks the relative singularity threshold and its override.
func TestSolveEpsilon(t *testing.T) {
	rows := [][]float64{{1, 1, 2}, {1, 1 + 1e-13, 2}}

	_, _, err := solveRows(t, rows)
	require.ErrorIs(t, err, gauss.ErrSingular)

	x, _, err := solveRows(t, rows, gauss.WithEpsilon(0))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 0}, x, solveTol)
}

// TestSolveVerboseTrace compares the full trace of a small system.
func TestSolveVerboseTrace(t *testing.T) {
	var buf bytes.Buffer
	s, err := gauss.New(matrix.NewFromRows([][]float64{{0, 1, 3}, {1, 0, 2}}), gauss.WithTrace(&buf))
	require.NoError(t, err)

	_, err = s.Solve(true)
	require.NoError(t, err)

	want := "" +
		"         0          1          3\n" +
		"         1          0          2\n" +
		"\n" +
		"Moving rows with max elements to the main diagonal:\n" +
		"  row 2 -> row 1, pivot = 1\n" +
		"         1          0          2\n" +
		"         0          1          3\n" +
		"\n" +
		"Transforming system matrix into row echelon form:\n" +
		"         1          0          2\n" +
		"         0          1          3\n" +
		"\n" +
		"System solution:\n" +
		"{ x1 = 2; x2 = 3 }\n"
	require.Equal(t, want, buf.String())
}

// TestSolveQuietWritesNothing ensures verbose=false leaves the trace writer empty,
// also when the solve fails.
func TestSolveQuietWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	for _, rows := range [][][]float64{{{0, 1, 3}, {1, 0, 2}}, {{0, 0, 1}, {0, 0, 2}}} {
		s, err := gauss.New(matrix.NewFromRows(rows), gauss.WithTrace(&buf))
		require.NoError(t, err)
		_, _ = s.Solve(false)
	}
	require.Zero(t, buf.Len())
}

// TestSolvePositiveTraceSwap checks the swap line format under the historic policy.
func TestSolvePositiveTraceSwap(t *testing.T) {
	var buf bytes.Buffer
	s, err := gauss.New(
		matrix.NewFromRows([][]int{{1, 1, 3}, {1, -1, 1}}),
		gauss.WithPivot(gauss.PivotPositive),
		gauss.WithTrace(&buf),
	)
	require.NoError(t, err)

	_, err = s.Solve(true)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "  row 1 -> row 2, pivot = 1\n")
	require.Contains(t, buf.String(), "{ x1 = 2; x2 = 1 }\n")
}

func TestFormatSolution(t *testing.T) {
	require.Equal(t, "{ }", gauss.FormatSolution([]float64{}))
	require.Equal(t, "{ x1 = 7 }", gauss.FormatSolution([]int{7}))
	require.Equal(t, "{ x1 = 2; x2 = -0.5; x3 = 1e-09 }", gauss.FormatSolution([]float64{2, -0.5, 1e-9}))
}
