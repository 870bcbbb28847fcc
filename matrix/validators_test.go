package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[float64](nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(&matrix.Dense[float64]{}))
}

func TestValidateAugmented(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		ok         bool
	}{
		{"empty 0x0", 0, 0, false},
		{"empty system 0x1", 0, 1, true},
		{"2x3", 2, 3, true},
		{"square 3x3", 3, 3, false},
		{"too wide 2x4", 2, 4, false},
		{"tall 3x2", 3, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateAugmented(MustDense[float64](t, tc.rows, tc.cols))
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}

	require.ErrorIs(t, matrix.ValidateAugmented[int](nil), matrix.ErrNilMatrix)
}

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.NoError(t, matrix.ValidateVecLen[int](nil, 0))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
