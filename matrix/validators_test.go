// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmio/matrix"
)

func TestValidateUndirected(t *testing.T) {
	var typedNil *matrix.Dense

	tests := []struct {
		name string
		m    matrix.Matrix
		opts []matrix.Option
		want error
	}{
		{"ring ok", Ring(t, 5), nil, nil},
		{"generic path ok", hide{Ring(t, 4)}, nil, nil},
		{"nil", nil, nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, nil, matrix.ErrNilMatrix},
		{"non-square", MustDense(t, 2, 3), nil, matrix.ErrNonSquare},
		{"nan", raw{{0, math.NaN()}, {math.NaN(), 0}}, nil, matrix.ErrNaNInf},
		{"asymmetric", MustRows(t, [][]float64{{0, 1}, {2, 0}}), nil, matrix.ErrAsymmetry},
		{"loop", MustRows(t, [][]float64{{1, 0}, {0, 0}}), nil, matrix.ErrNonZeroDiagonal},
		{"negative", MustRows(t, [][]float64{{0, -1}, {-1, 0}}), nil, matrix.ErrNegativeWeight},
		{"near-symmetric within eps", MustRows(t, [][]float64{{0, 1}, {1 + 1e-6, 0}}), []matrix.Option{matrix.WithEpsilon(1e-3)}, nil},
		{"near-symmetric default eps", MustRows(t, [][]float64{{0, 1}, {1 + 1e-6, 0}}), nil, matrix.ErrAsymmetry},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateUndirected(tc.m, tc.opts...)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_ReportsCell(t *testing.T) {
	err := matrix.ValidateSymmetric(MustRows(t, [][]float64{{0, 0, 1}, {0, 0, 0}, {0, 0, 0}}), 0)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	require.ErrorContains(t, err, "(0,2)")
}
