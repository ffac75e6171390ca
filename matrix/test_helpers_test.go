// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic adjacency fixtures for validators and masks.
//   • Keep all data finite and well-formed unless a test breaks it on purpose.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmio/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// Ring returns the unweighted n-cycle adjacency matrix.
func Ring(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		require.NoError(t, m.SetSymmetric(i, (i+1)%n, 1))
	}

	return m
}

// CompareExact asserts m equals want cell by cell.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols())
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// raw is a Matrix without a numeric policy, so tests can plant NaN/Inf.
type raw [][]float64

func (r raw) Rows() int                    { return len(r) }
func (r raw) Cols() int                    { return len(r[0]) }
func (r raw) At(i, j int) (float64, error) { return r[i][j], nil }

func (r raw) Set(i, j int, v float64) error {
	r[i][j] = v
	return nil
}

func (r raw) Clone() matrix.Matrix {
	out := make(raw, len(r))
	for i := range r {
		out[i] = append([]float64(nil), r[i]...)
	}
	return out
}
