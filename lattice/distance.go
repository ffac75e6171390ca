// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/latmio/matrix"
)

const (
	methodDistance = "Distance"
	methodCost     = "Cost"
)

// Distance returns the n×n ring-lattice distance matrix.
//
// Implementation:
//   - Stage 1: base vector u[0]=0, u[k]=min(k mod n, (n-k) mod n) for k=1..n-1.
//   - Stage 2: for v=1..ceil(n/2): row n-v = u rotated left by v positions,
//     row v-1 = row n-v reversed.
//
// The result is a pure function of n and is never mutated by this package
// after construction.
//
// Errors: ErrTooFewNodes when n < 1.
// Complexity: O(n²) time and space.
func Distance(n int) (*matrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodDistance, n, ErrTooFewNodes)
	}
	D, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistance, err)
	}

	u := baseVector(n)
	half := (n + 1) / 2 // ceil(n/2)
	var v, k int
	for v = 1; v <= half; v++ {
		down := D.RowView(n - v)
		for k = 0; k < n; k++ {
			down[k] = u[(k+v)%n]
		}
		up := D.RowView(v - 1)
		for k = 0; k < n; k++ {
			up[k] = down[n-1-k]
		}
	}

	return D, nil
}

// baseVector returns u with u[0]=0 and u[k] the shorter arc from 0 to k.
func baseVector(n int) []float64 {
	u := make([]float64, n)
	var k int
	for k = 1; k < n; k++ {
		u[k] = float64(min(k%n, (n-k)%n))
	}

	return u
}

// RingDistance is the closed form of Distance(n) at (p, q):
// min(|p-q|, n-|p-q|). Positions are taken modulo n.
func RingDistance(n, p, q int) int {
	if n <= 0 {
		return 0
	}
	d := ((p-q)%n + n) % n

	return min(d, n-d)
}

// Cost sums D[i][j] over the undirected edges (non-zero lower-triangle
// entries) of adj. Lower is more lattice-like; an accepted latticizing swap
// never increases it.
//
// Errors: ErrShapeMismatch, plus matrix validation errors.
// Complexity: O(n²).
func Cost(adj, D *matrix.Dense, eps float64) (float64, error) {
	if adj == nil || D == nil {
		return 0, fmt.Errorf("%s: %w", methodCost, matrix.ErrNilMatrix)
	}
	ar, ac := adj.Shape()
	dr, dc := D.Shape()
	if ar != ac || ar != dr || ac != dc {
		return 0, fmt.Errorf("%s: %dx%d vs %dx%d: %w", methodCost, ar, ac, dr, dc, ErrShapeMismatch)
	}
	rows, cols, err := matrix.LowerEdges(adj, eps)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodCost, err)
	}
	var sum float64
	for e := range rows {
		sum += D.RowView(rows[e])[cols[e]]
	}

	return sum, nil
}
