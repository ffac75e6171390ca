// SPDX-License-Identifier: MIT

package topology

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/latmio/matrix"
)

// ErrShapeMismatch is returned when two matrices being compared differ in shape.
var ErrShapeMismatch = errors.New("topology: matrix shapes differ")

// ToGraph converts a square adjacency matrix into a gonum weighted undirected
// graph with node IDs 0..n-1. Only the strict upper triangle is read, so the
// diagonal is ignored and each unordered pair becomes one edge weighted
// m[i][j]. Entries with |w| <= eps are absent.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n²).
func ToGraph(m *matrix.Dense, eps float64) (*simple.WeightedUndirectedGraph, error) {
	if err := squareDense(m); err != nil {
		return nil, fmt.Errorf("ToGraph: %w", err)
	}
	n := m.Rows()
	g := simple.NewWeightedUndirectedGraph(0, 0)
	var i, j int
	for i = 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i = 0; i < n; i++ {
		row := m.RowView(i)
		for j = i + 1; j < n; j++ {
			if matrix.IsZero(row[j], eps) {
				continue
			}
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(j), row[j]))
		}
	}

	return g, nil
}

// Degrees returns the number of non-zero entries of every row.
func Degrees(m *matrix.Dense, eps float64) ([]int, error) {
	if err := squareDense(m); err != nil {
		return nil, fmt.Errorf("Degrees: %w", err)
	}
	n := m.Rows()
	deg := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		for _, v := range m.RowView(i) {
			if !matrix.IsZero(v, eps) {
				deg[i]++
			}
		}
	}

	return deg, nil
}

// Strengths returns the row sums (weighted degrees). Rewiring does not
// preserve them; they are reported for diagnostics only.
func Strengths(m *matrix.Dense) ([]float64, error) {
	if err := squareDense(m); err != nil {
		return nil, fmt.Errorf("Strengths: %w", err)
	}
	n := m.Rows()
	s := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		for _, v := range m.RowView(i) {
			s[i] += v
		}
	}

	return s, nil
}

// Components returns the connected components of m as sorted node-index
// lists, ordered by their smallest member.
func Components(m *matrix.Dense, eps float64) ([][]int, error) {
	g, err := ToGraph(m, eps)
	if err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}
	cc := topo.ConnectedComponents(g)
	out := make([][]int, 0, len(cc))
	for _, comp := range cc {
		ids := make([]int, len(comp))
		for k, node := range comp {
			ids[k] = int(node.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })

	return out, nil
}

// IsConnected reports whether m forms a single connected component.
func IsConnected(m *matrix.Dense, eps float64) (bool, error) {
	cc, err := Components(m, eps)
	if err != nil {
		return false, err
	}

	return len(cc) == 1, nil
}

// SameDegrees reports whether a and b have identical per-node edge counts.
func SameDegrees(a, b *matrix.Dense, eps float64) (bool, error) {
	da, err := Degrees(a, eps)
	if err != nil {
		return false, err
	}
	db, err := Degrees(b, eps)
	if err != nil {
		return false, err
	}

	return slices.Equal(da, db), nil
}

// squareDense rejects nil and non-square inputs.
func squareDense(m *matrix.Dense) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return matrix.ErrNonSquare
	}

	return nil
}
