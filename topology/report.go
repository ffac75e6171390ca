// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/latmio/matrix"
)

// Report summarizes the invariants of an after-graph relative to a
// before-graph.
type Report struct {
	Nodes            int  `json:"nodes"`
	EdgesBefore      int  `json:"edges_before"`
	EdgesAfter       int  `json:"edges_after"`
	DegreesPreserved bool `json:"degrees_preserved"`
	ConnectedBefore  bool `json:"connected_before"`
	Connected        bool `json:"connected"`
	Symmetric        bool `json:"symmetric"`
	ZeroDiagonal     bool `json:"zero_diagonal"`
}

// OK reports whether every rewiring invariant holds: degrees preserved,
// symmetry and zero diagonal kept, and connectivity kept when the
// before-graph was connected.
func (r Report) OK() bool {
	return r.DegreesPreserved && r.Symmetric && r.ZeroDiagonal &&
		(r.Connected || !r.ConnectedBefore)
}

// Compare evaluates after against before. Passing the same matrix twice
// yields a self-report of its structure.
//
// Errors: ErrShapeMismatch, matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Compare(before, after *matrix.Dense, eps float64) (Report, error) {
	var rep Report
	if err := squareDense(before); err != nil {
		return rep, fmt.Errorf("Compare: before: %w", err)
	}
	if err := squareDense(after); err != nil {
		return rep, fmt.Errorf("Compare: after: %w", err)
	}
	if before.Rows() != after.Rows() {
		return rep, fmt.Errorf("Compare: %d vs %d nodes: %w", before.Rows(), after.Rows(), ErrShapeMismatch)
	}
	rep.Nodes = before.Rows()

	db, err := Degrees(before, eps)
	if err != nil {
		return rep, err
	}
	da, err := Degrees(after, eps)
	if err != nil {
		return rep, err
	}
	rep.DegreesPreserved = slices.Equal(db, da)
	rep.EdgesBefore = sum(db) / 2
	rep.EdgesAfter = sum(da) / 2

	if rep.ConnectedBefore, err = IsConnected(before, eps); err != nil {
		return rep, err
	}
	if rep.Connected, err = IsConnected(after, eps); err != nil {
		return rep, err
	}
	rep.Symmetric = matrix.ValidateSymmetric(after, eps) == nil
	rep.ZeroDiagonal = matrix.ValidateZeroDiagonal(after, eps) == nil

	return rep, nil
}

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}
