// SPDX-License-Identifier: MIT
// Package: latmio/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i-(i+1) for i=0..n-2 in ascending order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"github.com/katalvlaran/latmio/matrix"
)

// Path returns a Constructor that builds the simple path P_n.
func Path() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if err := requireMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(MethodPath, m, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
