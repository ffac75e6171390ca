// SPDX-License-Identifier: MIT
// Package: latmio/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits all unordered pairs (i<j) in lexicographic order.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"github.com/katalvlaran/latmio/matrix"
)

// Complete returns a Constructor that builds K_n.
func Complete() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if err := requireMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(MethodComplete, m, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
