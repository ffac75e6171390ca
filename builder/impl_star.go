// SPDX-License-Identifier: MIT
// Package: latmio/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Node 0 is the center; spokes 0-leaf for leaf=1..n-1 in ascending order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"github.com/katalvlaran/latmio/matrix"
)

// Star returns a Constructor joining the center (node 0) to every other node.
func Star() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if err := requireMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(MethodStar, m, cfg, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
