// SPDX-License-Identifier: MIT
// Package: latmio/builder
//
// impl_wheel.go - Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub: a ring over nodes 1..n-1 plus spokes from node 0.
//   • Therefore n ≥ 4 (the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/latmio/matrix"
)

// Wheel returns a Constructor that builds the wheel Wₙ.
func Wheel() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if err := requireMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		ring := n - 1
		for i := 0; i < ring; i++ {
			if err := addEdge(MethodWheel, m, cfg, 1+i, 1+(i+1)%ring); err != nil {
				return err
			}
		}
		if err := Star()(m, cfg); err != nil {
			return fmt.Errorf("%s: spokes: %w", MethodWheel, err)
		}

		return nil
	}
}
