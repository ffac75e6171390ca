// SPDX-License-Identifier: MIT
// Package: latmio/builder
//
// impl_cycle.go - Cycle and RingLattice constructors.
//
// Contract:
//   • Cycle: n ≥ 3 (else ErrTooFewVertices); edges i-(i+1)%n for i=0..n-1.
//   • RingLattice(k): every node joined to its k nearest neighbours on each
//     side; 1 ≤ k and 2k < n. RingLattice(1) equals Cycle.
//   • Weight policy: cfg.weightFn(cfg.rng) per new edge, first-wins.
//
// Complexity:
//   • Time: O(n·k). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/latmio/matrix"
)

// Cycle returns a Constructor that builds the simple cycle C_n over all
// nodes of the target matrix.
func Cycle() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if err := requireMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, m, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// RingLattice returns a Constructor joining each node i to i±1..i±k (mod n).
// The result is the regular ring lattice latticization converges towards.
func RingLattice(k int) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if k < 1 || 2*k >= n {
			return fmt.Errorf("%s: k=%d requires 1 ≤ k and 2k < n=%d: %w", MethodRingLattice, k, n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for s := 1; s <= k; s++ {
				if err := addEdge(MethodRingLattice, m, cfg, i, (i+s)%n); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
