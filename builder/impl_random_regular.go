// SPDX-License-Identifier: MIT
// Package: latmio/builder
//
// impl_random_regular.go - RandomRegular(d) constructor.
//
// Canonical model:
//   • Undirected d-regular simple graph via stub-matching with bounded retries.
//   • A pairing is validated (no loops, no duplicate pairs, no pair already
//     present in the matrix) before any cell is written; on an invalid
//     pairing the stubs are reshuffled up to maxStubMatchingAttempts times.
//
// Contract:
//   • 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed once all attempts are exhausted.
//
// Complexity: O(n·d) time and space per attempt.

package builder

import (
	"fmt"

	"github.com/katalvlaran/latmio/matrix"
)

// RandomRegular returns a Constructor drawing a random d-regular graph.
func RandomRegular(d int) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Rows()
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !validPairing(m, stubs) {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				if err := addEdge(MethodRandomRegular, m, cfg, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// validPairing reports whether consecutive stub pairs form a simple graph
// disjoint from the edges already in m.
func validPairing(m *matrix.Dense, stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		if m.RowView(u)[v] != 0 {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
