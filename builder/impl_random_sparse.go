// SPDX-License-Identifier: MIT
// Package: latmio/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   • p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • For each unordered pair (i<j) in lexicographic order one Bernoulli(p)
//     trial is drawn; pairs already joined still consume their trial so the
//     RNG stream does not depend on earlier layers.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/latmio/matrix"
)

// RandomSparse returns a Constructor adding each absent edge with probability p.
func RandomSparse(p float64) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		n := m.Rows()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(MethodRandomSparse, m, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
