// SPDX-License-Identifier: MIT
// Package: latmio/builder
//
// impl_tree.go - SpanningTree and Shuffle constructors.
//
// SpanningTree draws a random recursive tree: node i (i ≥ 1) attaches to a
// uniformly chosen node in [0, i). Layered before RandomSparse it yields a
// connected random graph, the usual input for latticization.
//
// Shuffle applies a uniformly random relabelling π to the whole matrix:
// M'[π(i)][π(j)] = M[i][j]. Degrees and connectivity are preserved.

package builder

import (
	"fmt"

	"github.com/katalvlaran/latmio/matrix"
)

// SpanningTree returns a Constructor adding a random spanning tree.
func SpanningTree() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodSpanningTree, ErrNeedRandSource)
		}
		for i := 1; i < m.Rows(); i++ {
			if err := addEdge(MethodSpanningTree, m, cfg, i, cfg.rng.Intn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Shuffle returns a Constructor that relabels nodes by a random permutation.
func Shuffle() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodShuffle, ErrNeedRandSource)
		}
		n := m.Rows()
		perm := cfg.rng.Perm(n)
		src := m.CloneDense()
		for i := 0; i < n; i++ {
			row := src.RowView(i)
			dst := m.RowView(perm[i])
			for j := 0; j < n; j++ {
				dst[perm[j]] = row[j]
			}
		}

		return nil
	}
}

// RandomConnected is the convenience layering SpanningTree, RandomSparse(p),
// Shuffle: a connected random graph with expected density above p.
func RandomConnected(p float64) []Constructor {
	return []Constructor{SpanningTree(), RandomSparse(p), Shuffle()}
}
