// SPDX-License-Identifier: MIT
// Package: latmio/builder
//
// api.go - public entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/latmio/matrix"
)

// Constructor mutates an n×n adjacency matrix according to cfg.
// Implementations only add edges through addEdge (symmetric, first-wins)
// or permute the matrix as a whole.
type Constructor func(m *matrix.Dense, cfg builderConfig) error

// Build allocates an n×n zero matrix and applies cons in order.
//
// Errors: ErrTooFewVertices when n < 1, ErrConstructFailed on a nil
// constructor, and any constructor error wrapped with "Build:".
// Complexity: O(n²) allocation plus the constructors' own cost.
func Build(n int, opts []BuilderOption, cons ...Constructor) (*matrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("Build: n=%d: %w", n, ErrTooFewVertices)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}
