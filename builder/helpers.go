// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/latmio/matrix"
)

// addEdge joins u and v with a weight from cfg.weightFn unless the edge
// already exists or u == v. Existing weights are never overwritten.
func addEdge(method string, m *matrix.Dense, cfg builderConfig, u, v int) error {
	if u == v {
		return nil
	}
	if m.RowView(u)[v] != 0 {
		return nil
	}
	w := cfg.weightFn(cfg.rng)
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%s: weight %g for (%d,%d): %w", method, w, u, v, ErrConstructFailed)
	}
	if err := m.SetSymmetric(u, v, w); err != nil {
		return fmt.Errorf("%s: SetSymmetric(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// requireMin validates n >= minimum for method.
func requireMin(method string, n, minimum int) error {
	if n < minimum {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minimum, ErrTooFewVertices)
	}

	return nil
}
