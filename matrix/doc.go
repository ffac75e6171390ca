// SPDX-License-Identifier: MIT

// Package matrix offers the dense storage and primitive collaborators used by
// the latticization engine.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set, Clone,
//     row/column/sub-block extraction and a symmetric single-call edge write
//     (SetSymmetric) that keeps A[u,v] and A[v,u] in lock-step.
//   - Mask: a row-major boolean indicator matrix with elementwise AND/OR/NOT
//     and "any" reductions, used by frontier-based reachability searches.
//   - Numeric helpers (IsZero, GreaterOrEqual) that tolerate floating noise
//     under a single epsilon policy.
//   - LowerEdges: the (i, j) endpoint lists of an undirected adjacency matrix
//     in column-major lower-triangle order.
//   - Validators for the undirected-graph precondition (square, finite,
//     symmetric, zero diagonal, non-negative) returning sentinel errors.
//
// All public operations return sentinel errors (see errors.go) and never panic
// on user input. Option constructors (WithX) panic on nonsensical values.
package matrix
