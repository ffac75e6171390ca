// SPDX-License-Identifier: MIT

// Package topology checks the structural invariants a degree-preserving,
// connectivity-preserving rewiring must keep: per-node edge counts,
// connectedness, symmetry and an empty diagonal.
//
// Adjacency matrices are bridged to gonum's graph model (ToGraph) so that
// component discovery reuses gonum/graph/topo instead of a local traversal.
// Degree and strength are read straight from the matrix rows.
package topology
