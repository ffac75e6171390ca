// SPDX-License-Identifier: MIT

// Package lattice builds the ring-lattice distance model used to score how
// lattice-like a graph is.
//
// Nodes are placed at positions 0..n-1 on a circle. The distance between two
// positions is the shorter of the two arcs between them:
//
//	D[p][q] = min(|p-q|, n-|p-q|)
//
// Distance builds the full n×n matrix the way latticization algorithms expect
// it: a base vector u is rotated to produce row n-v, and row v-1 is that row
// reversed, for v = 1..ceil(n/2). The result is symmetric, circulant and has a
// zero diagonal. RingDistance gives the closed form for a single pair and Cost
// sums D over the edges of an adjacency matrix.
//
// Quick ASCII example (n = 5):
//
//	0 1 2 2 1
//	1 0 1 2 2
//	2 1 0 1 2
//	2 2 1 0 1
//	1 2 2 1 0
package lattice
