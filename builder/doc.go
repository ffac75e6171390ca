// SPDX-License-Identifier: MIT

// Package builder provides "functional-options"-style constructors for
// undirected adjacency matrices: the fixture graphs latticization is run on
// in tests, examples and the CLI generate command.
//
// The package offers the following key components:
//
//   - Build(n, opts, cons...): allocates an n×n zero matrix and applies each
//     Constructor in order, so topologies can be layered (a random spanning
//     tree plus random chords, then a shuffle of node labels).
//   - Deterministic topologies: Cycle, RingLattice, Path, Star, Complete.
//   - Stochastic topologies: RandomSparse (G(n,p)), SpanningTree, and the
//     Shuffle relabelling; all require WithSeed or WithRand.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn.
//
// Guarantees:
//
//   - Every produced matrix is symmetric with a zero diagonal and strictly
//     positive weights on its edges.
//   - Idempotent layering: a constructor never overwrites an existing edge,
//     so re-applying one does not change weights or degrees.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     runtime errors are the sentinels in errors.go wrapped with %w.
package builder
