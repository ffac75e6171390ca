// Package latmio builds lattice-like null models of undirected weighted
// networks: surrogates that keep every node's degree and the graph's
// connectedness while edges are swapped toward a ring lattice.
//
// 🚀 What is latmio?
//
//	A small, deterministic toolkit around one algorithm:
//		• Matrix primitives: dense adjacency, boolean masks, validators
//		• Lattice geometry: ring distance matrix and lattice cost
//		• Rewiring: Latticize (single surrogate) and Ensemble (worker pool)
//		• Topology checks: degrees, components, invariant reports (gonum)
//		• Fixtures: ring, ring lattice, complete, random connected graphs
//		• I/O: text, CSV and JSON matrix files
//
// ✨ Why latmio?
//
//   - Reproducible – every run is seeded; seed 0 maps to a fixed default
//   - Safe by default – inputs are validated and never mutated
//   - Bounded when asked – WithMaxRetries and WithContext stop saturated runs
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/    - Dense, Mask, LowerEdges, undirected validators
//	lattice/   - Distance(n), RingDistance, Cost
//	rewire/    - Latticize, Ensemble, options and Stats
//	topology/  - gonum bridge, Degrees, Components, Compare
//	builder/   - functional-options fixture constructors
//	matio/     - matrix file formats
//	cmd/latmio - the command line (latticize, distance, check, generate)
//
// Quick ASCII example:
//
//	  a───b        a   b
//	            ⇒  │ ╳ │
//	  c───d        c   d
//
//	one accepted swap: (a,b),(c,d) become (a,d),(c,b) when the new pair sits
//	closer to the ring diagonal and a bypass path keeps the graph connected.
//
//	go install github.com/katalvlaran/latmio/cmd/latmio@latest
package latmio
