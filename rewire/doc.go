// SPDX-License-Identifier: MIT

// Package rewire implements connectivity-preserving latticization of a
// weighted undirected graph: a degree-preserving double-edge-swap null model
// biased toward ring-lattice structure.
//
// What & Why:
//
//	Small-world and related coefficients compare a measured graph against
//	degree-matched surrogates. Latticize produces the lattice-like surrogate:
//	every node keeps its edge count, the graph stays connected, and swaps
//	are only committed when they do not move edges away from the ring
//	diagonal. Edge weights travel with the edges they sit on, so node
//	strengths are NOT preserved.
//
// Algorithm (per attempt, iter×K attempts for K edges):
//
//	SelectPair → OrientationFlip → ConflictCheck → LatticeCriterion →
//	  [shortcut accept | ConnectivityCheck] → Commit
//
//	  a───b        a   b
//	            ⇒  │ ╳ │   (a,b),(c,d) → (a,d),(c,b)
//	  c───d        c   d
//
//	Any failed step draws a fresh pair. The connectivity check is a
//	two-sided frontier search from a (without b) and from d (without c); the
//	swap is rejected as soon as either frontier runs dry.
//
// Termination:
//
//	By default an attempt retries forever when no eligible swap exists
//	(complete graphs, tiny graphs, a bare cycle).
//	WithMaxRetries bounds the failed draws per attempt and turns exhaustion
//	into ErrNoEligibleRewiring; WithContext adds cancellation.
//
// Determinism:
//
//	All randomness comes from the injected Source (WithRand) or a seeded
//	math/rand stream (WithSeed; seed 0 maps to a fixed default). Equal seeds
//	give bitwise-equal outputs.
//
// Concurrency:
//
//	A single Latticize call is sequential and owns private copies of its
//	matrices. Ensemble runs independent calls on a bounded worker pool, one
//	derived RNG stream per member.
package rewire
