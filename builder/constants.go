// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by matrix builders, ensuring
// consistent method tags and validation minima across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodRingLattice is the canonical name for the RingLattice constructor.
	MethodRingLattice = "RingLattice"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodSpanningTree is the canonical name for the SpanningTree constructor.
	MethodSpanningTree = "SpanningTree"
	// MethodShuffle is the canonical name for the Shuffle constructor.
	MethodShuffle = "Shuffle"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest star: a center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest wheel: the outer ring C₃ plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest complete graph with at least one edge.
const MinCompleteNodes = 2

// maxStubMatchingAttempts bounds RandomRegular reshuffles.
const maxStubMatchingAttempts = 1024
