// SPDX-License-Identifier: MIT

package rewire

import "errors"

// Sentinel errors for rewiring. Input validation failures surface the
// matrix package sentinels (matrix.ErrNonSquare, matrix.ErrAsymmetry, ...).
var (
	// ErrNilMatrix is returned when the input graph is nil.
	ErrNilMatrix = errors.New("rewire: input matrix is nil")

	// ErrNegativeIterations is returned when iter < 0.
	ErrNegativeIterations = errors.New("rewire: iterations must be >= 0")

	// ErrNoEligibleRewiring is returned when no acceptable swap was found
	// within the configured retry budget, or when the graph has fewer than
	// two edges and no pair can ever be drawn.
	ErrNoEligibleRewiring = errors.New("rewire: no eligible rewiring found")

	// ErrInvariantViolated is returned by WithVerify when the output lost a
	// degree, symmetry or connectivity invariant.
	ErrInvariantViolated = errors.New("rewire: output violates rewiring invariants")

	// ErrSharedSource is returned by Ensemble when an explicit Source was
	// supplied: a Source cannot be shared between concurrent members.
	ErrSharedSource = errors.New("rewire: ensemble requires a seed, not a shared source")

	// ErrInvalidCount is returned by Ensemble when count < 1.
	ErrInvalidCount = errors.New("rewire: ensemble count must be >= 1")
)
