// SPDX-License-Identifier: MIT
// Package: latmio/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w and the constructor method tag.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that n (or a degree-like parameter such as k)
// is outside the allowed domain for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a weight function that
// produced a non-positive or non-finite weight.
var ErrConstructFailed = errors.New("builder: construction failed")
