// SPDX-License-Identifier: MIT

package lattice

import "errors"

// ErrTooFewNodes is returned when n < 1.
var ErrTooFewNodes = errors.New("lattice: node count must be >= 1")

// ErrShapeMismatch is returned when an adjacency matrix and a distance
// matrix do not have the same square shape.
var ErrShapeMismatch = errors.New("lattice: adjacency and distance shapes differ")
