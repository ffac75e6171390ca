// SPDX-License-Identifier: MIT
// Package: latmio/rewire
//
// options.go - functional options for Latticize and Ensemble.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves never panic.
//   • Determinism is explicit: randomness flows through WithRand or WithSeed.

package rewire

import (
	"context"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/latmio/matrix"
)

// Defaults (single source of truth).
const (
	// DefaultMaxRetries is 0: no cap on failed draws.
	DefaultMaxRetries = 0

	// DefaultWorkers bounds Ensemble concurrency.
	DefaultWorkers = 4

	// ctxCheckEvery is how many failed draws pass between context polls
	// inside one attempt.
	ctxCheckEvery = 1024
)

// Option customizes a rewiring run.
type Option func(*config)

// config is the resolved option set. Passed by value into each run.
type config struct {
	ctx            context.Context
	rng            Source // explicit source; nil ⇒ seeded stream
	seed           int64
	maxRetries     int
	eps            float64
	skipValidation bool
	verify         bool
	logger         *log.Logger
	workers        int
}

// newConfig applies opts over the defaults in order; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		ctx:        context.Background(),
		seed:       defaultRNGSeed,
		maxRetries: DefaultMaxRetries,
		eps:        matrix.DefaultEpsilon,
		logger:     log.New(io.Discard),
		workers:    DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns the Source for a single run.
func (c config) source() Source {
	if c.rng != nil {
		return c.rng
	}

	return rngFromSeed(c.seed)
}

// WithRand injects the random Source. Panics on nil.
func WithRand(src Source) Option {
	if src == nil {
		panic("rewire: WithRand(nil)")
	}
	return func(c *config) { c.rng = src }
}

// WithSeed selects a deterministic math/rand stream. Seed 0 maps to the
// package default seed. Clears any Source set by WithRand.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = nil
		c.seed = seed
		if seed == 0 {
			c.seed = defaultRNGSeed
		}
	}
}

// WithMaxRetries caps the failed candidate draws allowed within one attempt.
// 0 means unbounded; a positive cap makes exhaustion return
// ErrNoEligibleRewiring. Panics on n < 0.
func WithMaxRetries(n int) Option {
	if n < 0 {
		panic("rewire: WithMaxRetries(n<0)")
	}
	return func(c *config) { c.maxRetries = n }
}

// WithEpsilon sets the tolerance of zero and >= comparisons.
// Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("rewire: WithEpsilon: eps must be finite, non-negative")
	}
	return func(c *config) { c.eps = eps }
}

// WithSkipValidation trusts the input to be a valid undirected adjacency
// matrix and skips the precondition checks.
func WithSkipValidation() Option {
	return func(c *config) { c.skipValidation = true }
}

// WithVerify re-checks degrees, symmetry and connectivity of the output
// against the input and fails with ErrInvariantViolated on any breach.
func WithVerify() Option {
	return func(c *config) { c.verify = true }
}

// WithLogger routes debug-level progress to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("rewire: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithContext makes the run cancellable. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithWorkers bounds Ensemble concurrency. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("rewire: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}
