// SPDX-License-Identifier: MIT

package rewire

import (
	"fmt"

	"github.com/katalvlaran/latmio/lattice"
	"github.com/katalvlaran/latmio/matrix"
	"github.com/katalvlaran/latmio/topology"
)

const methodLatticize = "Latticize"

// Latticize returns a lattice-biased surrogate of the weighted undirected
// graph R with the same degree sequence and, if R is connected, still
// connected. Each of the K edges is rewired iter times on average
// (iter×K attempts in total).
//
// Implementation:
//   - Stage 1: validate R (unless WithSkipValidation) and take a private copy.
//   - Stage 2: build the ring-lattice distance matrix and the lower-triangle
//     edge list.
//   - Stage 3: run iter×K attempts (see package doc for the state machine).
//   - Stage 4: optionally verify invariants (WithVerify).
//
// Behavior highlights:
//   - R is never mutated or aliased; Result.Graph is a fresh matrix.
//   - iter == 0 returns a copy equal to R.
//   - Node strengths are not preserved: weights move with their edges.
//   - Without WithMaxRetries, inputs admitting no eligible swap run forever
//     unless WithContext cancels them.
//
// Errors:
//   - ErrNilMatrix, ErrNegativeIterations, ErrNoEligibleRewiring,
//     ErrInvariantViolated, matrix validation sentinels, ctx.Err().
//
// Complexity:
//   - O(n²) setup; each attempt costs O(1) per draw plus O(n·L) for a
//     reachability search of L layers when it runs.
func Latticize(R matrix.Matrix, iter int, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	W, err := prepare(R, iter, cfg)
	if err != nil {
		return nil, err
	}

	return run(W, iter, cfg, cfg.source())
}

// prepare validates arguments and returns a private *Dense copy of R.
func prepare(R matrix.Matrix, iter int, cfg config) (*matrix.Dense, error) {
	if R == nil {
		return nil, fmt.Errorf("%s: %w", methodLatticize, ErrNilMatrix)
	}
	if d, ok := R.(*matrix.Dense); ok && d == nil {
		return nil, fmt.Errorf("%s: %w", methodLatticize, ErrNilMatrix)
	}
	if iter < 0 {
		return nil, fmt.Errorf("%s: iter=%d: %w", methodLatticize, iter, ErrNegativeIterations)
	}
	if !cfg.skipValidation {
		if err := matrix.ValidateUndirected(R, matrix.WithEpsilon(cfg.eps)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodLatticize, err)
		}
	}
	W, err := matrix.FromMatrix(R)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLatticize, err)
	}

	return W, nil
}

// run executes the rewiring on W in place and packages the result.
// W must be a private copy owned by this call.
func run(W *matrix.Dense, iter int, cfg config, src Source) (*Result, error) {
	var before *matrix.Dense
	if cfg.verify {
		before = W.CloneDense()
	}

	r, err := newRewirer(W, cfg, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLatticize, err)
	}
	if r.stats.CostBefore, err = lattice.Cost(W, r.D, cfg.eps); err != nil {
		return nil, fmt.Errorf("%s: %w", methodLatticize, err)
	}

	total := iter * r.K
	cfg.logger.Debug("latticize start", "nodes", r.n, "edges", r.K, "iter", iter, "attempts", total)

	if total > 0 && r.K < 2 {
		return nil, fmt.Errorf("%s: %d edge(s), need 2 to swap: %w", methodLatticize, r.K, ErrNoEligibleRewiring)
	}

	every := max(total/10, 1)
	for k := 0; k < total; k++ {
		if err = cfg.ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: attempt %d/%d: %w", methodLatticize, k+1, total, err)
		}
		if err = r.attempt(); err != nil {
			return nil, fmt.Errorf("%s: attempt %d/%d: %w", methodLatticize, k+1, total, err)
		}
		r.stats.Attempts++
		if (k+1)%every == 0 {
			cfg.logger.Debug("latticize progress",
				"attempt", k+1, "of", total,
				"accepted", r.stats.Accepted,
				"disconnects", r.stats.Disconnects)
		}
	}

	if r.stats.CostAfter, err = lattice.Cost(W, r.D, cfg.eps); err != nil {
		return nil, fmt.Errorf("%s: %w", methodLatticize, err)
	}
	cfg.logger.Debug("latticize done",
		"accepted", r.stats.Accepted,
		"cost_before", r.stats.CostBefore,
		"cost_after", r.stats.CostAfter)

	if cfg.verify {
		if err = verify(before, W, cfg.eps); err != nil {
			return nil, fmt.Errorf("%s: %w", methodLatticize, err)
		}
	}

	return &Result{Graph: W, Stats: r.stats}, nil
}

// verify compares the output with the input through the topology checks.
func verify(before, after *matrix.Dense, eps float64) error {
	rep, err := topology.Compare(before, after, eps)
	if err != nil {
		return err
	}
	if !rep.OK() {
		return fmt.Errorf("degrees=%t symmetric=%t diagonal=%t connected=%t: %w",
			rep.DegreesPreserved, rep.Symmetric, rep.ZeroDiagonal, rep.Connected, ErrInvariantViolated)
	}

	return nil
}
