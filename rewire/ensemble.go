// SPDX-License-Identifier: MIT

package rewire

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/latmio/matrix"
)

const methodEnsemble = "Ensemble"

// Ensemble generates count independent surrogates of R concurrently.
//
// Member k runs Latticize on its own copy of R with a math/rand stream seeded
// by DeriveSeed(seed, k), where seed comes from WithSeed (default 1). Results
// are ordered by k, so a fixed seed reproduces the whole ensemble regardless
// of scheduling. At most WithWorkers members run at once; the first failure
// cancels the rest.
//
// Errors:
//   - ErrInvalidCount when count < 1.
//   - ErrSharedSource when WithRand was supplied.
//   - Any error from a member Latticize call, or ctx.Err().
func Ensemble(ctx context.Context, R matrix.Matrix, iter, count int, opts ...Option) ([]*Result, error) {
	cfg := newConfig(opts...)
	if count < 1 {
		return nil, fmt.Errorf("%s: count=%d: %w", methodEnsemble, count, ErrInvalidCount)
	}
	if cfg.rng != nil {
		return nil, fmt.Errorf("%s: %w", methodEnsemble, ErrSharedSource)
	}
	if ctx == nil {
		ctx = cfg.ctx
	}

	// Validate once; members reuse the checked copy.
	base, err := prepare(R, iter, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEnsemble, err)
	}

	results := make([]*Result, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for k := 0; k < count; k++ {
		g.Go(func() error {
			member := cfg
			member.ctx = gctx
			member.logger = cfg.logger.With("member", k)
			res, err := run(base.CloneDense(), iter, member, rngFromSeed(DeriveSeed(cfg.seed, uint64(k))))
			if err != nil {
				return fmt.Errorf("%s: member %d: %w", methodEnsemble, k, err)
			}
			results[k] = res

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
