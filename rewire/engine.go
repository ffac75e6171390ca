// SPDX-License-Identifier: MIT

package rewire

import (
	"fmt"

	"github.com/katalvlaran/latmio/lattice"
	"github.com/katalvlaran/latmio/matrix"
)

// rewirer holds the working state of one run: the private graph copy, the
// lattice distances, the edge list and the reusable search masks.
type rewirer struct {
	R *matrix.Dense // working graph, mutated by commit only
	D *matrix.Dense // ring-lattice distances, read-only

	// Edge e joins i[e] and j[e]. Tails i stay put except for orientation
	// flips; commit only moves heads j.
	i, j []int

	n, K int
	eps  float64
	rng  Source
	cfg  config

	frontier *matrix.Mask // P: 2×n, row 0 from a, row 1 from d
	visited  *matrix.Mask // PN

	stats Stats
}

// newRewirer builds D and the edge list for W.
func newRewirer(W *matrix.Dense, cfg config, src Source) (*rewirer, error) {
	n := W.Rows()
	D, err := lattice.Distance(n)
	if err != nil {
		return nil, err
	}
	rows, cols, err := matrix.LowerEdges(W, cfg.eps)
	if err != nil {
		return nil, err
	}
	P, err := matrix.NewMask(2, n)
	if err != nil {
		return nil, err
	}
	PN, err := matrix.NewMask(2, n)
	if err != nil {
		return nil, err
	}

	return &rewirer{
		R:        W,
		D:        D,
		i:        rows,
		j:        cols,
		n:        n,
		K:        len(rows),
		eps:      cfg.eps,
		rng:      src,
		cfg:      cfg,
		frontier: P,
		visited:  PN,
		stats:    Stats{Nodes: n, Edges: len(rows)},
	}, nil
}

// swap is one candidate double-edge swap (a,b),(c,d) → (a,d),(c,b).
type swap struct {
	e1, e2     int
	a, b, c, d int
}

// attempt runs one outer iteration: draw candidates until one is committed.
// Every rejected candidate counts against cfg.maxRetries when it is set.
func (r *rewirer) attempt() error {
	failed := 0
	reject := func() error {
		failed++
		if r.cfg.maxRetries > 0 && failed >= r.cfg.maxRetries {
			return fmt.Errorf("%d failed draws: %w", failed, ErrNoEligibleRewiring)
		}
		if failed%ctxCheckEvery == 0 {
			return r.cfg.ctx.Err()
		}

		return nil
	}

	for {
		s, ok := r.drawPair()
		if !ok {
			r.stats.Redraws++
			if err := reject(); err != nil {
				return err
			}
			continue
		}
		r.flip(&s)

		// Neither target edge may exist yet.
		if !r.absent(s.a, s.d) || !r.absent(s.c, s.b) {
			r.stats.Conflicts++
			if err := reject(); err != nil {
				return err
			}
			continue
		}

		if !r.latticeGain(s) {
			r.stats.LatticeRejected++
			if err := reject(); err != nil {
				return err
			}
			continue
		}

		// An existing a–c or b–d edge already ties both sides together.
		if !r.absent(s.a, s.c) || !r.absent(s.b, s.d) {
			if err := r.commit(s); err != nil {
				return err
			}
			r.stats.ShortcutAccepted++
			return nil
		}

		connected, err := r.staysConnected(s)
		if err != nil {
			return err
		}
		if !connected {
			r.stats.Disconnects++
			if err = reject(); err != nil {
				return err
			}
			continue
		}
		if err = r.commit(s); err != nil {
			return err
		}
		r.stats.SearchAccepted++

		return nil
	}
}

// drawPair draws two distinct edges uniformly. ok is false when they share
// an endpoint, in which case the caller draws again.
func (r *rewirer) drawPair() (swap, bool) {
	e1 := r.rng.Intn(r.K)
	e2 := r.rng.Intn(r.K)
	for e2 == e1 {
		e2 = r.rng.Intn(r.K)
	}
	s := swap{
		e1: e1, e2: e2,
		a: r.i[e1], b: r.j[e1],
		c: r.i[e2], d: r.j[e2],
	}
	if s.a == s.c || s.a == s.d || s.b == s.c || s.b == s.d {
		return s, false
	}

	return s, true
}

// flip reverses the second edge with probability 1/2. The reversal is
// recorded in the edge list, so it persists even if the swap is rejected.
func (r *rewirer) flip(s *swap) {
	if r.rng.Float64() > 0.5 {
		r.i[s.e2], r.j[s.e2] = s.d, s.c
		s.c, s.d = s.d, s.c
	}
}

// absent reports R[u][v] == 0 within eps.
func (r *rewirer) absent(u, v int) bool {
	return matrix.IsZero(r.R.RowView(u)[v], r.eps)
}

// latticeGain reports D[a][b]+D[c][d] >= D[a][d]+D[c][b]: the swap does not
// move the pair further from the ring diagonal.
func (r *rewirer) latticeGain(s swap) bool {
	da, dc := r.D.RowView(s.a), r.D.RowView(s.c)

	return matrix.GreaterOrEqual(da[s.b]+dc[s.d], da[s.d]+dc[s.b], r.eps)
}

// commit relocates the two edge weights and moves the edge heads.
func (r *rewirer) commit(s swap) error {
	wab := r.R.RowView(s.a)[s.b]
	wcd := r.R.RowView(s.c)[s.d]

	if err := r.R.SetSymmetric(s.a, s.d, wab); err != nil {
		return err
	}
	if err := r.R.SetSymmetric(s.a, s.b, 0); err != nil {
		return err
	}
	if err := r.R.SetSymmetric(s.c, s.b, wcd); err != nil {
		return err
	}
	if err := r.R.SetSymmetric(s.c, s.d, 0); err != nil {
		return err
	}
	r.j[s.e1] = s.d
	r.j[s.e2] = s.b
	r.stats.Accepted++

	return nil
}
