// SPDX-License-Identifier: MIT

package rewire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmio/matrix"
	"github.com/katalvlaran/latmio/topology"
)

// script is a Source replaying fixed draws.
type script struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *script) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.ints, "script ran out of Intn draws")
	v := s.ints[0]
	s.ints = s.ints[1:]
	require.Less(s.t, v, n)

	return v
}

func (s *script) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.floats, "script ran out of Float64 draws")
	v := s.floats[0]
	s.floats = s.floats[1:]

	return v
}

func fromEdges(t *testing.T, n int, edges [][3]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, m.SetSymmetric(int(e[0]), int(e[1]), e[2]))
	}

	return m
}

func newTestRewirer(t *testing.T, W *matrix.Dense, src Source, opts ...Option) *rewirer {
	t.Helper()
	r, err := newRewirer(W, newConfig(opts...), src)
	require.NoError(t, err)

	return r
}

// quad has lower edges e0=(1,0) e1=(3,0) e2=(4,1) e3=(4,3).
func quad(t *testing.T) *matrix.Dense {
	return fromEdges(t, 6, [][3]float64{{1, 0, 1}, {3, 0, 1}, {4, 1, 1}, {4, 3, 1}})
}

// crossed is the 8-cycle 0-4-1-5-2-6-3-7-0, far from lattice order. Lower
// edges: e0=(4,0) e1=(7,0) e2=(4,1) e3=(5,1) e4=(5,2) e5=(6,2) e6=(6,3) e7=(7,3).
func crossed(t *testing.T) *matrix.Dense {
	return fromEdges(t, 8, [][3]float64{
		{0, 4, 2}, {4, 1, 1}, {1, 5, 1}, {5, 2, 1},
		{2, 6, 3}, {6, 3, 1}, {3, 7, 1}, {7, 0, 1},
	})
}

func TestNewRewirer_EdgeList(t *testing.T) {
	r := newTestRewirer(t, crossed(t), &script{t: t})
	require.Equal(t, 8, r.K)
	require.Equal(t, []int{4, 7, 4, 5, 5, 6, 6, 7}, r.i)
	require.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3}, r.j)
}

func TestAttempt_ShortcutAccept(t *testing.T) {
	W := quad(t)
	// e1=(3,0), e2=(4,1); 3–4 already adjacent, so no search runs.
	r := newTestRewirer(t, W, &script{t: t, ints: []int{1, 2}, floats: []float64{0.1}})
	require.NoError(t, r.attempt())

	require.Equal(t, 1, r.stats.ShortcutAccepted)
	require.Zero(t, r.stats.SearchLayers)
	require.Equal(t, []int{1, 3, 4, 4}, r.i)
	require.Equal(t, []int{0, 1, 0, 3}, r.j)

	want := fromEdges(t, 6, [][3]float64{{1, 0, 1}, {3, 1, 1}, {4, 0, 1}, {4, 3, 1}})
	require.True(t, want.Equal(W), "got\n%v", W)
}

func TestAttempt_RedrawsEqualSecondEdge(t *testing.T) {
	r := newTestRewirer(t, quad(t), &script{t: t, ints: []int{1, 1, 1, 2}, floats: []float64{0.1}})
	require.NoError(t, r.attempt())
	require.Equal(t, 1, r.stats.Accepted)
	require.Zero(t, r.stats.Redraws, "e2 == e1 is redrawn without counting")
}

func TestAttempt_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		ints   []int
		floats []float64
		check  func(t *testing.T, r *rewirer)
	}{
		{
			name: "shared endpoint",
			ints: []int{0, 1}, // (1,0),(3,0) share node 0
			check: func(t *testing.T, r *rewirer) {
				require.Equal(t, 1, r.stats.Redraws)
			},
		},
		{
			name:   "conflict after flip",
			ints:   []int{1, 2},
			floats: []float64{0.9}, // (4,1) flips to (1,4): targets 3–4 and 1–0 exist
			check: func(t *testing.T, r *rewirer) {
				require.Equal(t, 1, r.stats.Conflicts)
				require.Equal(t, 1, r.i[2], "flip persists in the edge list")
				require.Equal(t, 4, r.j[2])
			},
		},
		{
			name:   "lattice criterion",
			ints:   []int{0, 3}, // (1,0),(4,3) → (1,3),(4,0) raises cost 2 → 4
			floats: []float64{0.1},
			check: func(t *testing.T, r *rewirer) {
				require.Equal(t, 1, r.stats.LatticeRejected)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			W := quad(t)
			before := W.CloneDense()
			r := newTestRewirer(t, W, &script{t: t, ints: tc.ints, floats: tc.floats}, WithMaxRetries(1))
			require.ErrorIs(t, r.attempt(), ErrNoEligibleRewiring)
			require.Zero(t, r.stats.Accepted)
			require.True(t, before.Equal(W), "rejected swaps leave the graph untouched")
			tc.check(t, r)
		})
	}
}

func TestAttempt_SearchRejectsDisconnectingSwap(t *testing.T) {
	W := crossed(t)
	before := W.CloneDense()
	// (4,0),(6,2) → (4,2),(6,0) closes two separate cycles.
	r := newTestRewirer(t, W, &script{t: t, ints: []int{0, 5}, floats: []float64{0.1}}, WithMaxRetries(1))
	require.ErrorIs(t, r.attempt(), ErrNoEligibleRewiring)
	require.Equal(t, 1, r.stats.Disconnects)
	require.Equal(t, 2, r.stats.SearchLayers)
	require.True(t, before.Equal(W))
}

func TestAttempt_SearchAcceptsConnectedSwap(t *testing.T) {
	W := crossed(t)
	before := W.CloneDense()
	// (6,2) flips to (2,6): (4,0),(2,6) → (4,6),(2,0) keeps one cycle.
	r := newTestRewirer(t, W, &script{t: t, ints: []int{0, 5}, floats: []float64{0.9}})
	require.NoError(t, r.attempt())
	require.Equal(t, 1, r.stats.SearchAccepted)
	require.Equal(t, 2, r.stats.SearchLayers)

	// Weights travel with their edges: 4–0 (2) lands on 4–6, 2–6 (3) on 2–0.
	w46, _ := W.At(4, 6)
	w20, _ := W.At(2, 0)
	require.Equal(t, 2.0, w46)
	require.Equal(t, 3.0, w20)
	require.Equal(t, 6, r.j[0])
	require.Equal(t, []int{2, 0}, []int{r.i[5], r.j[5]})

	rep, err := topology.Compare(before, W, 0)
	require.NoError(t, err)
	require.True(t, rep.OK())
}
