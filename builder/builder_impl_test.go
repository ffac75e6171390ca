// SPDX-License-Identifier: MIT

// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, edge counts, idempotence and weights.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latmio/builder"
	"github.com/katalvlaran/latmio/matrix"
	"github.com/katalvlaran/latmio/topology"
)

const eps = matrix.DefaultEpsilon

// edgeCount counts undirected edges in the strict upper triangle.
func edgeCount(t *testing.T, m *matrix.Dense) int {
	t.Helper()
	rows, _, err := matrix.LowerEdges(m, eps)
	require.NoError(t, err)

	return len(rows)
}

// requireUndirected asserts the shared guarantees of every constructor.
func requireUndirected(t *testing.T, m *matrix.Dense) {
	t.Helper()
	require.NoError(t, matrix.ValidateUndirected(m))
	for i := 0; i < m.Rows(); i++ {
		for _, w := range m.RowView(i) {
			require.GreaterOrEqual(t, w, 0.0)
		}
	}
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		n           int
		cons        []builder.Constructor
		wantE       int
		wantDegrees []int // nil skips the check
	}{
		{"Cycle(5)", 5, []builder.Constructor{builder.Cycle()}, 5, []int{2, 2, 2, 2, 2}},
		{"RingLattice(7,2)", 7, []builder.Constructor{builder.RingLattice(2)}, 14, []int{4, 4, 4, 4, 4, 4, 4}},
		{"Path(4)", 4, []builder.Constructor{builder.Path()}, 3, []int{1, 2, 2, 1}},
		{"Star(4)", 4, []builder.Constructor{builder.Star()}, 3, []int{3, 1, 1, 1}},
		{"Wheel(5)", 5, []builder.Constructor{builder.Wheel()}, 8, []int{4, 3, 3, 3, 3}},
		{"Complete(4)", 4, []builder.Constructor{builder.Complete()}, 6, []int{3, 3, 3, 3}},
		{"Cycle+Cycle idempotent", 6, []builder.Constructor{builder.Cycle(), builder.Cycle()}, 6, nil},
		{"RingLattice(1) equals Cycle", 6, []builder.Constructor{builder.Cycle(), builder.RingLattice(1)}, 6, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.Build(tc.n, nil, tc.cons...)
			require.NoError(t, err)
			requireUndirected(t, m)
			require.Equal(t, tc.wantE, edgeCount(t, m))
			if tc.wantDegrees != nil {
				deg, err := topology.Degrees(m, eps)
				require.NoError(t, err)
				require.Equal(t, tc.wantDegrees, deg)
			}
		})
	}
}

func TestCycle_Adjacency(t *testing.T) {
	m, err := builder.Build(5, nil, builder.Cycle())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		w, err := m.At(i, (i+1)%5)
		require.NoError(t, err)
		require.Equal(t, builder.DefaultEdgeWeight, w)
	}
	w, err := m.At(0, 2)
	require.NoError(t, err)
	require.Zero(t, w)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		opts []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"n<1", 0, nil, nil, builder.ErrTooFewVertices},
		{"nil constructor", 3, nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"Cycle(2)", 2, nil, []builder.Constructor{builder.Cycle()}, builder.ErrTooFewVertices},
		{"Path(1)", 1, nil, []builder.Constructor{builder.Path()}, builder.ErrTooFewVertices},
		{"Wheel(3)", 3, nil, []builder.Constructor{builder.Wheel()}, builder.ErrTooFewVertices},
		{"RingLattice k too large", 6, nil, []builder.Constructor{builder.RingLattice(3)}, builder.ErrTooFewVertices},
		{"RingLattice k=0", 6, nil, []builder.Constructor{builder.RingLattice(0)}, builder.ErrTooFewVertices},
		{"RandomSparse p>1", 4, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.RandomSparse(1.5)}, builder.ErrInvalidProbability},
		{"RandomSparse no rng", 4, nil, []builder.Constructor{builder.RandomSparse(0.5)}, builder.ErrNeedRandSource},
		{"SpanningTree no rng", 4, nil, []builder.Constructor{builder.SpanningTree()}, builder.ErrNeedRandSource},
		{"Shuffle no rng", 4, nil, []builder.Constructor{builder.Shuffle()}, builder.ErrNeedRandSource},
		{"RandomRegular odd", 5, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.RandomRegular(3)}, builder.ErrTooFewVertices},
		{"bad weight", 3, []builder.BuilderOption{builder.WithWeightFn(func(*rand.Rand) float64 { return 0 })}, []builder.Constructor{builder.Cycle()}, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.Build(tc.n, tc.opts, tc.cons...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomConnected_IsConnectedAndDeterministic(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed)}
		a, err := builder.Build(30, opts, builder.RandomConnected(0.1)...)
		require.NoError(t, err)
		requireUndirected(t, a)
		ok, err := topology.IsConnected(a, eps)
		require.NoError(t, err)
		require.True(t, ok, "seed %d", seed)

		b, err := builder.Build(30, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomConnected(0.1)...)
		require.NoError(t, err)
		require.True(t, a.Equal(b), "seed %d must reproduce", seed)
	}
}

func TestRandomRegular_Degrees(t *testing.T) {
	m, err := builder.Build(20, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRegular(3))
	require.NoError(t, err)
	requireUndirected(t, m)
	deg, err := topology.Degrees(m, eps)
	require.NoError(t, err)
	for i, d := range deg {
		require.Equal(t, 3, d, "node %d", i)
	}
}

func TestShuffle_PreservesDegreeMultiset(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(3)}
	m, err := builder.Build(8, opts, builder.Star(), builder.Shuffle())
	require.NoError(t, err)
	requireUndirected(t, m)
	deg, err := topology.Degrees(m, eps)
	require.NoError(t, err)

	hubs := 0
	for _, d := range deg {
		if d == 7 {
			hubs++
		} else {
			require.Equal(t, 1, d)
		}
	}
	require.Equal(t, 1, hubs)
}

func TestWeightFns(t *testing.T) {
	m, err := builder.Build(6, []builder.BuilderOption{
		builder.WithSeed(11),
		builder.WithWeightFn(builder.UniformWeightFn(0.5, 2)),
	}, builder.Complete())
	require.NoError(t, err)
	requireUndirected(t, m)
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			w, _ := m.At(i, j)
			require.GreaterOrEqual(t, w, 0.5)
			require.Less(t, w, 2.0)
		}
	}

	m, err = builder.Build(4, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(3))}, builder.Path())
	require.NoError(t, err)
	w, _ := m.At(1, 2)
	require.Equal(t, 3.0, w)

	require.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(1, 2)(nil))
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.ConstantWeightFn(0) })
	require.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	require.Panics(t, func() { builder.UniformWeightFn(0, 1) })
}
