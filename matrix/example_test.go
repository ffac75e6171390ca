// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/latmio/matrix"
)

// ExampleLowerEdges lists the edges of a triangle in find(tril(R)) order.
func ExampleLowerEdges() {
	m, _ := matrix.NewFromRows([][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	rows, cols, _ := matrix.LowerEdges(m, matrix.DefaultEpsilon)
	for e := range rows {
		fmt.Printf("%d-%d\n", rows[e], cols[e])
	}
	// Output:
	// 1-0
	// 2-0
	// 2-1
}

// ExampleMask_Step expands a frontier one layer over a path 0-1-2-3.
func ExampleMask_Step() {
	adj, _ := matrix.NewDense(4, 4)
	for i := 0; i < 3; i++ {
		_ = adj.SetSymmetric(i, i+1, 1)
	}
	P, _ := matrix.NewMask(1, 4)
	_ = P.Set(0, 1, true)
	_ = P.Step(0, adj, 0)
	fmt.Println(P.Row(0))
	// Output:
	// [true false true false]
}
