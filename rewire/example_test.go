// SPDX-License-Identifier: MIT

package rewire_test

import (
	"fmt"

	"github.com/katalvlaran/latmio/builder"
	"github.com/katalvlaran/latmio/rewire"
	"github.com/katalvlaran/latmio/topology"
)

// ExampleLatticize rewires a connected random graph and checks that degrees
// and connectedness survive while the lattice cost does not grow.
func ExampleLatticize() {
	R, err := builder.Build(30, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomConnected(0.1)...)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := rewire.Latticize(R, 3, rewire.WithSeed(1), rewire.WithMaxRetries(1_000_000))
	if err != nil {
		fmt.Println(err)
		return
	}
	rep, _ := topology.Compare(R, res.Graph, 0)

	fmt.Println("degrees preserved:", rep.DegreesPreserved)
	fmt.Println("connected:", rep.Connected)
	fmt.Println("cost not increased:", res.Stats.CostAfter <= res.Stats.CostBefore)
	// Output:
	// degrees preserved: true
	// connected: true
	// cost not increased: true
}
