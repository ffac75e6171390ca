// SPDX-License-Identifier: MIT

package rewire

import "github.com/katalvlaran/latmio/matrix"

// Source is the random stream the rewirer draws from.
// *math/rand.Rand satisfies it. Implementations need not be goroutine-safe;
// one Latticize call uses its Source exclusively.
type Source interface {
	// Intn returns a uniform integer in [0, n). n > 0.
	Intn(n int) int
	// Float64 returns a uniform real in [0, 1).
	Float64() float64
}

// Stats counts what happened during one Latticize call.
//
// Every failed candidate increments exactly one of Redraws, Conflicts,
// LatticeRejected or Disconnects; every successful attempt increments
// Accepted and exactly one of ShortcutAccepted or SearchAccepted.
type Stats struct {
	Nodes    int `json:"nodes"`    // n
	Edges    int `json:"edges"`    // K, undirected edge count
	Attempts int `json:"attempts"` // completed attempts (iter×K on success)

	Accepted         int `json:"accepted"`          // committed swaps
	ShortcutAccepted int `json:"shortcut_accepted"` // committed because a–c or b–d already adjacent
	SearchAccepted   int `json:"search_accepted"`   // committed after the reachability search

	Redraws         int `json:"redraws"`          // pairs sharing an endpoint
	Conflicts       int `json:"conflicts"`        // target edge a–d or c–b already present
	LatticeRejected int `json:"lattice_rejected"` // swap would move edges off the ring
	Disconnects     int `json:"disconnects"`      // reachability search failed

	SearchLayers int `json:"search_layers"` // total frontier expansions

	CostBefore float64 `json:"cost_before"` // lattice cost of the input
	CostAfter  float64 `json:"cost_after"`  // lattice cost of the output
}

// Result is the output of one latticization run.
type Result struct {
	Graph *matrix.Dense // rewired adjacency matrix, never aliased with the input
	Stats Stats
}
