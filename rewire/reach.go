// SPDX-License-Identifier: MIT

package rewire

import "github.com/katalvlaran/latmio/matrix"

// staysConnected runs the two-sided frontier search deciding whether removing
// (a,b),(c,d) and adding (a,d),(c,b) keeps the graph connected.
//
// Implementation:
//   - Seed P row 0 with the neighbours of a minus b, row 1 with the
//     neighbours of d minus c. PN = P with columns a and d marked visited.
//   - Loop: expand both rows by one layer over R, then P = P AND NOT PN.
//     1. a row has nothing new      → reject (no bypass on that side);
//     2. a row touches column b or c → accept (a bypass path exists);
//     3. otherwise PN = PN OR P and continue.
//
// Every non-terminal layer adds at least one unvisited node to each row, so
// the loop ends after at most n layers.
func (r *rewirer) staysConnected(s swap) (bool, error) {
	P, PN := r.frontier, r.visited

	fromA, err := matrix.NonZeroRow(r.R, s.a, r.eps)
	if err != nil {
		return false, err
	}
	fromA[s.b] = false
	fromD, err := matrix.NonZeroRow(r.R, s.d, r.eps)
	if err != nil {
		return false, err
	}
	fromD[s.c] = false

	if err = P.SetRow(0, fromA); err != nil {
		return false, err
	}
	if err = P.SetRow(1, fromD); err != nil {
		return false, err
	}
	if err = PN.CopyFrom(P); err != nil {
		return false, err
	}
	if err = PN.SetCol(s.d, true); err != nil {
		return false, err
	}
	if err = PN.SetCol(s.a, true); err != nil {
		return false, err
	}

	for {
		r.stats.SearchLayers++
		if err = P.Step(0, r.R, r.eps); err != nil {
			return false, err
		}
		if err = P.Step(1, r.R, r.eps); err != nil {
			return false, err
		}
		if err = P.AndNot(PN); err != nil {
			return false, err
		}

		if !P.AllRowsAny() {
			return false, nil
		}
		if P.AnyInCols(s.b, s.c) {
			return true, nil
		}
		if err = PN.Or(P); err != nil {
			return false, err
		}
	}
}
