// SPDX-License-Identifier: MIT

package matrix

// LowerEdges lists the non-zero entries of the strict lower triangle of m.
//
// The scan is column-major (j ascending, then i ascending for i > j), so the
// order matches find(tril(R)) in MATLAB. For an undirected adjacency matrix
// each unordered edge appears exactly once, with i[e] > j[e].
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²) time, O(K) space for K edges.
func LowerEdges(m Matrix, eps float64) (rows, cols []int, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf("LowerEdges", err)
	}
	if err = ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf("LowerEdges", err)
	}
	n := m.Rows()
	d, dense := m.(*Dense)

	var i, j int
	var v float64
	for j = 0; j < n; j++ {
		for i = j + 1; i < n; i++ {
			if dense {
				v = d.data[i*n+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, nil, matrixErrorf("LowerEdges", err)
			}
			if !IsZero(v, eps) {
				rows = append(rows, i)
				cols = append(cols, j)
			}
		}
	}

	return rows, cols, nil
}
