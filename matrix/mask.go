// SPDX-License-Identifier: MIT

// Package matrix - Mask: boolean indicator matrices.
//
// Purpose:
//   - Give frontier searches the logical primitives they need without
//     round-tripping through float64 (AND, AND NOT, OR, NOT, any-reductions).
//   - Keep loops deterministic (row-major, fixed order) and in place where
//     the caller owns the receiver.
//
// Complexity quicksheet:
//   - NewMask: O(r*c); Get/Set: O(1); And/AndNot/Or: O(r*c); AnyRow: O(c); Step: O(c*deg).

package matrix

import "fmt"

const (
	ctxMask     = "Mask"
	ctxMaskStep = "Mask.Step"
)

// Mask is a row-major r×c matrix of booleans.
type Mask struct {
	r, c int
	bits []bool
}

// NewMask returns an all-false r×c mask or ErrInvalidDimensions.
func NewMask(rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Mask{r: rows, c: cols, bits: make([]bool, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Mask) Rows() int { return m.r }

// Cols returns the column count.
func (m *Mask) Cols() int { return m.c }

// Get returns the bit at (i, j); out-of-range coordinates read as false.
func (m *Mask) Get(i, j int) bool {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return false
	}

	return m.bits[i*m.c+j]
}

// Set writes the bit at (i, j) or returns ErrOutOfRange.
func (m *Mask) Set(i, j int, v bool) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("%s.Set(%d,%d): %w", ctxMask, i, j, ErrOutOfRange)
	}
	m.bits[i*m.c+j] = v

	return nil
}

// SetRow copies src into row i. len(src) must equal Cols().
func (m *Mask) SetRow(i int, src []bool) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("%s.SetRow(%d): %w", ctxMask, i, ErrOutOfRange)
	}
	if len(src) != m.c {
		return fmt.Errorf("%s.SetRow(%d): len %d != %d: %w", ctxMask, i, len(src), m.c, ErrDimensionMismatch)
	}
	copy(m.bits[i*m.c:(i+1)*m.c], src)

	return nil
}

// SetCol assigns v to every row of column j.
func (m *Mask) SetCol(j int, v bool) error {
	if j < 0 || j >= m.c {
		return fmt.Errorf("%s.SetCol(%d): %w", ctxMask, j, ErrOutOfRange)
	}
	var i int
	for i = 0; i < m.r; i++ {
		m.bits[i*m.c+j] = v
	}

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Mask) Row(i int) []bool {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]bool, m.c)
	copy(out, m.bits[i*m.c:(i+1)*m.c])

	return out
}

// Reset clears every bit, keeping the shape and buffer.
func (m *Mask) Reset() {
	clear(m.bits)
}

// Clone returns an independent copy.
func (m *Mask) Clone() *Mask {
	cp := make([]bool, len(m.bits))
	copy(cp, m.bits)

	return &Mask{r: m.r, c: m.c, bits: cp}
}

// CopyFrom overwrites m with the bits of o (same shape required).
func (m *Mask) CopyFrom(o *Mask) error {
	if err := m.sameShape("CopyFrom", o); err != nil {
		return err
	}
	copy(m.bits, o.bits)

	return nil
}

// sameShape guards the binary operators.
func (m *Mask) sameShape(op string, o *Mask) error {
	if o == nil {
		return fmt.Errorf("%s.%s: %w", ctxMask, op, ErrNilMatrix)
	}
	if m.r != o.r || m.c != o.c {
		return fmt.Errorf("%s.%s: %dx%d vs %dx%d: %w", ctxMask, op, m.r, m.c, o.r, o.c, ErrDimensionMismatch)
	}

	return nil
}

// And sets m = m AND o in place.
func (m *Mask) And(o *Mask) error {
	if err := m.sameShape("And", o); err != nil {
		return err
	}
	for k := range m.bits {
		m.bits[k] = m.bits[k] && o.bits[k]
	}

	return nil
}

// AndNot sets m = m AND NOT o in place (the P = P .* ~PN step).
func (m *Mask) AndNot(o *Mask) error {
	if err := m.sameShape("AndNot", o); err != nil {
		return err
	}
	for k := range m.bits {
		m.bits[k] = m.bits[k] && !o.bits[k]
	}

	return nil
}

// Or sets m = m OR o in place.
func (m *Mask) Or(o *Mask) error {
	if err := m.sameShape("Or", o); err != nil {
		return err
	}
	for k := range m.bits {
		m.bits[k] = m.bits[k] || o.bits[k]
	}

	return nil
}

// Not returns a new mask with every bit flipped.
func (m *Mask) Not() *Mask {
	out := &Mask{r: m.r, c: m.c, bits: make([]bool, len(m.bits))}
	for k, b := range m.bits {
		out.bits[k] = !b
	}

	return out
}

// AnyRow reports whether row i has at least one true bit.
func (m *Mask) AnyRow(i int) bool {
	if i < 0 || i >= m.r {
		return false
	}
	for _, b := range m.bits[i*m.c : (i+1)*m.c] {
		if b {
			return true
		}
	}

	return false
}

// AllRowsAny reports whether every row has at least one true bit: all(any(M, 2)).
func (m *Mask) AllRowsAny() bool {
	var i int
	for i = 0; i < m.r; i++ {
		if !m.AnyRow(i) {
			return false
		}
	}

	return true
}

// AnyInCols reports whether any row has a true bit in one of the given columns:
// any(any(M(:, cols))). Out-of-range columns are ignored.
func (m *Mask) AnyInCols(cols ...int) bool {
	var i int
	for _, j := range cols {
		if j < 0 || j >= m.c {
			continue
		}
		for i = 0; i < m.r; i++ {
			if m.bits[i*m.c+j] {
				return true
			}
		}
	}

	return false
}

// Count returns the number of true bits.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}

	return n
}

// NonZeroRow compares row i of d elementwise against zero (within eps)
// and returns the indicator vector d[i,:] != 0.
func NonZeroRow(d *Dense, i int, eps float64) ([]bool, error) {
	if d == nil {
		return nil, matrixErrorf("NonZeroRow", ErrNilMatrix)
	}
	row := d.RowView(i)
	if row == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]bool, len(row))
	for j, v := range row {
		out[j] = !IsZero(v, eps)
	}

	return out, nil
}

// Step replaces row i with one breadth layer over adj:
//
//	M(i,:) = any(adj(M(i,:) ~= 0, :), 1)
//
// i.e. the union of the non-zero patterns of every adj row selected by the
// current bits of row i. A row with no bits becomes all-false.
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch (adj must be
// Cols()×Cols()).
// Complexity: O(c*k) for k selected rows.
func (m *Mask) Step(i int, adj *Dense, eps float64) error {
	if adj == nil {
		return matrixErrorf(ctxMaskStep, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return fmt.Errorf("%s(%d): %w", ctxMaskStep, i, ErrOutOfRange)
	}
	if adj.r != m.c || adj.c != m.c {
		return fmt.Errorf("%s: adjacency %dx%d for %d columns: %w", ctxMaskStep, adj.r, adj.c, m.c, ErrDimensionMismatch)
	}

	row := m.bits[i*m.c : (i+1)*m.c]
	next := make([]bool, m.c)
	var u, v int
	for u = 0; u < m.c; u++ {
		if !row[u] {
			continue
		}
		base := u * adj.c
		for v = 0; v < adj.c; v++ {
			if !next[v] && !IsZero(adj.data[base+v], eps) {
				next[v] = true
			}
		}
	}
	copy(row, next)

	return nil
}
