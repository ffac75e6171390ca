// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the undirected-graph
//    precondition checks run before any rewiring.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can branch with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry runs O(n²) over the upper triangle only.
//
// Note:
//  - ValidateUndirected follows a fixed sequence
//    (NotNil → Square → Finite → Symmetric → ZeroDiagonal → NonNegative).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with validator tag and cell coordinates.
func cellErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s: (%d,%d): %w", tag, i, j, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden in the interface.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks Rows == Cols. Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// at reads (i,j) through the Dense fast path when available.
func at(m Matrix, i, j int) (float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data[i*d.c+j], nil
	}

	return m.At(i, j)
}

// ValidateFinite rejects any NaN or ±Inf entry. Assumes m is not nil.
func ValidateFinite(m Matrix) error {
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := at(m, i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return cellErrorf("ValidateFinite", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] - m[j,i]| <= eps for i < j.
// Assumes m is square and not nil.
func ValidateSymmetric(m Matrix, eps float64) error {
	n := m.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, err := at(m, i, j)
			if err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			b, err := at(m, j, i)
			if err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if !IsZero(a-b, eps) {
				return cellErrorf("ValidateSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |m[i,i]| <= eps. Assumes m is square and not nil.
func ValidateZeroDiagonal(m Matrix, eps float64) error {
	var i int
	for i = 0; i < m.Rows(); i++ {
		v, err := at(m, i, i)
		if err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if !IsZero(v, eps) {
			return cellErrorf("ValidateZeroDiagonal", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateNonNegative rejects entries below -eps. Assumes m is not nil.
func ValidateNonNegative(m Matrix, eps float64) error {
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := at(m, i, j)
			if err != nil {
				return validatorErrorf("ValidateNonNegative", err)
			}
			if v < -eps {
				return cellErrorf("ValidateNonNegative", i, j, ErrNegativeWeight)
			}
		}
	}

	return nil
}

// ValidateUndirected is the composite precondition for a weighted undirected
// adjacency matrix: non-nil, square, finite, symmetric, zero diagonal and
// non-negative, checked in that order. The first violation is returned.
//
// Options: WithEpsilon (default DefaultEpsilon).
// Complexity: O(n²).
func ValidateUndirected(m Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateFinite(m); err != nil {
		return err
	}
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m, o.eps); err != nil {
		return err
	}

	return ValidateNonNegative(m, o.eps)
}
