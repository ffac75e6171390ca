// SPDX-License-Identifier: MIT

package matio

import "errors"

var (
	// ErrUnknownFormat is returned for an unrecognised format name or extension.
	ErrUnknownFormat = errors.New("matio: unknown format")
	// ErrRagged is returned when rows have different lengths.
	ErrRagged = errors.New("matio: ragged rows")
	// ErrEmpty is returned when the input holds no values.
	ErrEmpty = errors.New("matio: empty matrix")
)
