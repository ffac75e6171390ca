// SPDX-License-Identifier: MIT

// Package matio reads and writes adjacency matrices in the plain formats
// connectivity toolboxes exchange:
//
//   - FormatText: one row per line, whitespace separated values, blank lines
//     and lines starting with '#' ignored (dlmwrite / save -ascii layout).
//   - FormatCSV: comma separated rows.
//   - FormatJSON: a JSON array of rows, e.g. [[0,1],[1,0]].
//
// Read validates shape only (non-empty, rectangular); structural checks such
// as symmetry belong to matrix.ValidateUndirected.
package matio
