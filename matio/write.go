// SPDX-License-Identifier: MIT

package matio

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/latmio/matrix"
)

// Write encodes m in format f. Values use the shortest representation that
// round-trips ('g', -1).
func Write(w io.Writer, m *matrix.Dense, f Format) error {
	if m == nil {
		return fmt.Errorf("matio: Write: %w", matrix.ErrNilMatrix)
	}
	switch f {
	case FormatText:
		return writeText(w, m)
	case FormatCSV:
		return writeCSV(w, m)
	case FormatJSON:
		return writeJSON(w, m)
	}

	return fmt.Errorf("matio: Write %q: %w", f, ErrUnknownFormat)
}

// WriteFile creates path and encodes m using the format of its extension.
func WriteFile(path string, m *matrix.Dense) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matio: %w", err)
	}
	if err = Write(fh, m, f); err != nil {
		_ = fh.Close()
		return err
	}

	return fh.Close()
}

func formatRow(row []float64) []string {
	out := make([]string, len(row))
	for k, v := range row {
		out[k] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return out
}

func writeText(w io.Writer, m *matrix.Dense) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		for k, s := range formatRow(m.RowView(i)) {
			if k > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(s)
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

func writeCSV(w io.Writer, m *matrix.Dense) error {
	cw := csv.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		if err := cw.Write(formatRow(m.RowView(i))); err != nil {
			return fmt.Errorf("matio: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeJSON(w io.Writer, m *matrix.Dense) error {
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = m.RowView(i)
	}

	return json.NewEncoder(w).Encode(rows)
}
