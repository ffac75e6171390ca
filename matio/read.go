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
	"strings"

	"github.com/katalvlaran/latmio/matrix"
)

// Read decodes a matrix in format f from r.
func Read(r io.Reader, f Format) (*matrix.Dense, error) {
	var (
		rows [][]float64
		err  error
	)
	switch f {
	case FormatText:
		rows, err = readText(r)
	case FormatCSV:
		rows, err = readCSV(r)
	case FormatJSON:
		rows, err = readJSON(r)
	default:
		return nil, fmt.Errorf("matio: Read %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}
	if err = checkShape(rows); err != nil {
		return nil, err
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matio: Read: %w", err)
	}

	return m, nil
}

// ReadFile opens path and decodes it using the format of its extension.
func ReadFile(path string) (*matrix.Dense, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matio: %w", err)
	}
	defer fh.Close()

	m, err := Read(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func readText(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row, err := parseFields(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("matio: line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matio: %w", err)
	}

	return rows, nil
}

func readCSV(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // ragged rows are reported as ErrRagged below
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("matio: %w", err)
	}
	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		row, err := parseFields(rec)
		if err != nil {
			return nil, fmt.Errorf("matio: record %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func readJSON(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		if err == io.EOF {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("matio: %w", err)
	}

	return rows, nil
}

func parseFields(fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for k, s := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, err
		}
		row[k] = v
	}

	return row, nil
}

func checkShape(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrEmpty
	}
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return fmt.Errorf("matio: row %d has %d values, want %d: %w", i, len(row), len(rows[0]), ErrRagged)
		}
	}

	return nil
}
