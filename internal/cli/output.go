// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/latmio/matio"
	"github.com/katalvlaran/latmio/matrix"
)

// resolveFormat picks the explicit format name, else the extension of
// path, else text.
func resolveFormat(name, path string) (matio.Format, error) {
	if name != "" {
		return matio.ParseFormat(name)
	}
	if path != "" {
		return matio.FormatFromPath(path)
	}
	return matio.FormatText, nil
}

// writeMatrix writes m to path, or to out when path is empty or "-".
func writeMatrix(out io.Writer, path string, m *matrix.Dense, f matio.Format) error {
	if path == "" || path == "-" {
		return matio.Write(out, m, f)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = matio.Write(fh, m, f); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return fh.Close()
}

// readMatrix reads path ("-" is stdin) in the format of its extension.
func readMatrix(in io.Reader, path, format string) (*matrix.Dense, error) {
	if path == "-" {
		f, err := resolveFormat(format, "")
		if err != nil {
			return nil, err
		}
		return matio.Read(in, f)
	}
	if format == "" {
		return matio.ReadFile(path)
	}
	f, err := matio.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return matio.Read(fh, f)
}
