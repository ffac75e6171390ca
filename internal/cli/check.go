// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latmio/lattice"
	"github.com/katalvlaran/latmio/topology"
)

// errCheckFailed is returned after the report is printed when an invariant
// does not hold.
var errCheckFailed = errors.New("invariant check failed")

// checkReport extends the structural report with lattice costs.
type checkReport struct {
	topology.Report
	CostBefore float64 `json:"cost_before"`
	CostAfter  float64 `json:"cost_after"`
	OK         bool    `json:"ok"`
}

func newCheckCmd(g *globals) *cobra.Command {
	var inFormat string
	cmd := &cobra.Command{
		Use:   "check <before> [after]",
		Short: "Report degree, connectivity and symmetry invariants",
		Long: `Compare a rewired matrix against its source and print a JSON report.
With a single argument the matrix is checked against itself.
Exits non-zero when degrees, symmetry or connectivity were not preserved.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			before, err := readMatrix(cmd.InOrStdin(), args[0], inFormat)
			if err != nil {
				return err
			}
			after := before
			if len(args) == 2 {
				if after, err = readMatrix(cmd.InOrStdin(), args[1], inFormat); err != nil {
					return err
				}
			}

			rep, err := topology.Compare(before, after, cfg.Epsilon)
			if err != nil {
				return err
			}
			out := checkReport{Report: rep, OK: rep.OK()}
			D, err := lattice.Distance(before.Rows())
			if err != nil {
				return err
			}
			if out.CostBefore, err = lattice.Cost(before, D, cfg.Epsilon); err != nil {
				return err
			}
			if out.CostAfter, err = lattice.Cost(after, D, cfg.Epsilon); err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err = enc.Encode(out); err != nil {
				return err
			}
			if !out.OK {
				return errCheckFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inFormat, "in-format", "", "input format: text, csv, json (default from extension)")

	return cmd
}
