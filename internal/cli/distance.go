// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latmio/lattice"
)

func newDistanceCmd() *cobra.Command {
	var output, format string
	cmd := &cobra.Command{
		Use:   "distance <n>",
		Short: "Print the n-node ring-lattice distance matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			D, err := lattice.Distance(n)
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, output)
			if err != nil {
				return err
			}
			return writeMatrix(cmd.OutOrStdout(), output, D, f)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "", "output format: text, csv, json")

	return cmd
}
