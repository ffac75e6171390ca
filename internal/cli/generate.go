// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latmio/builder"
)

// generators maps kind names to constructor layers. k and p come from flags.
var generators = map[string]func(k int, p float64) []builder.Constructor{
	"ring":     func(int, float64) []builder.Constructor { return []builder.Constructor{builder.Cycle()} },
	"lattice":  func(k int, _ float64) []builder.Constructor { return []builder.Constructor{builder.RingLattice(k)} },
	"complete": func(int, float64) []builder.Constructor { return []builder.Constructor{builder.Complete()} },
	"path":     func(int, float64) []builder.Constructor { return []builder.Constructor{builder.Path()} },
	"star":     func(int, float64) []builder.Constructor { return []builder.Constructor{builder.Star()} },
	"wheel":    func(int, float64) []builder.Constructor { return []builder.Constructor{builder.Wheel()} },
	"regular":  func(k int, _ float64) []builder.Constructor { return []builder.Constructor{builder.RandomRegular(k)} },
	"random":   func(_ int, p float64) []builder.Constructor { return builder.RandomConnected(p) },
}

func newGenerateCmd() *cobra.Command {
	var (
		output, format string
		k              int
		p              float64
		seed           int64
		minW, maxW     float64
	)
	cmd := &cobra.Command{
		Use:   "generate <ring|lattice|complete|path|star|wheel|regular|random> <n>",
		Short: "Emit a fixture adjacency matrix",
		Long: `Emit an n-node adjacency matrix of the given kind.
lattice joins each node to its --k nearest neighbours per side; regular draws a random
--k-regular graph; random draws a connected graph (random spanning tree plus G(n,p)
chords, shuffled). Weights are 1 unless --min-weight/--max-weight select a uniform range.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q", args[0])
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			if cmd.Flags().Changed("min-weight") || cmd.Flags().Changed("max-weight") {
				if minW <= 0 || maxW < minW {
					return fmt.Errorf("weights need 0 < min-weight <= max-weight, got %g, %g", minW, maxW)
				}
				opts = append(opts, builder.WithWeightFn(builder.UniformWeightFn(minW, maxW)))
			}
			m, err := builder.Build(n, opts, gen(k, p)...)
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, output)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("generated", "kind", args[0], "nodes", n)
			return writeMatrix(cmd.OutOrStdout(), output, m, f)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "", "output format: text, csv, json")
	cmd.Flags().IntVar(&k, "k", 2, "neighbours per side (lattice) or degree (regular)")
	cmd.Flags().Float64Var(&p, "p", 0.1, "chord probability (random)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&minW, "min-weight", 1, "lower bound of uniform edge weights")
	cmd.Flags().Float64Var(&maxW, "max-weight", 1, "upper bound of uniform edge weights")

	return cmd
}
