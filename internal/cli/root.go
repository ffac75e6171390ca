// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latmio/internal/config"
)

const appName = "latmio"

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically from values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globals are the persistent flags shared by every command.
type globals struct {
	verbose    bool
	configPath string
}

// loadConfig returns the file configuration, or Default when no --config
// was given.
func (g *globals) loadConfig() (config.Config, error) {
	if g.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(g.configPath)
}

// NewRootCommand builds the command tree. Command output goes to out and
// logs to logw.
func NewRootCommand(out, logw io.Writer) *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           appName,
		Short:         "latmio rewires networks into lattice-like null models",
		Long:          `latmio builds lattice-biased surrogates of undirected weighted networks by degree- and connectivity-preserving edge swaps toward a ring lattice.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logw, level)))
		},
	}

	root.SetOut(out)
	root.SetErr(logw)
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "run configuration file (.toml, .yaml)")

	root.AddCommand(newLatticizeCmd(g))
	root.AddCommand(newDistanceCmd())
	root.AddCommand(newCheckCmd(g))
	root.AddCommand(newGenerateCmd())

	return root
}

// Execute runs the command tree with args under ctx.
func Execute(ctx context.Context, out, logw io.Writer, args []string) error {
	root := NewRootCommand(out, logw)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
