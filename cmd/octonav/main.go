// Package main provides the entry point for the octonav CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/octonav/cmd/octonav/commands"
)

// Set by -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var flags commands.GlobalFlags

	rootCmd := &cobra.Command{
		Use:   "octonav",
		Short: "Octree navigation for 3D volumes",
		Long: `octonav builds a navigation graph from the free space around obstacles
and answers concurrent path queries on it.

Commands:
  bake   Build a scene and print tree and graph statistics
  path   Find a path between two points
  bench  Run random path requests through the scheduler`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "config file (default .octonav.yaml in . or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "log build and search events")

	rootCmd.AddCommand(commands.NewBakeCommand(&flags))
	rootCmd.AddCommand(commands.NewPathCommand(&flags))
	rootCmd.AddCommand(commands.NewBenchCommand(&flags))
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "octonav %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
