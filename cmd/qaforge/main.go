// Package main provides the entry point for the qaforge CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/qaforge/qaforge/cmd/qaforge/commands"
	"github.com/qaforge/qaforge/pkg/version"
)

var noColor bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "qaforge",
		Short: "QA report aggregation - normalized metrics from build pipeline artifacts",
		Long: `Qaforge aggregates heterogeneous QA reports (Surefire, JaCoCo, PITest,
Dependency-Check, SpotBugs) into one normalized metrics model and renders it
as a Markdown summary, badge payloads, and a dashboard metrics document.

Commands:
  summarize  Aggregate the reports under a build output directory`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if noColor {
				color.NoColor = true //nolint:reassign // intentional override of library global
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands.
	rootCmd.AddCommand(commands.NewSummarizeCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
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
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "qaforge %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
