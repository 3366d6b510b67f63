// Package main provides the entry point for the sharpfang CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/sharpfang/cmd/sharpfang/commands"
	"github.com/Sumatoshi-tech/sharpfang/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sharpfang",
		Short: "Sharpfang - C# style analysis front-end",
		Long: `Sharpfang discovers C# source files referenced by Visual Studio
solution (.sln) and project (.csproj) files and runs a style-analysis
engine over them.

Commands:
  check     Discover sources and run the analysis engine
  list      Discover sources and print them
  config    Print the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress output")

	// Add commands.
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewListCommand())
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
			fmt.Fprintf(os.Stdout, "sharpfang %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
