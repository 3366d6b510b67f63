// Package commands implements CLI command handlers for sharpfang.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// newLogger builds the command logger from the root --verbose/--quiet flags.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := slog.LevelInfo

	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
