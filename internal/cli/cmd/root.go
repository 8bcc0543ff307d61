// Package cmd implements the iconres command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brynd/iconres/internal/config"
	"github.com/brynd/iconres/internal/logging"
)

// BuildInfo carries build-time metadata set via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

var buildInfo = BuildInfo{
	Version:   "dev",
	Commit:    "unknown",
	BuildDate: "unknown",
}

// SetBuildInfo stores build metadata for the version command.
func SetBuildInfo(info BuildInfo) {
	buildInfo = info
}

var rootCmd = &cobra.Command{
	Use:   "iconres",
	Short: "Resolve launcher icon identifiers into bitmaps",
	Long: `iconres turns a heterogeneous identifier (a data URI, an absolute path,
a path relative to a plugin directory, or an executable/shortcut) into a
decoded bitmap, caching results for the life of the process.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Init(); err != nil {
			return err
		}
		cfg := config.Get()
		logger := logging.New(logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: logging.DefaultConfig().TimeFormat,
		})
		cmd.SetContext(logging.WithContext(cmd.Context(), logger))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
