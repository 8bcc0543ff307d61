package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/brynd/iconres/internal/icon"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the recognized icon format families",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("direct-image:    %s\n", strings.Join(icon.DirectImageExts(), " "))
		cmd.Printf("self-extracting: %s\n", strings.Join(icon.SelfExtractingExts(), " "))
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
