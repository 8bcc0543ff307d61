package cmd

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brynd/iconres/internal/config"
	"github.com/brynd/iconres/internal/icon"
	"github.com/brynd/iconres/internal/icon/shell"
	"github.com/brynd/iconres/internal/logging"
)

const outFilePerm = 0644

var (
	resolveBase string
	resolveOut  string
	resolveSize int
)

var resolveCmd = &cobra.Command{
	Use:   "resolve IDENTIFIER",
	Short: "Resolve an identifier to a bitmap and write it as PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := args[0]
		cfg := config.Get()

		ctx := logging.WithComponent(cmd.Context(), "resolve")
		if cfg.Icons.ExtractTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Icons.ExtractTimeout)
			defer cancel()
		}

		service := icon.NewService(icon.NewCache(), shell.New(cfg.Icons.ThemeDirs...))
		img := service.Convert(ctx, identifier, resolveBase)
		if img == nil {
			return fmt.Errorf("no image resolved for %q", identifier)
		}

		if resolveSize > 0 {
			img = icon.Scale(img, resolveSize)
		}

		out := resolveOut
		if out == "" {
			out = outputName(identifier)
		}
		f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outFilePerm)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}

		cmd.Printf("%s\n", out)
		return nil
	},
}

// outputName derives a PNG filename from an identifier.
func outputName(identifier string) string {
	if icon.IsEmbedded(identifier) {
		return "embedded.png"
	}
	base := filepath.Base(identifier)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "icon"
	}
	return base + ".png"
}

func init() {
	resolveCmd.Flags().StringVar(&resolveBase, "base", "", "base directory for relative identifiers")
	resolveCmd.Flags().StringVarP(&resolveOut, "out", "o", "", "output PNG path (default: derived from the identifier)")
	resolveCmd.Flags().IntVar(&resolveSize, "size", 0, "normalize to a square of this size (0 keeps the source size)")
	rootCmd.AddCommand(resolveCmd)
}
