package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/boolean-maybe/minidown/internal/config"
	"github.com/boolean-maybe/minidown/loaders"
	"github.com/boolean-maybe/minidown/minidown"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "minidown",
	Short: "Convert a small markdown subset (headers, paragraphs, links) to HTML",
	Long: `minidown converts ATX headers, paragraphs and inline links to HTML.

Examples:
  minidown convert README.md
  cat notes.md | minidown convert - --standalone -o notes.html
  minidown compare README.md          # differences from CommonMark
  minidown view README.md             # terminal viewer`,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		if cmd.Flags().Changed("debug") {
			cfg.Debug = debug
		}

		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/minidown/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// readInput loads markdown from the first argument: a file, an HTTP(S) URL
// or "-" for stdin. No argument means stdin.
func readInput(ctx context.Context, args []string) (content, source string, err error) {
	location := "-"
	if len(args) > 0 {
		location = args[0]
	}
	loader := &loaders.FileHTTP{}
	content, err = loader.Load(ctx, location)
	if err != nil {
		return "", "", fmt.Errorf("error loading content: %w", err)
	}
	if location == "-" {
		location = ""
	}
	return content, location, nil
}

func newConverter(sanitize bool, workers int) *minidown.Converter {
	return minidown.NewConverter(minidown.Options{
		Logger:   logger,
		Sanitize: sanitize,
		Workers:  workers,
	})
}
