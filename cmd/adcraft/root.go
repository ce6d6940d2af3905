package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"adcraft/internal/infrastructure/config"
	"adcraft/internal/infrastructure/logger"
)

// globals are the persistent flags shared by every subcommand
type globals struct {
	presetsDir string
	logLevel   string
}

func (g *globals) logger(cmd *cobra.Command) zerolog.Logger {
	return logger.NewWithWriter(cmd.ErrOrStderr(), "development", g.logLevel)
}

func NewRoot() *cobra.Command {
	cfg := config.Load()

	g := &globals{}
	root := &cobra.Command{
		Use:          "adcraft",
		Short:        "Generate ad concepts from campaign briefs",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.presetsDir, "presets-dir", cfg.PresetsPath, "Directory with extra preset files")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Diagnostics level written to stderr")

	root.AddCommand(
		generateCmd(g),
		optionsCmd(),
		presetsCmd(g),
	)
	return root
}
