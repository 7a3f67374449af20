package main

import (
	"fmt"
	"log/slog"
	"os"

	"catalog_tgbot/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:           "catalog_tgbot",
		Short:         "Telegram bot for browsing the template catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			*cfg = *config.MustLoad()
			setupLogger(cfg)
			slog.Debug("config", slog.Any("cfg", cfg))
		},
	}
	cfg = &config.Config{}

	botCmd := newBotCmd(cfg)
	rootCmd.AddCommand(botCmd, newProbeCmd(cfg), newShowCmd(cfg))
	rootCmd.RunE = botCmd.RunE

	return rootCmd
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
