package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	envFile  string
	addr     string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "questiond",
	Short: "Interview question generator",
	Long:  "questiond turns résumé text into interview questions using a local chat-completion model.",
	// Running the binary without a subcommand serves HTTP.
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to a .env file; a missing default file is ignored")
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
}

func newLogger(level string) *slog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}
