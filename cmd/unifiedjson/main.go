// Package main provides the CLI entry point for unifiedjson.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kiransripada007/unified-json/internal/config"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unifiedjson",
		Short: "Convert reference data workbooks to unified JSON",
		Long: `unifiedjson reads a reference data workbook (assets, code values,
hierarchy and mapping sheets) and writes one JSON document joining them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./unifiedjson.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "Log format: text, json")

	rootCmd.AddCommand(
		newConvertCmd(),
		newGenerateCmd(),
		newInspectCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
