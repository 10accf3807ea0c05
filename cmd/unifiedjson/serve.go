package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Kiransripada007/unified-json/internal/config"
	"github.com/Kiransripada007/unified-json/internal/server"
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve workbook conversion over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Config{
				Addr:        cfg.Server.Addr,
				DataDir:     cfg.Server.DataDir,
				MaxUploadMB: cfg.Server.MaxUploadMB,
				Options:     cfg.ConvertOptions(),
				Logger:      logger,
			})
			return srv.Serve(ctx)
		},
	}
	cmd.Flags().String("addr", config.DefaultAddr, "Listen address")
	cmd.Flags().String("data-dir", config.DefaultDataDir, "Directory for generated files")
	cmd.Flags().Int64("max-upload-mb", config.DefaultMaxUploadMB, "Maximum upload size in megabytes")
	cmd.Flags().String("code-value-key", unifiedjson.DefaultCodeValueKeyField, "Header identifying a code value")
	return cmd
}
