// Package server exposes workbook conversion over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson"
)

// Output file names written into the data directory.
const (
	JSONFileName  = "output.json"
	ExcelFileName = "output.xlsx"
)

// Config holds configuration for the server.
type Config struct {
	Addr        string
	DataDir     string
	MaxUploadMB int64
	Options     unifiedjson.Options
	Logger      *slog.Logger
}

// Server converts uploaded workbooks and serves the generated files.
type Server struct {
	addr      string
	dataDir   string
	maxUpload int64
	opts      unifiedjson.Options
	logger    *slog.Logger
}

// New creates a new server instance.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		addr:      cfg.Addr,
		dataDir:   cfg.DataDir,
		maxUpload: cfg.MaxUploadMB << 20,
		opts:      cfg.Options,
		logger:    logger,
	}
}

// JSONPath returns the path of the converted document.
func (s *Server) JSONPath() string { return filepath.Join(s.dataDir, JSONFileName) }

// ExcelPath returns the path of the regenerated workbook.
func (s *Server) ExcelPath() string { return filepath.Join(s.dataDir, ExcelFileName) }

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)
	r.Route("/api/excel", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Get("/get/{fileType}", s.handleDownload)
	})
	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		s.logger.Info("starting server", "addr", s.addr, "data_dir", s.dataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
