package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Kiransripada007/unified-json/pkg/unifiedjson"
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/output"
	"github.com/Kiransripada007/unified-json/pkg/unifiedjson/sheetgen"
)

// ConversionIDHeader carries the id assigned to an upload's conversion.
const ConversionIDHeader = "X-Conversion-ID"

// handleConvert converts the uploaded workbook to JSON and regenerates a
// workbook from that JSON.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	logger := s.logger.With("conversion_id", id)
	w.Header().Set(ConversionIDHeader, id)

	fail := func(err error) {
		logger.Error("conversion failed", "error", err)
		http.Error(w, "Error processing file: "+err.Error(), http.StatusInternalServerError)
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	upload, header, err := r.FormFile("file")
	if err != nil {
		fail(err)
		return
	}
	defer upload.Close()
	logger.Info("workbook uploaded", "filename", header.Filename, "size", header.Size)

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		fail(err)
		return
	}

	opts := s.opts
	opts.Logger = logger
	result, err := unifiedjson.Convert(upload, opts)
	if err != nil {
		fail(err)
		return
	}
	if err := output.WriteFile(s.JSONPath(), result.Document); err != nil {
		fail(err)
		return
	}
	if err := sheetgen.GenerateFile(s.JSONPath(), s.ExcelPath()); err != nil {
		fail(err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Files generated successfully: \nJSON File: %s\nExcel File: %s", s.JSONPath(), s.ExcelPath())
}

// handleDownload serves a previously generated file by type.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	var path string
	switch strings.ToLower(chi.URLParam(r, "fileType")) {
	case "json":
		path = s.JSONPath()
	case "excel":
		path = s.ExcelPath()
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("download failed", "path", path, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+filepath.Base(path))
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(content)
}
