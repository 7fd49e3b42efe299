// Package server exposes the projection engine over HTTP for the chart layer.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/iwvelando/hybrid-forecast/internal/config"
	"github.com/iwvelando/hybrid-forecast/internal/projection"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the projection API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySizeBytes()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Projection API endpoint
	mux.HandleFunc("/api/projection", h.handleProjection)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type projectionResponse struct {
	Result   *projection.Result `json:"result"`
	Duration string             `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var conf config.Configuration
	if err := json.NewDecoder(r.Body).Decode(&conf); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err))
		return
	}

	result, err := projection.RunConfiguration(h.logger, conf)
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("projection failed: %v", err))
		return
	}

	h.writeJSON(w, http.StatusOK, projectionResponse{
		Result:   result,
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.logger.Warn(msg,
		zap.String("op", "server.respondError"),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
