// Package api implements the StressLens REST API: the assessment endpoint,
// health and dataset-info reads, and the Prometheus metrics surface.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/stresslens/stresslens/internal/pipeline"
)

// Handler is the top-level API handler for the StressLens daemon.
type Handler struct {
	svc      *pipeline.Service
	logger   *zap.Logger
	metrics  *Metrics
	gatherer prometheus.Gatherer
}

// NewHandler creates a new API handler. The registry receives the API's
// collectors and backs the /metrics endpoint.
func NewHandler(svc *pipeline.Service, logger *zap.Logger, reg *prometheus.Registry) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Handler{
		svc:      svc,
		logger:   logger,
		metrics:  NewMetrics(reg),
		gatherer: reg,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/analyze", h.handleAnalyze)
	mux.HandleFunc("GET /api/v1/health", h.handleHealth)
	mux.HandleFunc("GET /api/v1/dataset/info", h.handleDatasetInfo)
	mux.Handle("GET /metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "healthy",
		"model_loaded": true,
		"corpus_cases": h.svc.CorpusStats().TotalCases,
	})
}

func (h *Handler) handleDatasetInfo(w http.ResponseWriter, r *http.Request) {
	stats := h.svc.CorpusStats()
	writeJSON(w, http.StatusOK, map[string]any{
		"dataset_loaded": stats.TotalCases > 0,
		"stats":          stats,
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// writeError emits the failure envelope the gateway contract requires:
// success false, an error string, and a non-2xx status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}
