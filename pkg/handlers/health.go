package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mimic-data/mimic-engine/pkg/config"
)

// PingResponse reports service status plus the generation settings a client
// needs to plan requests: whether runs are reproducible and how many records
// one request may ask for.
type PingResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	Environment   string `json:"environment"`
	Deterministic bool   `json:"deterministic"`
	Seed          int64  `json:"seed,omitempty"`
	DefaultCount  int    `json:"default_count"`
	MaxRecords    int    `json:"max_records"`
}

// HealthHandler handles health check and ping endpoints.
type HealthHandler struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler with the given configuration.
func NewHealthHandler(cfg *config.Config, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, logger: logger}
}

// RegisterRoutes registers the health handler's routes on the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ping", h.Ping)
}

// Health handles GET /health requests with a bare "ok" for liveness probes.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ping handles GET /ping requests. A configured seed makes every generation
// run reproducible, so clients get told which mode they are talking to.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	response := PingResponse{
		Status:        "ok",
		Service:       "mimic-engine",
		Version:       h.cfg.Version,
		Environment:   h.cfg.Env,
		Deterministic: h.cfg.Seed != 0,
		Seed:          h.cfg.Seed,
		DefaultCount:  h.cfg.Generator.DefaultCount,
		MaxRecords:    h.cfg.Generator.MaxRecords,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode ping response", zap.Error(err))
	}
}
