package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mimic-data/mimic-engine/pkg/config"
	"github.com/mimic-data/mimic-engine/pkg/models"
	"github.com/mimic-data/mimic-engine/pkg/schema"
	"github.com/mimic-data/mimic-engine/pkg/services"
)

// GenerateRequest is the payload for POST /api/v1/generate. Schema accepts
// either the array form or the {"field": "type"} shorthand.
type GenerateRequest struct {
	Schema   json.RawMessage `json:"schema"`
	Count    int             `json:"count"`
	Seed     int64           `json:"seed"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// GenerateResponse wraps generated records with their count. Total and Page
// are set only for paginated requests; with a fixed seed the same page always
// holds the same records.
type GenerateResponse struct {
	Records  []models.Record `json:"records"`
	Count    int             `json:"count"`
	Seed     int64           `json:"seed"`
	Total    int             `json:"total,omitempty"`
	Page     int             `json:"page,omitempty"`
	PageSize int             `json:"page_size,omitempty"`
}

// GenerateHandler serves schema-driven record generation.
type GenerateHandler struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(cfg *config.Config, logger *zap.Logger) *GenerateHandler {
	return &GenerateHandler{cfg: cfg, logger: logger}
}

// RegisterRoutes registers the generate handler's routes on the given mux.
func (h *GenerateHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/generate", h.Generate)
}

// Generate handles POST /api/v1/generate requests.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	spec, err := schema.ParseJSON(req.Schema)
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_schema", err.Error())
		return
	}

	count, err := h.resolveCount(req.Count)
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	seed := resolveSeed(req.Seed, h.cfg.Seed)
	gen := services.NewGenerator(services.NewRand(seed))
	records := gen.GenerateMany(spec, count)

	resp := GenerateResponse{Records: records, Count: count, Seed: seed}
	if req.PageSize > 0 {
		page := max(req.Page, 1)
		start := min((page-1)*req.PageSize, count)
		end := min(start+req.PageSize, count)
		resp.Records = records[start:end]
		resp.Count = end - start
		resp.Total = count
		resp.Page = page
		resp.PageSize = req.PageSize
	}

	h.logger.Info("generated records",
		zap.Int("count", resp.Count),
		zap.Int("fields", spec.Len()))

	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode generate response", zap.Error(err))
	}
}

func (h *GenerateHandler) resolveCount(count int) (int, error) {
	return resolveCount(count, h.cfg.Generator)
}

func resolveCount(count int, cfg config.GeneratorConfig) (int, error) {
	if count == 0 {
		return cfg.DefaultCount, nil
	}
	if count < 0 {
		return 0, fmt.Errorf("count must be positive")
	}
	if count > cfg.MaxRecords {
		return 0, fmt.Errorf("count %d exceeds maximum %d", count, cfg.MaxRecords)
	}
	return count, nil
}

// resolveSeed picks the request seed, then the configured seed, then the
// clock. The chosen seed is echoed in responses so a run can be replayed.
func resolveSeed(requested, configured int64) int64 {
	if requested != 0 {
		return requested
	}
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}
