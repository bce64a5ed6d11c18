package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mimic-data/mimic-engine/pkg/config"
	"github.com/mimic-data/mimic-engine/pkg/models"
	"github.com/mimic-data/mimic-engine/pkg/services"
)

// ScenarioRequest is the payload for POST /api/v1/scenarios/ecommerce.
type ScenarioRequest struct {
	UserCount       int    `json:"user_count"`
	ProductCount    int    `json:"product_count"`
	SeasonalPattern string `json:"seasonal_pattern"`
	Seed            int64  `json:"seed"`
}

// ScenarioResponse is the generated e-commerce dataset with entity counts.
type ScenarioResponse struct {
	Users    []models.User    `json:"users"`
	Products []models.Product `json:"products"`
	Orders   []models.Order   `json:"orders"`
	Reviews  []models.Review  `json:"reviews"`
	Counts   map[string]int   `json:"counts"`
	Seed     int64            `json:"seed"`
}

// ScenarioHandler serves full e-commerce scenario generation.
type ScenarioHandler struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewScenarioHandler creates a new ScenarioHandler.
func NewScenarioHandler(cfg *config.Config, logger *zap.Logger) *ScenarioHandler {
	return &ScenarioHandler{cfg: cfg, logger: logger}
}

// RegisterRoutes registers the scenario handler's routes on the given mux.
func (h *ScenarioHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/scenarios/ecommerce", h.Ecommerce)
}

// Ecommerce handles POST /api/v1/scenarios/ecommerce requests. Each request
// builds its own scenario builder and relationship store so concurrent
// requests never share random state.
func (h *ScenarioHandler) Ecommerce(w http.ResponseWriter, r *http.Request) {
	var req ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.UserCount < 0 || req.ProductCount < 0 {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "counts must be positive")
		return
	}
	if max(req.UserCount, req.ProductCount) > h.cfg.Generator.MaxRecords {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "count exceeds maximum")
		return
	}

	seed := resolveSeed(req.Seed, h.cfg.Seed)
	rng := services.NewRand(seed)
	builder := services.NewScenarioBuilder(rng, services.NewBehaviorEngine(rng), services.NewRelationshipStore(), h.logger)

	result, err := builder.Build(services.ScenarioConfig{
		UserCount:       req.UserCount,
		ProductCount:    req.ProductCount,
		SeasonalPattern: req.SeasonalPattern,
	})
	if err != nil {
		_ = WriteGenerationError(w, err)
		return
	}

	resp := ScenarioResponse{
		Users:    result.Users,
		Products: result.Products,
		Orders:   result.Orders,
		Reviews:  result.Reviews,
		Counts: map[string]int{
			services.EntityUsers:    len(result.Users),
			services.EntityProducts: len(result.Products),
			services.EntityOrders:   len(result.Orders),
			services.EntityReviews:  len(result.Reviews),
		},
		Seed: seed,
	}

	h.logger.Info("generated scenario",
		zap.Int("users", len(result.Users)),
		zap.Int("orders", len(result.Orders)))

	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode scenario response", zap.Error(err))
	}
}
