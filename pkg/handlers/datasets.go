package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mimic-data/mimic-engine/pkg/config"
	"github.com/mimic-data/mimic-engine/pkg/models"
	"github.com/mimic-data/mimic-engine/pkg/schema"
	"github.com/mimic-data/mimic-engine/pkg/services"
)

// DatasetHandler serves the structured dataset generators: time series,
// hierarchies, graphs, correlated series and anomaly injection.
type DatasetHandler struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewDatasetHandler creates a new DatasetHandler.
func NewDatasetHandler(cfg *config.Config, logger *zap.Logger) *DatasetHandler {
	return &DatasetHandler{cfg: cfg, logger: logger}
}

// RegisterRoutes registers the dataset handler's routes on the given mux.
func (h *DatasetHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/datasets/timeseries", h.TimeSeries)
	mux.HandleFunc("POST /api/v1/datasets/hierarchy", h.Hierarchy)
	mux.HandleFunc("POST /api/v1/datasets/graph", h.Graph)
	mux.HandleFunc("POST /api/v1/datasets/correlated", h.Correlated)
	mux.HandleFunc("POST /api/v1/datasets/anomalies", h.Anomalies)
}

func (h *DatasetHandler) generator(seed int64) (*services.Generator, int64) {
	resolved := resolveSeed(seed, h.cfg.Seed)
	return services.NewGenerator(services.NewRand(resolved)), resolved
}

// TimeSeriesRequest is the payload for POST /api/v1/datasets/timeseries.
// Interval is a Go duration string such as "1h" or "24h".
type TimeSeriesRequest struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Interval    string    `json:"interval"`
	BaseValue   float64   `json:"base_value"`
	Trend       float64   `json:"trend"`
	Seasonality float64   `json:"seasonality"`
	Noise       float64   `json:"noise"`
	Seed        int64     `json:"seed"`
}

// TimeSeries handles POST /api/v1/datasets/timeseries requests.
func (h *DatasetHandler) TimeSeries(w http.ResponseWriter, r *http.Request) {
	var req TimeSeriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	var interval time.Duration
	if req.Interval != "" {
		var err error
		interval, err = time.ParseDuration(req.Interval)
		if err != nil {
			_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "invalid interval: "+req.Interval)
			return
		}
	}

	gen, seed := h.generator(req.Seed)
	points, err := gen.TimeSeries(models.TimeSeriesConfig{
		Start:       req.Start,
		End:         req.End,
		Interval:    interval,
		BaseValue:   req.BaseValue,
		Trend:       req.Trend,
		Seasonality: req.Seasonality,
		Noise:       req.Noise,
	})
	if err != nil {
		_ = WriteGenerationError(w, err)
		return
	}

	h.writeDataset(w, "timeseries", len(points), map[string]any{
		"points": points,
		"count":  len(points),
		"seed":   seed,
	})
}

// HierarchyRequest is the payload for POST /api/v1/datasets/hierarchy.
type HierarchyRequest struct {
	Schema      json.RawMessage `json:"schema"`
	MaxDepth    int             `json:"max_depth"`
	TotalNodes  int             `json:"total_nodes"`
	MinChildren int             `json:"min_children"`
	MaxChildren int             `json:"max_children"`
	Seed        int64           `json:"seed"`
}

// Hierarchy handles POST /api/v1/datasets/hierarchy requests.
func (h *DatasetHandler) Hierarchy(w http.ResponseWriter, r *http.Request) {
	var req HierarchyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	spec, err := schema.ParseJSON(req.Schema)
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_schema", err.Error())
		return
	}

	gen, seed := h.generator(req.Seed)
	nodes, err := gen.Hierarchy(models.HierarchyConfig{
		Schema:      spec,
		MaxDepth:    req.MaxDepth,
		TotalNodes:  req.TotalNodes,
		MinChildren: req.MinChildren,
		MaxChildren: req.MaxChildren,
	})
	if err != nil {
		_ = WriteGenerationError(w, err)
		return
	}

	h.writeDataset(w, "hierarchy", len(nodes), map[string]any{
		"nodes": nodes,
		"count": len(nodes),
		"seed":  seed,
	})
}

// GraphRequest is the payload for POST /api/v1/datasets/graph.
type GraphRequest struct {
	NodeSchema            json.RawMessage `json:"node_schema"`
	NodeCount             int             `json:"node_count"`
	ConnectionProbability float64         `json:"connection_probability"`
	MinDegree             int             `json:"min_degree"`
	MaxDegree             int             `json:"max_degree"`
	Directed              bool            `json:"directed"`
	Seed                  int64           `json:"seed"`
}

// Graph handles POST /api/v1/datasets/graph requests.
func (h *DatasetHandler) Graph(w http.ResponseWriter, r *http.Request) {
	var req GraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	var spec models.SchemaSpec
	if len(req.NodeSchema) > 0 {
		var err error
		spec, err = schema.ParseJSON(req.NodeSchema)
		if err != nil {
			_ = ErrorResponse(w, http.StatusBadRequest, "invalid_schema", err.Error())
			return
		}
	}

	gen, seed := h.generator(req.Seed)
	graph, err := gen.Graph(models.GraphConfig{
		NodeSchema:            spec,
		NodeCount:             req.NodeCount,
		ConnectionProbability: req.ConnectionProbability,
		MinDegree:             req.MinDegree,
		MaxDegree:             req.MaxDegree,
		Directed:              req.Directed,
	})
	if err != nil {
		_ = WriteGenerationError(w, err)
		return
	}

	h.writeDataset(w, "graph", graph.Metadata.NodeCount, map[string]any{
		"graph": graph,
		"seed":  seed,
	})
}

// CorrelatedRequest is the payload for POST /api/v1/datasets/correlated.
type CorrelatedRequest struct {
	SeriesNames       []string    `json:"series_names"`
	CorrelationMatrix [][]float64 `json:"correlation_matrix"`
	Means             []float64   `json:"means"`
	StdDevs           []float64   `json:"std_devs"`
	Count             int         `json:"count"`
	Seed              int64       `json:"seed"`
}

// Correlated handles POST /api/v1/datasets/correlated requests.
func (h *DatasetHandler) Correlated(w http.ResponseWriter, r *http.Request) {
	var req CorrelatedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	gen, seed := h.generator(req.Seed)
	series, err := gen.CorrelatedSeries(models.CorrelatedSeriesConfig{
		SeriesNames:       req.SeriesNames,
		CorrelationMatrix: req.CorrelationMatrix,
		Means:             req.Means,
		StdDevs:           req.StdDevs,
		Count:             req.Count,
	})
	if err != nil {
		_ = WriteGenerationError(w, err)
		return
	}

	h.writeDataset(w, "correlated", len(series), map[string]any{
		"series": series,
		"seed":   seed,
	})
}

// AnomalyRequest is the payload for POST /api/v1/datasets/anomalies.
type AnomalyRequest struct {
	Schema       json.RawMessage `json:"schema"`
	Count        int             `json:"count"`
	AnomalyRate  float64         `json:"anomaly_rate"`
	AnomalyTypes []string        `json:"anomaly_types"`
	Seed         int64           `json:"seed"`
}

// Anomalies handles POST /api/v1/datasets/anomalies requests.
func (h *DatasetHandler) Anomalies(w http.ResponseWriter, r *http.Request) {
	var req AnomalyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	spec, err := schema.ParseJSON(req.Schema)
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_schema", err.Error())
		return
	}

	count, err := resolveCount(req.Count, h.cfg.Generator)
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	gen, seed := h.generator(req.Seed)
	records, err := gen.WithAnomalies(models.AnomalyConfig{
		Schema:       spec,
		Count:        count,
		AnomalyRate:  req.AnomalyRate,
		AnomalyTypes: req.AnomalyTypes,
	})
	if err != nil {
		_ = WriteGenerationError(w, err)
		return
	}

	h.writeDataset(w, "anomalies", len(records), map[string]any{
		"records": records,
		"count":   len(records),
		"seed":    seed,
	})
}

func (h *DatasetHandler) writeDataset(w http.ResponseWriter, kind string, size int, body map[string]any) {
	h.logger.Info("generated dataset",
		zap.String("kind", kind),
		zap.Int("size", size))
	if err := WriteJSON(w, http.StatusOK, body); err != nil {
		h.logger.Error("Failed to encode dataset response", zap.Error(err))
	}
}
