package models

import "time"

// TimeSeriesConfig configures time-series synthesis. Zero values for Interval
// and the shape parameters are replaced by defaults at generation time.
type TimeSeriesConfig struct {
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	Interval    time.Duration `json:"interval"`
	BaseValue   float64       `json:"base_value"`
	Trend       float64       `json:"trend"`
	Seasonality float64       `json:"seasonality"`
	Noise       float64       `json:"noise"`
}

// TimeSeriesPoint is one sampled point of a synthetic series.
type TimeSeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// HierarchyConfig configures capacity-bounded tree construction.
type HierarchyConfig struct {
	Schema      SchemaSpec `json:"schema"`
	MaxDepth    int        `json:"max_depth"`
	TotalNodes  int        `json:"total_nodes"`
	MinChildren int        `json:"min_children"`
	MaxChildren int        `json:"max_children"`
}

// HierarchyNode is one node of a generated tree. The flat result list is the
// canonical owner of node data; Children holds back-references only.
type HierarchyNode struct {
	ID         string           `json:"id"`
	ParentID   *string          `json:"parent_id"`
	Depth      int              `json:"depth"`
	Children   []*HierarchyNode `json:"-"`
	Attributes Record           `json:"attributes"`
}

// GraphConfig configures degree-constrained random graph construction.
type GraphConfig struct {
	NodeSchema            SchemaSpec `json:"node_schema"`
	NodeCount             int        `json:"node_count"`
	ConnectionProbability float64    `json:"connection_probability"`
	MinDegree             int        `json:"min_degree"`
	MaxDegree             int        `json:"max_degree"`
	Directed              bool       `json:"directed"`
}

// GraphNode is one generated graph node.
type GraphNode struct {
	ID         string `json:"id"`
	Attributes Record `json:"attributes"`
}

// GraphEdge is one generated edge. Weight is uniform in [0.1, 1.0].
type GraphEdge struct {
	ID       string  `json:"id"`
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Weight   float64 `json:"weight"`
	Directed bool    `json:"directed"`
}

// GraphMetadata summarizes a generated graph.
type GraphMetadata struct {
	NodeCount     int     `json:"node_count"`
	EdgeCount     int     `json:"edge_count"`
	Directed      bool    `json:"directed"`
	AverageDegree float64 `json:"average_degree"`
}

// Graph is a generated node/edge set with summary metadata.
type Graph struct {
	Nodes    []GraphNode   `json:"nodes"`
	Edges    []GraphEdge   `json:"edges"`
	Metadata GraphMetadata `json:"metadata"`
}

// CorrelatedSeriesConfig configures correlated multi-series sampling.
// The correlation matrix is expected to be symmetric with unit diagonal;
// only its dimension is validated.
type CorrelatedSeriesConfig struct {
	SeriesNames       []string    `json:"series_names"`
	CorrelationMatrix [][]float64 `json:"correlation_matrix"`
	Means             []float64   `json:"means"`
	StdDevs           []float64   `json:"std_devs"`
	Count             int         `json:"count"`
}

// Anomaly type names applied by the anomaly injector.
const (
	AnomalyExtremeValues        = "extreme_values"
	AnomalyMissingData          = "missing_data"
	AnomalyInconsistentPatterns = "inconsistent_patterns"
)

// AnomalyConfig configures anomaly injection over a base schema.
type AnomalyConfig struct {
	Schema       SchemaSpec `json:"schema"`
	Count        int        `json:"count"`
	AnomalyRate  float64    `json:"anomaly_rate"`
	AnomalyTypes []string   `json:"anomaly_types"`
}

// AnomalyRecord wraps a generated record with its anomaly marker.
// AnomalyType is nil for clean records.
type AnomalyRecord struct {
	Data        Record  `json:"data"`
	IsAnomaly   bool    `json:"is_anomaly"`
	AnomalyType *string `json:"anomaly_type"`
	Index       int     `json:"index"`
}
