package services

import (
	"math"
	"strings"
	"time"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

// invalidEmail and implausibleDate are the fixed values written by the
// inconsistent_patterns anomaly.
const invalidEmail = "not-an-email"

var implausibleDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// WithAnomalies generates count records from the schema and corrupts exactly
// round(count*anomalyRate) of them, at unique indices chosen without
// replacement. Clean records carry a nil anomaly type.
func (g *Generator) WithAnomalies(cfg models.AnomalyConfig) ([]models.AnomalyRecord, error) {
	if cfg.Count <= 0 {
		return nil, apperrors.ErrInvalidCount
	}
	if cfg.Schema.Len() == 0 {
		return nil, apperrors.ErrInvalidSchema
	}
	if cfg.AnomalyRate < 0 || cfg.AnomalyRate > 1 {
		return nil, apperrors.ErrInvalidRate
	}
	anomalyTypes := cfg.AnomalyTypes
	if len(anomalyTypes) == 0 {
		anomalyTypes = []string{
			models.AnomalyExtremeValues,
			models.AnomalyMissingData,
			models.AnomalyInconsistentPatterns,
		}
	}

	anomalyCount := int(math.Round(float64(cfg.Count) * cfg.AnomalyRate))
	anomalous := make(map[int]bool, anomalyCount)
	for _, idx := range g.rng.Perm(cfg.Count)[:anomalyCount] {
		anomalous[idx] = true
	}

	records := make([]models.AnomalyRecord, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		record := g.Generate(cfg.Schema)
		entry := models.AnomalyRecord{Data: record, Index: i}
		if anomalous[i] {
			anomalyType := pick(g.rng, anomalyTypes)
			g.applyAnomaly(record, cfg.Schema, anomalyType)
			entry.IsAnomaly = true
			entry.AnomalyType = &anomalyType
		}
		records = append(records, entry)
	}
	return records, nil
}

func (g *Generator) applyAnomaly(record models.Record, schema models.SchemaSpec, anomalyType string) {
	switch anomalyType {
	case models.AnomalyExtremeValues:
		// Coin-flip per numeric field: inflate or deflate by 10x.
		for name, value := range record {
			switch v := value.(type) {
			case int:
				if g.rng.Intn(2) == 0 {
					record[name] = v * 10
				} else {
					record[name] = v / 10
				}
			case float64:
				if g.rng.Intn(2) == 0 {
					record[name] = v * 10
				} else {
					record[name] = v / 10
				}
			}
		}
	case models.AnomalyMissingData:
		field := pick(g.rng, schema.Fields)
		record[field.Name] = nil
	case models.AnomalyInconsistentPatterns:
		for _, f := range schema.Fields {
			switch f.Type {
			case models.FieldText:
				if strings.Contains(strings.ToLower(f.Name), "email") {
					record[f.Name] = invalidEmail
				}
			case models.FieldTimestamp:
				record[f.Name] = implausibleDate
			}
		}
	}
}
