package services

import (
	"math"
	"time"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

const daysPerYear = 365.25

// TimeSeries produces one point per interval step from Start through End
// inclusive:
//
//	value = base + trend*step + seasonality*base*sin(2pi*dayOfYear/365.25) + noise*base*U(-1,1)
//
// rounded to 2 decimals. The result is materialized in full; downstream
// consumers need random access.
func (g *Generator) TimeSeries(cfg models.TimeSeriesConfig) ([]models.TimeSeriesPoint, error) {
	if cfg.End.Before(cfg.Start) {
		return nil, apperrors.ErrInvalidDateRange
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	base := cfg.BaseValue
	if base == 0 {
		base = 100
	}

	var points []models.TimeSeriesPoint
	step := 0
	for ts := cfg.Start; !ts.After(cfg.End); ts = ts.Add(interval) {
		seasonal := cfg.Seasonality * base * math.Sin(2*math.Pi*float64(ts.YearDay())/daysPerYear)
		noise := cfg.Noise * base * floatBetween(g.rng, -1, 1)
		value := base + cfg.Trend*float64(step) + seasonal + noise
		points = append(points, models.TimeSeriesPoint{
			Timestamp: ts,
			Value:     round2(value),
		})
		step++
	}
	return points, nil
}
