package services

import (
	"fmt"
	"math"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

// CorrelatedSeries samples multiple series with pairwise correlation steered
// by the configured matrix. Per sample it draws independent standard normals
// (Box-Muller) and accumulates, for series j, the lower-triangular partial
// sum over matrix[j][k]*independent[k] for k <= j, scaled by
// stddev[j]/sqrt(j+1) and shifted by mean[j].
//
// This is a partial-correlation approximation, not a Cholesky factorization:
// empirical correlations land below the requested coefficients and drift
// further for matrices beyond 2-3 series. The approximation is kept for
// compatibility with existing consumers.
func (g *Generator) CorrelatedSeries(cfg models.CorrelatedSeriesConfig) (map[string][]float64, error) {
	n := len(cfg.SeriesNames)
	if n == 0 {
		return nil, fmt.Errorf("correlated series: %w", apperrors.ErrInvalidSchema)
	}
	if len(cfg.CorrelationMatrix) != n {
		return nil, apperrors.ErrDimensionMismatch
	}
	for _, row := range cfg.CorrelationMatrix {
		if len(row) != n {
			return nil, apperrors.ErrDimensionMismatch
		}
	}

	count := cfg.Count
	if count <= 0 {
		count = 100
	}
	means := cfg.Means
	if len(means) != n {
		means = make([]float64, n)
	}
	stddevs := cfg.StdDevs
	if len(stddevs) != n {
		stddevs = make([]float64, n)
		for i := range stddevs {
			stddevs[i] = 1
		}
	}

	series := make(map[string][]float64, n)
	for _, name := range cfg.SeriesNames {
		series[name] = make([]float64, 0, count)
	}

	independent := make([]float64, n)
	for s := 0; s < count; s++ {
		for k := range independent {
			independent[k] = boxMuller(g.rng)
		}
		for j, name := range cfg.SeriesNames {
			var sum float64
			for k := 0; k <= j; k++ {
				sum += cfg.CorrelationMatrix[j][k] * independent[k]
			}
			value := means[j] + sum*stddevs[j]/math.Sqrt(float64(j+1))
			series[name] = append(series[name], round3(value))
		}
	}
	return series, nil
}
