package services

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

func TestTimeSeriesPointPerDay(t *testing.T) {
	g := testGenerator()
	points, err := g.TimeSeries(models.TimeSeriesConfig{
		Start:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		Interval:  24 * time.Hour,
		BaseValue: 100,
		Noise:     0.1,
	})
	require.NoError(t, err)
	require.Len(t, points, 10)

	for i, p := range points {
		assert.False(t, math.IsNaN(p.Value))
		assert.False(t, math.IsInf(p.Value, 0))
		if i > 0 {
			assert.True(t, p.Timestamp.After(points[i-1].Timestamp))
		}
	}
}

func TestTimeSeriesTrend(t *testing.T) {
	g := testGenerator()
	points, err := g.TimeSeries(models.TimeSeriesConfig{
		Start:     time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC),
		BaseValue: 100,
		Trend:     5,
	})
	require.NoError(t, err)
	require.Len(t, points, 30)

	// No seasonality or noise: pure base + trend*step.
	assert.Equal(t, 100.0, points[0].Value)
	assert.Equal(t, 100.0+5*29, points[29].Value)
}

func TestTimeSeriesInvalidRange(t *testing.T) {
	g := testGenerator()
	_, err := g.TimeSeries(models.TimeSeriesConfig{
		Start: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}

func TestTimeSeriesDefaults(t *testing.T) {
	g := testGenerator()
	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	points, err := g.TimeSeries(models.TimeSeriesConfig{
		Start: start,
		End:   start.AddDate(0, 0, 4),
	})
	require.NoError(t, err)
	// Default interval is one day, default base 100, no shape parameters.
	require.Len(t, points, 5)
	for _, p := range points {
		assert.Equal(t, 100.0, p.Value)
	}
}
