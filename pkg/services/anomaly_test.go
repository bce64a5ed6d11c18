package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

func anomalySchema() models.SchemaSpec {
	return models.NewSchema(
		models.FieldSpec{Name: "email", Type: models.FieldText},
		models.FieldSpec{Name: "amount", Type: models.FieldReal},
		models.FieldSpec{Name: "quantity", Type: models.FieldInteger},
		models.FieldSpec{Name: "created_at", Type: models.FieldTimestamp},
	)
}

func TestWithAnomaliesExactCount(t *testing.T) {
	g := testGenerator()
	records, err := g.WithAnomalies(models.AnomalyConfig{
		Schema:      anomalySchema(),
		Count:       100,
		AnomalyRate: 0.1,
	})
	require.NoError(t, err)
	require.Len(t, records, 100)

	anomalous := 0
	for i, r := range records {
		assert.Equal(t, i, r.Index)
		if r.IsAnomaly {
			anomalous++
			require.NotNil(t, r.AnomalyType)
		} else {
			assert.Nil(t, r.AnomalyType)
		}
	}
	assert.Equal(t, 10, anomalous)
}

func TestWithAnomaliesTypes(t *testing.T) {
	g := testGenerator()
	schema := anomalySchema()

	t.Run("missing_data nulls one field", func(t *testing.T) {
		records, err := g.WithAnomalies(models.AnomalyConfig{
			Schema:       schema,
			Count:        50,
			AnomalyRate:  1.0,
			AnomalyTypes: []string{models.AnomalyMissingData},
		})
		require.NoError(t, err)
		for _, r := range records {
			nils := 0
			for _, v := range r.Data {
				if v == nil {
					nils++
				}
			}
			assert.Equal(t, 1, nils)
		}
	})

	t.Run("inconsistent_patterns rewrites email and timestamps", func(t *testing.T) {
		records, err := g.WithAnomalies(models.AnomalyConfig{
			Schema:       schema,
			Count:        20,
			AnomalyRate:  1.0,
			AnomalyTypes: []string{models.AnomalyInconsistentPatterns},
		})
		require.NoError(t, err)
		for _, r := range records {
			assert.Equal(t, invalidEmail, r.Data["email"])
			assert.Equal(t, implausibleDate, r.Data["created_at"])
		}
	})

	t.Run("extreme_values shifts numeric fields tenfold", func(t *testing.T) {
		records, err := g.WithAnomalies(models.AnomalyConfig{
			Schema:       schema,
			Count:        50,
			AnomalyRate:  1.0,
			AnomalyTypes: []string{models.AnomalyExtremeValues},
		})
		require.NoError(t, err)
		// Base amounts stay under 5_000_000; the x10 branch must push a good
		// share of them past it.
		inflated := 0
		for _, r := range records {
			assert.IsType(t, 0.0, r.Data["amount"])
			assert.IsType(t, 0, r.Data["quantity"])
			if r.Data["amount"].(float64) > 5_000_000 {
				inflated++
			}
		}
		assert.Greater(t, inflated, 0)
	})
}

func TestWithAnomaliesZeroRate(t *testing.T) {
	g := testGenerator()
	records, err := g.WithAnomalies(models.AnomalyConfig{
		Schema:      anomalySchema(),
		Count:       30,
		AnomalyRate: 0,
	})
	require.NoError(t, err)
	for _, r := range records {
		assert.False(t, r.IsAnomaly)
		assert.Nil(t, r.AnomalyType)
	}
}

func TestWithAnomaliesInvalidConfig(t *testing.T) {
	g := testGenerator()

	_, err := g.WithAnomalies(models.AnomalyConfig{Schema: anomalySchema(), Count: 0})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCount)

	_, err = g.WithAnomalies(models.AnomalyConfig{Count: 5})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSchema)
}

func TestWithAnomaliesOutOfRangeRate(t *testing.T) {
	g := testGenerator()

	for _, rate := range []float64{1.5, -0.2, 100} {
		_, err := g.WithAnomalies(models.AnomalyConfig{
			Schema:      anomalySchema(),
			Count:       10,
			AnomalyRate: rate,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRate, "rate %v", rate)
	}
}
