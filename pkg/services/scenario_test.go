package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

func testScenarioBuilder() (*ScenarioBuilder, *RelationshipStore) {
	rng := NewRand(99)
	store := NewRelationshipStore()
	return NewScenarioBuilder(rng, NewBehaviorEngine(rng), store, zap.NewNop()), store
}

func TestScenarioBuild(t *testing.T) {
	b, store := testScenarioBuilder()
	result, err := b.Build(ScenarioConfig{UserCount: 30, ProductCount: 15, SeasonalPattern: SeasonPayday})
	require.NoError(t, err)

	require.Len(t, result.Users, 30)
	require.Len(t, result.Products, 15)
	assert.NotEmpty(t, result.Orders)

	for _, u := range result.Users {
		assert.NotEmpty(t, u.Name)
		assert.Contains(t, u.Email, "@")
		assert.NotEmpty(t, u.Behavior)
	}

	productIDs := make(map[string]bool)
	for _, p := range result.Products {
		productIDs[p.ID.String()] = true
		assert.Greater(t, p.Price, 0.0)
	}
	userIDs := make(map[string]bool)
	for _, u := range result.Users {
		userIDs[u.ID.String()] = true
	}
	for _, o := range result.Orders {
		assert.True(t, userIDs[o.UserID.String()], "order references unknown user")
		assert.True(t, productIDs[o.ProductID.String()], "order references unknown product")
		assert.InDelta(t, o.UnitPrice*float64(o.Quantity), o.Total, 0.01)
	}
	for _, r := range result.Reviews {
		assert.NotEmpty(t, r.Comment)
		assert.GreaterOrEqual(t, r.Rating, 1.0)
		assert.LessOrEqual(t, r.Rating, 5.0)
	}

	// Store is fed and joinable.
	users, ok := store.Rows(EntityUsers)
	require.True(t, ok)
	assert.Len(t, users, 30)

	totalJoined := 0
	for _, u := range result.Users {
		totalJoined += len(store.Related(EntityUsers, EntityOrders, u.ID.String()))
	}
	assert.Equal(t, len(result.Orders), totalJoined)
}

func TestScenarioBuildResetsStore(t *testing.T) {
	b, store := testScenarioBuilder()
	store.Store("leftover", []models.Record{{"id": "x"}})

	_, err := b.Build(ScenarioConfig{UserCount: 5, ProductCount: 5})
	require.NoError(t, err)

	_, ok := store.Rows("leftover")
	assert.False(t, ok)
}

func TestGenerateOrdersEmptyInputs(t *testing.T) {
	b, _ := testScenarioBuilder()
	products := b.GenerateProducts(3)
	users := b.GenerateUsers(3)

	_, err := b.GenerateOrders(nil, products, "")
	assert.ErrorIs(t, err, apperrors.ErrNoUsers)

	_, err = b.GenerateOrders(users, nil, "")
	assert.ErrorIs(t, err, apperrors.ErrNoProducts)
}

func TestGenerateReviewsEmptyOrders(t *testing.T) {
	b, _ := testScenarioBuilder()
	_, err := b.GenerateReviews(nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrNoOrders)
}

func TestScenarioStream(t *testing.T) {
	b, _ := testScenarioBuilder()

	counts := make(map[string]int)
	for entityType, record := range b.Stream(ScenarioConfig{UserCount: 8, ProductCount: 5}) {
		assert.NotEmpty(t, record["id"])
		counts[entityType]++
	}

	assert.Equal(t, 5, counts[EntityProducts])
	assert.Equal(t, 8, counts[EntityUsers])
	assert.Positive(t, counts[EntityOrders])
}

func TestScenarioStreamEarlyStop(t *testing.T) {
	b, _ := testScenarioBuilder()

	yielded := 0
	for range b.Stream(ScenarioConfig{UserCount: 50, ProductCount: 20}) {
		yielded++
		if yielded == 7 {
			break
		}
	}
	assert.Equal(t, 7, yielded)
}
