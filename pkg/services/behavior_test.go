package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mimic-data/mimic-engine/pkg/datatables"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

func testBehaviorEngine() *BehaviorEngine {
	return NewBehaviorEngine(NewRand(7))
}

func TestBehaviorTypeDistribution(t *testing.T) {
	e := testBehaviorEngine()
	const n = 10000
	counts := make(map[models.BehaviorType]int)
	for i := 0; i < n; i++ {
		counts[e.BehaviorType()]++
	}

	assert.InDelta(t, 0.05, float64(counts[models.BehaviorPower])/n, 0.03)
	assert.InDelta(t, 0.15, float64(counts[models.BehaviorRegular])/n, 0.03)
	assert.InDelta(t, 0.40, float64(counts[models.BehaviorCasual])/n, 0.03)
	assert.InDelta(t, 0.40, float64(counts[models.BehaviorInactive])/n, 0.03)
}

func TestOrderFrequencyWithinProfileRange(t *testing.T) {
	e := testBehaviorEngine()
	for behaviorType, profile := range behaviorProfiles {
		for i := 0; i < 200; i++ {
			freq := e.OrderFrequency(behaviorType)
			assert.GreaterOrEqual(t, freq, profile.OrderFrequencyMin)
			assert.LessOrEqual(t, freq, profile.OrderFrequencyMax)
		}
	}
}

func TestOrderFrequencyUnknownProfile(t *testing.T) {
	e := testBehaviorEngine()
	for i := 0; i < 100; i++ {
		freq := e.OrderFrequency(models.BehaviorType("bot"))
		assert.GreaterOrEqual(t, freq, 0)
		assert.LessOrEqual(t, freq, 1)
	}
}

func TestProfileUnknownFallsBackToCasual(t *testing.T) {
	e := testBehaviorEngine()
	p := e.Profile(models.BehaviorType("bot"))
	assert.Equal(t, models.BehaviorCasual, p.Type)
}

func TestRealisticPriceJitterBounds(t *testing.T) {
	e := testBehaviorEngine()
	base := datatables.BasePrices[models.TierMidRange]["electronics"]
	for i := 0; i < 500; i++ {
		price := e.RealisticPrice("electronics", models.TierMidRange)
		assert.GreaterOrEqual(t, price, base*0.85)
		assert.LessOrEqual(t, price, base*1.15)
	}
}

func TestRealisticPriceUnknownCategory(t *testing.T) {
	e := testBehaviorEngine()
	price := e.RealisticPrice("submarines", models.TierPremium)
	assert.GreaterOrEqual(t, price, datatables.DefaultBasePrice*0.85)
	assert.LessOrEqual(t, price, datatables.DefaultBasePrice*1.15)
}

func TestSeasonalMultiplier(t *testing.T) {
	date := func(m time.Month, d int) time.Time {
		return time.Date(2024, m, d, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		pattern string
		date    time.Time
		want    float64
	}{
		{"ramadan build-up", SeasonRamadan, date(time.March, 15), 1.5},
		{"ramadan second month", SeasonRamadan, date(time.April, 2), 1.5},
		{"post-lebaran spike", SeasonRamadan, date(time.May, 10), 2.0},
		{"ramadan off-season", SeasonRamadan, date(time.September, 1), 1.0},
		{"christmas month", SeasonChristmas, date(time.December, 20), 1.8},
		{"january slump", SeasonChristmas, date(time.January, 10), 0.7},
		{"christmas off-season", SeasonChristmas, date(time.June, 1), 1.0},
		{"payday end of month", SeasonPayday, date(time.July, 28), 1.3},
		{"payday early month", SeasonPayday, date(time.July, 3), 1.2},
		{"mid month", SeasonPayday, date(time.July, 15), 1.0},
		{"unknown pattern", "solstice", date(time.December, 25), 1.0},
	}

	e := testBehaviorEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.SeasonalMultiplier(tt.date, tt.pattern))
		})
	}
}

func TestReviewCommentRatingBands(t *testing.T) {
	e := testBehaviorEngine()

	// Power users review 80% of the time; sample until comments appear.
	sawPositive, sawMild, sawStrong := false, false, false
	for i := 0; i < 200; i++ {
		if c := e.ReviewComment(models.BehaviorPower, 4.5); c != "" {
			assert.Contains(t, datatables.PositiveComments, c)
			sawPositive = true
		}
		if c := e.ReviewComment(models.BehaviorPower, 3.0); c != "" {
			assert.Equal(t, datatables.MildNegativeComment, c)
			sawMild = true
		}
		if c := e.ReviewComment(models.BehaviorPower, 1.0); c != "" {
			assert.Equal(t, datatables.StrongNegativeComment, c)
			sawStrong = true
		}
	}
	assert.True(t, sawPositive)
	assert.True(t, sawMild)
	assert.True(t, sawStrong)
}

func TestReviewCommentLikelihood(t *testing.T) {
	e := testBehaviorEngine()
	const n = 10000
	commented := 0
	for i := 0; i < n; i++ {
		if e.ReviewComment(models.BehaviorPower, 5.0) != "" {
			commented++
		}
	}
	assert.InDelta(t, 0.8, float64(commented)/n, 0.05)
}
