package services

import (
	"math/rand"
	"time"

	"github.com/mimic-data/mimic-engine/pkg/datatables"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

// Archetype parameter tables. Threshold order is power < regular < casual <
// inactive: power users are rarest, inactive most common.
var behaviorProfiles = map[models.BehaviorType]models.BehaviorProfile{
	models.BehaviorPower: {
		Type:                models.BehaviorPower,
		OrderFrequencyMin:   15,
		OrderFrequencyMax:   30,
		AvgOrderValueMin:    500_000,
		AvgOrderValueMax:    2_000_000,
		ReviewLikelihood:    0.8,
		PreferredCategories: []string{"electronics", "fashion", "home"},
		PricePreference:     models.TierPremium,
		PaymentMethods:      []string{"credit_card", "bank_transfer", "gopay"},
		ActiveHours:         []int{9, 10, 11, 12, 19, 20, 21, 22},
	},
	models.BehaviorRegular: {
		Type:                models.BehaviorRegular,
		OrderFrequencyMin:   8,
		OrderFrequencyMax:   15,
		AvgOrderValueMin:    200_000,
		AvgOrderValueMax:    800_000,
		ReviewLikelihood:    0.5,
		PreferredCategories: []string{"fashion", "food", "health", "books"},
		PricePreference:     models.TierMidRange,
		PaymentMethods:      []string{"debit_card", "bank_transfer", "ovo", "dana"},
		ActiveHours:         []int{12, 13, 18, 19, 20, 21},
	},
	models.BehaviorCasual: {
		Type:                models.BehaviorCasual,
		OrderFrequencyMin:   2,
		OrderFrequencyMax:   8,
		AvgOrderValueMin:    50_000,
		AvgOrderValueMax:    300_000,
		ReviewLikelihood:    0.3,
		PreferredCategories: []string{"food", "toys", "sports"},
		PricePreference:     models.TierBudget,
		PaymentMethods:      []string{"cod", "ovo", "dana"},
		ActiveHours:         []int{19, 20, 21, 22, 23},
	},
	models.BehaviorInactive: {
		Type:                models.BehaviorInactive,
		OrderFrequencyMin:   0,
		OrderFrequencyMax:   2,
		AvgOrderValueMin:    25_000,
		AvgOrderValueMax:    150_000,
		ReviewLikelihood:    0.1,
		PreferredCategories: []string{"food"},
		PricePreference:     models.TierBudget,
		PaymentMethods:      []string{"cod"},
		ActiveHours:         []int{20, 21},
	},
}

// Cumulative draw thresholds for behaviorType.
const (
	powerThreshold   = 0.05
	regularThreshold = 0.20
	casualThreshold  = 0.60
)

// Seasonal pattern names understood by SeasonalMultiplier. Unknown names
// yield multiplier 1.0.
const (
	SeasonRamadan   = "ramadan"
	SeasonChristmas = "christmas"
	SeasonPayday    = "payday"
)

// BehaviorEngine assigns behavior archetypes and derives order frequency,
// prices, calendar multipliers and review comments from the archetype tables.
type BehaviorEngine struct {
	rng *rand.Rand
}

// NewBehaviorEngine builds an engine on the given random source. A nil rng
// gets a time-seeded source.
func NewBehaviorEngine(rng *rand.Rand) *BehaviorEngine {
	if rng == nil {
		rng = NewRand(0)
	}
	return &BehaviorEngine{rng: rng}
}

// BehaviorType draws an archetype by cumulative-probability thresholds
// 0.05 / 0.20 / 0.60 / 1.0 over power / regular / casual / inactive.
func (e *BehaviorEngine) BehaviorType() models.BehaviorType {
	r := e.rng.Float64()
	switch {
	case r < powerThreshold:
		return models.BehaviorPower
	case r < regularThreshold:
		return models.BehaviorRegular
	case r < casualThreshold:
		return models.BehaviorCasual
	default:
		return models.BehaviorInactive
	}
}

// Profile returns the parameter table for an archetype. An unknown archetype
// resolves to the casual profile; it is an extensibility point, not a fault.
func (e *BehaviorEngine) Profile(t models.BehaviorType) models.BehaviorProfile {
	if p, ok := behaviorProfiles[t]; ok {
		return p
	}
	return behaviorProfiles[models.BehaviorCasual]
}

// OrderFrequency samples a monthly order count uniformly within the
// archetype's registered range. Unknown archetypes fall back to uniform(0,1).
func (e *BehaviorEngine) OrderFrequency(t models.BehaviorType) int {
	p, ok := behaviorProfiles[t]
	if !ok {
		return intBetween(e.rng, 0, 1)
	}
	return intBetween(e.rng, p.OrderFrequencyMin, p.OrderFrequencyMax)
}

// RealisticPrice looks up the base price for (tier, category) and applies a
// +/-15% multiplicative jitter. Unknown combinations use the default base.
func (e *BehaviorEngine) RealisticPrice(category string, tier models.PriceTier) float64 {
	base := float64(datatables.DefaultBasePrice)
	if byCategory, ok := datatables.BasePrices[tier]; ok {
		if b, ok := byCategory[category]; ok {
			base = b
		}
	}
	jitter := 1 + (e.rng.Float64()-0.5)*0.3
	return round2(base * jitter)
}

// SeasonalMultiplier maps a calendar date to a demand multiplier under the
// named pattern.
func (e *BehaviorEngine) SeasonalMultiplier(date time.Time, pattern string) float64 {
	switch pattern {
	case SeasonRamadan:
		// Fasting-month demand build-up, then the post-Lebaran shopping spike.
		switch date.Month() {
		case time.March, time.April:
			return 1.5
		case time.May:
			return 2.0
		}
		return 1.0
	case SeasonChristmas:
		switch date.Month() {
		case time.December:
			return 1.8
		case time.January:
			// Post-holiday slump.
			return 0.7
		}
		return 1.0
	case SeasonPayday:
		day := date.Day()
		switch {
		case day >= 25:
			return 1.3
		case day <= 5:
			return 1.2
		}
		return 1.0
	default:
		return 1.0
	}
}

// ReviewComment decides by a Bernoulli trial against the archetype's review
// likelihood whether a comment is produced at all, then picks text by rating
// band. No comment means an empty string, never a sentinel; callers check for
// emptiness, not absence.
func (e *BehaviorEngine) ReviewComment(t models.BehaviorType, rating float64) string {
	p := e.Profile(t)
	if e.rng.Float64() >= p.ReviewLikelihood {
		return ""
	}
	return e.commentForRating(rating)
}

func (e *BehaviorEngine) commentForRating(rating float64) string {
	switch {
	case rating >= 4.0:
		return pick(e.rng, datatables.PositiveComments)
	case rating >= 2.0:
		return datatables.MildNegativeComment
	default:
		return datatables.StrongNegativeComment
	}
}
