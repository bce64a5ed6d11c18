package models

// BehaviorType is a population-level activity archetype assigned once per
// synthetic user and immutable thereafter.
type BehaviorType string

const (
	BehaviorPower    BehaviorType = "power"
	BehaviorRegular  BehaviorType = "regular"
	BehaviorCasual   BehaviorType = "casual"
	BehaviorInactive BehaviorType = "inactive"
)

// PriceTier is a user's price preference bucket.
type PriceTier string

const (
	TierBudget   PriceTier = "budget"
	TierMidRange PriceTier = "mid_range"
	TierPremium  PriceTier = "premium"
)

// BehaviorProfile carries the statistical parameters of one archetype.
type BehaviorProfile struct {
	Type                BehaviorType `json:"type"`
	OrderFrequencyMin   int          `json:"order_frequency_min"`
	OrderFrequencyMax   int          `json:"order_frequency_max"`
	AvgOrderValueMin    float64      `json:"avg_order_value_min"`
	AvgOrderValueMax    float64      `json:"avg_order_value_max"`
	ReviewLikelihood    float64      `json:"review_likelihood"`
	PreferredCategories []string     `json:"preferred_categories"`
	PricePreference     PriceTier    `json:"price_preference"`
	PaymentMethods      []string     `json:"payment_methods"`
	ActiveHours         []int        `json:"active_hours"`
}
