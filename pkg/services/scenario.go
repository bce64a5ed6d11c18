package services

import (
	"fmt"
	"iter"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
	"github.com/mimic-data/mimic-engine/pkg/datatables"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

// Entity type names registered in the relationship store by a scenario run.
const (
	EntityUsers    = "users"
	EntityProducts = "products"
	EntityOrders   = "orders"
	EntityReviews  = "reviews"
)

// ScenarioConfig configures one e-commerce scenario run.
type ScenarioConfig struct {
	UserCount       int    `json:"user_count"`
	ProductCount    int    `json:"product_count"`
	SeasonalPattern string `json:"seasonal_pattern"`
}

// ScenarioResult is the fully materialized output of a scenario run.
type ScenarioResult struct {
	Users    []models.User    `json:"users"`
	Products []models.Product `json:"products"`
	Orders   []models.Order   `json:"orders"`
	Reviews  []models.Review  `json:"reviews"`
}

// ScenarioBuilder sequences user, product, order and review generation and
// feeds the relationship store. The store is reset at the start of every
// build; exactly one pipeline at a time owns the builder.
type ScenarioBuilder struct {
	behavior *BehaviorEngine
	store    *RelationshipStore
	logger   *zap.Logger
	rng      *rand.Rand
	now      func() time.Time
}

// NewScenarioBuilder wires a builder over the shared random source.
func NewScenarioBuilder(rng *rand.Rand, behavior *BehaviorEngine, store *RelationshipStore, logger *zap.Logger) *ScenarioBuilder {
	if rng == nil {
		rng = NewRand(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioBuilder{
		behavior: behavior,
		store:    store,
		logger:   logger,
		rng:      rng,
		now:      time.Now,
	}
}

// Build runs the full scenario and registers every collection plus the join
// relationships in the store.
func (b *ScenarioBuilder) Build(cfg ScenarioConfig) (*ScenarioResult, error) {
	userCount := cfg.UserCount
	if userCount <= 0 {
		userCount = 10
	}
	productCount := cfg.ProductCount
	if productCount <= 0 {
		productCount = 20
	}

	b.store.Reset()

	users := b.GenerateUsers(userCount)
	products := b.GenerateProducts(productCount)
	orders, err := b.GenerateOrders(users, products, cfg.SeasonalPattern)
	if err != nil {
		return nil, fmt.Errorf("generate orders: %w", err)
	}
	reviews := []models.Review{}
	if len(orders) > 0 {
		reviews, err = b.GenerateReviews(orders, users)
		if err != nil {
			return nil, fmt.Errorf("generate reviews: %w", err)
		}
	}

	b.store.Store(EntityUsers, entityRecords(users))
	b.store.Store(EntityProducts, entityRecords(products))
	b.store.Store(EntityOrders, entityRecords(orders))
	b.store.Store(EntityReviews, entityRecords(reviews))
	b.store.DeclareRelationship(EntityUsers, EntityOrders, "id", "user_id")
	b.store.DeclareRelationship(EntityProducts, EntityOrders, "id", "product_id")
	b.store.DeclareRelationship(EntityOrders, EntityReviews, "id", "order_id")
	b.store.DeclareRelationship(EntityUsers, EntityReviews, "id", "user_id")

	b.logger.Info("scenario built",
		zap.Int("users", len(users)),
		zap.Int("products", len(products)),
		zap.Int("orders", len(orders)),
		zap.Int("reviews", len(reviews)),
		zap.String("seasonal_pattern", cfg.SeasonalPattern))

	return &ScenarioResult{Users: users, Products: products, Orders: orders, Reviews: reviews}, nil
}

// GenerateUsers creates n users, each with an immutable behavior archetype.
func (b *ScenarioBuilder) GenerateUsers(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		first := pick(b.rng, datatables.FirstNames)
		last := pick(b.rng, datatables.LastNames)
		users = append(users, models.User{
			ID:           uuid.New(),
			Name:         first + " " + last,
			Email:        fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), i+1, pick(b.rng, datatables.EmailDomains)),
			Phone:        pick(b.rng, datatables.PhonePrefixes) + fmt.Sprintf("%08d", b.rng.Intn(100_000_000)),
			City:         pick(b.rng, datatables.Cities),
			Address:      fmt.Sprintf("%s No. %d", pick(b.rng, datatables.Streets), intBetween(b.rng, 1, 200)),
			Behavior:     b.behavior.BehaviorType(),
			RegisteredAt: b.now().AddDate(0, 0, -intBetween(b.rng, 1, 730)),
		})
	}
	return users
}

// GenerateProducts creates n catalog items with tier-appropriate prices.
func (b *ScenarioBuilder) GenerateProducts(n int) []models.Product {
	tiers := []models.PriceTier{models.TierBudget, models.TierMidRange, models.TierPremium}
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		category := pick(b.rng, datatables.Categories)
		tier := pick(b.rng, tiers)
		products = append(products, models.Product{
			ID:       uuid.New(),
			Name:     pick(b.rng, datatables.ProductAdjectives) + " " + pick(b.rng, datatables.ProductNouns),
			Category: category,
			Brand:    pick(b.rng, datatables.Brands),
			Price:    b.behavior.RealisticPrice(category, tier),
			Stock:    intBetween(b.rng, 0, 500),
			Rating:   round2(floatBetween(b.rng, 3.0, 5.0)),
		})
	}
	return products
}

// GenerateOrders creates orders for every user according to their archetype.
// Each user gets a batch date in the past year; the archetype's order
// frequency is scaled by the seasonal multiplier at that date, and the
// resulting orders land within two weeks of it at one of the user's active
// hours.
func (b *ScenarioBuilder) GenerateOrders(users []models.User, products []models.Product, seasonalPattern string) ([]models.Order, error) {
	if len(users) == 0 {
		return nil, apperrors.ErrNoUsers
	}
	if len(products) == 0 {
		return nil, apperrors.ErrNoProducts
	}

	var orders []models.Order
	for _, user := range users {
		profile := b.behavior.Profile(user.Behavior)
		batchDate := b.now().AddDate(0, 0, -intBetween(b.rng, 0, 364))
		frequency := b.behavior.OrderFrequency(user.Behavior)
		count := int(math.Round(float64(frequency) * b.behavior.SeasonalMultiplier(batchDate, seasonalPattern)))

		for i := 0; i < count; i++ {
			product := b.pickProduct(products, profile)
			quantity := intBetween(b.rng, 1, 3)
			orderedAt := time.Date(
				batchDate.Year(), batchDate.Month(), batchDate.Day(),
				pick(b.rng, profile.ActiveHours), intBetween(b.rng, 0, 59), 0, 0, time.Local,
			).AddDate(0, 0, intBetween(b.rng, -14, 14))
			orders = append(orders, models.Order{
				ID:            uuid.New(),
				UserID:        user.ID,
				ProductID:     product.ID,
				Quantity:      quantity,
				UnitPrice:     product.Price,
				Total:         round2(product.Price * float64(quantity)),
				PaymentMethod: pick(b.rng, profile.PaymentMethods),
				Status:        pick(b.rng, datatables.OrderStatuses),
				OrderedAt:     orderedAt,
			})
		}
	}
	return orders, nil
}

// pickProduct prefers the profile's categories, falling back to the whole
// catalog when the preference misses or no product matches.
func (b *ScenarioBuilder) pickProduct(products []models.Product, profile models.BehaviorProfile) models.Product {
	if b.rng.Float64() < 0.7 {
		var preferred []models.Product
		for _, p := range products {
			for _, c := range profile.PreferredCategories {
				if p.Category == c {
					preferred = append(preferred, p)
					break
				}
			}
		}
		if len(preferred) > 0 {
			return pick(b.rng, preferred)
		}
	}
	return pick(b.rng, products)
}

// GenerateReviews creates a review for an order whenever the ordering user's
// review-likelihood trial produces a comment.
func (b *ScenarioBuilder) GenerateReviews(orders []models.Order, users []models.User) ([]models.Review, error) {
	if len(orders) == 0 {
		return nil, apperrors.ErrNoOrders
	}

	behaviorByUser := make(map[uuid.UUID]models.BehaviorType, len(users))
	for _, u := range users {
		behaviorByUser[u.ID] = u.Behavior
	}

	reviews := []models.Review{}
	for _, order := range orders {
		rating := b.randomRating()
		comment := b.behavior.ReviewComment(behaviorByUser[order.UserID], rating)
		if comment == "" {
			continue
		}
		reviews = append(reviews, models.Review{
			ID:        uuid.New(),
			UserID:    order.UserID,
			ProductID: order.ProductID,
			OrderID:   order.ID,
			Rating:    rating,
			Comment:   comment,
			CreatedAt: order.OrderedAt.AddDate(0, 0, intBetween(b.rng, 1, 14)),
		})
	}
	return reviews, nil
}

// randomRating skews positive the way marketplace ratings do.
func (b *ScenarioBuilder) randomRating() float64 {
	r := b.rng.Float64()
	switch {
	case r < 0.40:
		return 5.0
	case r < 0.70:
		return 4.0
	case r < 0.85:
		return 3.0
	case r < 0.95:
		return 2.0
	default:
		return 1.0
	}
}

// Stream produces the scenario incrementally as (entityType, record) pairs in
// dependency order: the full catalog first, then each user followed by that
// user's orders and reviews. The store is not touched; the consumer owns
// every yielded record, and breaking out of the loop leaves no dangling
// state.
func (b *ScenarioBuilder) Stream(cfg ScenarioConfig) iter.Seq2[string, models.Record] {
	userCount := cfg.UserCount
	if userCount <= 0 {
		userCount = 10
	}
	productCount := cfg.ProductCount
	if productCount <= 0 {
		productCount = 20
	}

	return func(yield func(string, models.Record) bool) {
		products := b.GenerateProducts(productCount)
		for _, p := range products {
			if !yield(EntityProducts, p.ToMap()) {
				return
			}
		}
		for i := 0; i < userCount; i++ {
			user := b.GenerateUsers(1)[0]
			if !yield(EntityUsers, user.ToMap()) {
				return
			}
			orders, err := b.GenerateOrders([]models.User{user}, products, cfg.SeasonalPattern)
			if err != nil {
				return
			}
			for _, o := range orders {
				if !yield(EntityOrders, o.ToMap()) {
					return
				}
			}
			reviews, err := b.GenerateReviews(orders, []models.User{user})
			if err != nil {
				continue
			}
			for _, r := range reviews {
				if !yield(EntityReviews, r.ToMap()) {
					return
				}
			}
		}
	}
}

// entityRecords projects a slice of typed entities onto flat records.
func entityRecords[T interface{ ToMap() models.Record }](entities []T) []models.Record {
	records := make([]models.Record, len(entities))
	for i, e := range entities {
		records[i] = e.ToMap()
	}
	return records
}
