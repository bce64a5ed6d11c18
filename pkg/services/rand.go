package services

import (
	"math"
	"math/rand"
	"time"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
)

// NewRand builds the shared random source. Seed 0 means time-based seeding;
// any other value makes generation reproducible. Non-crypto randomness is
// fine for test data.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Choice picks one element uniformly from pool. An empty pool is an invalid
// configuration, reported immediately rather than substituted.
func Choice[T any](rng *rand.Rand, pool []T) (T, error) {
	var zero T
	if len(pool) == 0 {
		return zero, apperrors.ErrEmptyPool
	}
	return pool[rng.Intn(len(pool))], nil
}

// pick is Choice for the static lookup tables, which are never empty.
func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

// intBetween samples uniformly from [min, max] inclusive.
func intBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// floatBetween samples uniformly from [min, max).
func floatBetween(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// boxMuller draws one standard-normal value via the Box-Muller transform.
func boxMuller(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
