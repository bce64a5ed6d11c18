package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/mimic-data/mimic-engine/pkg/datatables"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

// Generator infers a plausible value distribution for each schema field from
// its declared type and name. Inference is an ordered list of
// (predicate, generator) rules per type, evaluated in registration order:
// more specific patterns (e.g. "first_name") are registered before generic
// ones (e.g. "name"), and the first match wins. Reordering the rule lists
// changes classification, so new rules must be inserted with that in mind.
type Generator struct {
	rng     *rand.Rand
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewGenerator builds a Generator on the given random source. A nil rng gets
// a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = NewRand(0)
	}
	return &Generator{
		rng:     rng,
		entropy: ulid.Monotonic(rng, 0),
		now:     time.Now,
	}
}

// Generate produces one record for the schema. Every declared type has a
// default branch, so generation never fails; an unsupported type tag yields a
// nil value for that field.
func (g *Generator) Generate(schema models.SchemaSpec) models.Record {
	record := make(models.Record, schema.Len())
	for _, f := range schema.Fields {
		record[f.Name] = g.GenerateValue(f.Type, f.Name)
	}
	return record
}

// GenerateMany produces n records.
func (g *Generator) GenerateMany(schema models.SchemaSpec, n int) []models.Record {
	records := make([]models.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, g.Generate(schema))
	}
	return records
}

// GenerateValue picks a value for a single (type, field name) pair.
func (g *Generator) GenerateValue(fieldType models.FieldType, fieldName string) any {
	name := strings.ToLower(fieldName)
	switch fieldType {
	case models.FieldText:
		return g.applyRules(textRules, name, g.loremWord)
	case models.FieldInteger:
		return g.applyRules(integerRules, name, func() any { return intBetween(g.rng, 1, 1000) })
	case models.FieldReal:
		return g.applyRules(realRules, name, func() any { return round2(floatBetween(g.rng, 0, 1000)) })
	case models.FieldBoolean:
		return g.applyRules(booleanRules, name, func() any { return g.bernoulli(0.5) })
	case models.FieldTimestamp:
		return g.applyRules(timestampRules, name, func() any { return g.daysAgo(0, 365) })
	case models.FieldList:
		return g.randomList()
	case models.FieldMap:
		return g.randomMap()
	default:
		return nil
	}
}

// fieldRule pairs a field-name predicate with a value generator. Rule slices
// are evaluated front to back; the first matching rule wins.
type fieldRule struct {
	match func(name string) bool
	gen   func(g *Generator) any
}

func contains(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

func (g *Generator) applyRules(rules []fieldRule, name string, fallback func() any) any {
	for _, r := range rules {
		if r.match(name) {
			return r.gen(g)
		}
	}
	return fallback()
}

// isIDField matches identifier fields without tripping on names that merely
// contain "id" as a substring ("paid", "holiday").
func isIDField(name string) bool {
	return name == "id" || strings.HasSuffix(name, "_id")
}

var textRules = []fieldRule{
	{contains("email"), func(g *Generator) any { return g.randomEmail() }},
	{contains("uuid"), func(g *Generator) any { return uuid.NewString() }},
	{isIDField, func(g *Generator) any { return g.newULID() }},
	{contains("first_name", "firstname"), func(g *Generator) any { return pick(g.rng, datatables.FirstNames) }},
	{contains("last_name", "lastname"), func(g *Generator) any { return pick(g.rng, datatables.LastNames) }},
	{contains("username", "user_name"), func(g *Generator) any { return g.randomUsername() }},
	{contains("name"), func(g *Generator) any { return g.randomFullName() }},
	{contains("address"), func(g *Generator) any { return g.randomAddress() }},
	{contains("phone"), func(g *Generator) any { return g.randomPhone() }},
	{contains("city"), func(g *Generator) any { return pick(g.rng, datatables.Cities) }},
	{contains("country"), func(g *Generator) any { return pick(g.rng, datatables.Countries) }},
	{contains("company"), func(g *Generator) any { return pick(g.rng, datatables.Companies) }},
	{contains("title"), func(g *Generator) any { return pick(g.rng, datatables.JobTitles) }},
	{contains("description", "bio"), func(g *Generator) any { return g.randomSentence(6, 12) }},
	{contains("url", "website", "link"), func(g *Generator) any { return g.randomURL() }},
	{contains("color", "colour"), func(g *Generator) any { return pick(g.rng, datatables.Colors) }},
	{contains("gender"), func(g *Generator) any { return pick(g.rng, datatables.Genders) }},
	{contains("status"), func(g *Generator) any { return pick(g.rng, datatables.Statuses) }},
	{contains("currency"), func(g *Generator) any { return pick(g.rng, datatables.CurrencyCodes) }},
}

var integerRules = []fieldRule{
	{contains("age"), func(g *Generator) any { return intBetween(g.rng, 18, 65) }},
	{contains("year"), func(g *Generator) any { return intBetween(g.rng, 1990, g.now().Year()) }},
	{contains("month"), func(g *Generator) any { return intBetween(g.rng, 1, 12) }},
	{contains("day"), func(g *Generator) any { return intBetween(g.rng, 1, 28) }},
	{contains("quantity", "count", "qty"), func(g *Generator) any { return intBetween(g.rng, 1, 100) }},
	{contains("score", "rating"), func(g *Generator) any { return intBetween(g.rng, 1, 5) }},
	{contains("percent"), func(g *Generator) any { return intBetween(g.rng, 0, 100) }},
}

var realRules = []fieldRule{
	{contains("price", "amount", "cost"), func(g *Generator) any { return round2(floatBetween(g.rng, 10_000, 5_000_000)) }},
	{contains("rating", "score"), func(g *Generator) any { return round2(floatBetween(g.rng, 1.0, 5.0)) }},
	{contains("percent"), func(g *Generator) any { return round2(floatBetween(g.rng, 0.0, 100.0)) }},
	{contains("weight"), func(g *Generator) any { return round2(floatBetween(g.rng, 0.5, 100.0)) }},
	{contains("height"), func(g *Generator) any { return round2(floatBetween(g.rng, 140.0, 200.0)) }},
}

var booleanRules = []fieldRule{
	{contains("active", "enabled"), func(g *Generator) any { return g.bernoulli(0.8) }},
	{contains("verified", "confirmed"), func(g *Generator) any { return g.bernoulli(0.7) }},
	{contains("premium", "paid"), func(g *Generator) any { return g.bernoulli(0.3) }},
}

var timestampRules = []fieldRule{
	{contains("birth", "dob"), func(g *Generator) any { return g.randomBirthDate() }},
	{contains("created", "joined", "registered"), func(g *Generator) any { return g.daysAgo(1, 730) }},
	{contains("updated", "modified", "last"), func(g *Generator) any { return g.daysAgo(0, 30) }},
}

func (g *Generator) bernoulli(p float64) bool {
	return g.rng.Float64() < p
}

func (g *Generator) newULID() string {
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}

func (g *Generator) loremWord() any {
	return pick(g.rng, datatables.LoremWords)
}

func (g *Generator) randomFullName() string {
	return pick(g.rng, datatables.FirstNames) + " " + pick(g.rng, datatables.LastNames)
}

func (g *Generator) randomEmail() string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(pick(g.rng, datatables.FirstNames)),
		strings.ToLower(pick(g.rng, datatables.LastNames)),
		intBetween(g.rng, 1, 999),
		pick(g.rng, datatables.EmailDomains),
	)
}

func (g *Generator) randomUsername() string {
	return fmt.Sprintf("%s_%s%d",
		strings.ToLower(pick(g.rng, datatables.FirstNames)),
		strings.ToLower(pick(g.rng, datatables.LastNames)),
		intBetween(g.rng, 1, 99),
	)
}

func (g *Generator) randomAddress() string {
	return fmt.Sprintf("%s No. %d, %s",
		pick(g.rng, datatables.Streets),
		intBetween(g.rng, 1, 200),
		pick(g.rng, datatables.Cities),
	)
}

func (g *Generator) randomPhone() string {
	digits := make([]byte, intBetween(g.rng, 7, 8))
	for i := range digits {
		digits[i] = byte('0' + g.rng.Intn(10))
	}
	return pick(g.rng, datatables.PhonePrefixes) + string(digits)
}

func (g *Generator) randomURL() string {
	return fmt.Sprintf("https://www.%s%d.com", pick(g.rng, datatables.LoremWords), intBetween(g.rng, 1, 999))
}

func (g *Generator) randomSentence(minWords, maxWords int) string {
	words := make([]string, intBetween(g.rng, minWords, maxWords))
	for i := range words {
		words[i] = pick(g.rng, datatables.LoremWords)
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func (g *Generator) randomList() []any {
	items := make([]any, intBetween(g.rng, 1, 5))
	for i := range items {
		items[i] = pick(g.rng, datatables.LoremWords)
	}
	return items
}

func (g *Generator) randomMap() map[string]any {
	return map[string]any{
		"tag":   pick(g.rng, datatables.LoremWords),
		"score": intBetween(g.rng, 1, 100),
	}
}

// daysAgo returns a timestamp between minDays and maxDays in the past.
func (g *Generator) daysAgo(minDays, maxDays int) time.Time {
	return g.now().AddDate(0, 0, -intBetween(g.rng, minDays, maxDays))
}

// randomBirthDate samples an adult age in [18, 65] and produces a date in the
// corresponding birth year.
func (g *Generator) randomBirthDate() time.Time {
	age := intBetween(g.rng, 18, 65)
	return g.now().AddDate(-age, 0, -intBetween(g.rng, 0, 364))
}
