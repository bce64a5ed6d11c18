package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimic-data/mimic-engine/pkg/models"
)

func testGenerator() *Generator {
	return NewGenerator(NewRand(42))
}

func TestGenerateMatchesSchema(t *testing.T) {
	g := testGenerator()
	schema := models.NewSchema(
		models.FieldSpec{Name: "id", Type: models.FieldText},
		models.FieldSpec{Name: "full_name", Type: models.FieldText},
		models.FieldSpec{Name: "age", Type: models.FieldInteger},
		models.FieldSpec{Name: "price", Type: models.FieldReal},
		models.FieldSpec{Name: "is_active", Type: models.FieldBoolean},
		models.FieldSpec{Name: "created_at", Type: models.FieldTimestamp},
		models.FieldSpec{Name: "tags", Type: models.FieldList},
		models.FieldSpec{Name: "metadata", Type: models.FieldMap},
	)

	record := g.Generate(schema)
	require.Len(t, record, schema.Len())

	for _, f := range schema.Fields {
		value, ok := record[f.Name]
		require.True(t, ok, "missing field %s", f.Name)
		switch f.Type {
		case models.FieldText:
			assert.IsType(t, "", value)
		case models.FieldInteger:
			assert.IsType(t, 0, value)
		case models.FieldReal:
			assert.IsType(t, 0.0, value)
		case models.FieldBoolean:
			assert.IsType(t, false, value)
		case models.FieldTimestamp:
			assert.IsType(t, time.Time{}, value)
		case models.FieldList:
			assert.IsType(t, []any{}, value)
		case models.FieldMap:
			assert.IsType(t, map[string]any{}, value)
		}
	}
}

func TestAgeAlwaysAdult(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 1000; i++ {
		age := g.GenerateValue(models.FieldInteger, "age").(int)
		assert.GreaterOrEqual(t, age, 18)
		assert.LessOrEqual(t, age, 65)
	}
}

func TestBooleanProbabilities(t *testing.T) {
	tests := []struct {
		field string
		want  float64
	}{
		{"is_active", 0.8},
		{"verified", 0.7},
		{"premium", 0.3},
		{"random_flag", 0.5},
	}

	g := testGenerator()
	const n = 10000
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			trueCount := 0
			for i := 0; i < n; i++ {
				if g.GenerateValue(models.FieldBoolean, tt.field).(bool) {
					trueCount++
				}
			}
			rate := float64(trueCount) / n
			assert.InDelta(t, tt.want, rate, 0.05)
		})
	}
}

func TestTextRulePrecedence(t *testing.T) {
	g := testGenerator()

	// first_name must hit the specific rule, not the generic name rule.
	first := g.GenerateValue(models.FieldText, "first_name").(string)
	assert.NotContains(t, first, " ")

	// username must not be classified as a full name.
	username := g.GenerateValue(models.FieldText, "username").(string)
	assert.NotContains(t, username, " ")
	assert.Contains(t, username, "_")

	full := g.GenerateValue(models.FieldText, "name").(string)
	assert.Contains(t, full, " ")
}

func TestTextSemanticFields(t *testing.T) {
	g := testGenerator()

	email := g.GenerateValue(models.FieldText, "contact_email").(string)
	assert.Contains(t, email, "@")

	phone := g.GenerateValue(models.FieldText, "phone_number").(string)
	assert.True(t, strings.HasPrefix(phone, "08"), "phone %q", phone)

	url := g.GenerateValue(models.FieldText, "profile_url").(string)
	assert.True(t, strings.HasPrefix(url, "https://"))

	// "paid" and "holiday" contain "id" but are not identifier fields.
	word := g.GenerateValue(models.FieldText, "holiday").(string)
	assert.NotEmpty(t, word)
	assert.Len(t, strings.Fields(word), 1)

	id := g.GenerateValue(models.FieldText, "user_id").(string)
	assert.Len(t, id, 26) // ULID

	uid := g.GenerateValue(models.FieldText, "uuid").(string)
	assert.Len(t, uid, 36)
}

func TestIntegerRanges(t *testing.T) {
	tests := []struct {
		field    string
		min, max int
	}{
		{"birth_year", 1990, time.Now().Year()},
		{"month", 1, 12},
		{"day", 1, 28},
		{"quantity", 1, 100},
		{"rating", 1, 5},
		{"percent_complete", 0, 100},
		{"anything", 1, 1000},
	}

	g := testGenerator()
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v := g.GenerateValue(models.FieldInteger, tt.field).(int)
				assert.GreaterOrEqual(t, v, tt.min)
				assert.LessOrEqual(t, v, tt.max)
			}
		})
	}
}

func TestRealRanges(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 200; i++ {
		price := g.GenerateValue(models.FieldReal, "unit_price").(float64)
		assert.GreaterOrEqual(t, price, 10_000.0)
		assert.LessOrEqual(t, price, 5_000_000.0)

		rating := g.GenerateValue(models.FieldReal, "avg_rating").(float64)
		assert.GreaterOrEqual(t, rating, 1.0)
		assert.LessOrEqual(t, rating, 5.0)
	}
}

func TestTimestampRanges(t *testing.T) {
	g := testGenerator()
	now := time.Now()

	for i := 0; i < 200; i++ {
		birth := g.GenerateValue(models.FieldTimestamp, "birth_date").(time.Time)
		age := now.Year() - birth.Year()
		assert.GreaterOrEqual(t, age, 17)
		assert.LessOrEqual(t, age, 67)

		created := g.GenerateValue(models.FieldTimestamp, "created_at").(time.Time)
		assert.True(t, created.Before(now))
		assert.True(t, created.After(now.AddDate(0, 0, -731)))

		updated := g.GenerateValue(models.FieldTimestamp, "updated_at").(time.Time)
		assert.True(t, updated.After(now.AddDate(0, 0, -31)))
	}
}

func TestUnsupportedTypeYieldsNil(t *testing.T) {
	g := testGenerator()
	assert.Nil(t, g.GenerateValue(models.FieldType("blob"), "payload"))
}

func TestGenerateMany(t *testing.T) {
	g := testGenerator()
	schema := models.NewSchema(models.FieldSpec{Name: "name", Type: models.FieldText})
	records := g.GenerateMany(schema, 25)
	require.Len(t, records, 25)
	for _, r := range records {
		assert.Contains(t, r, "name")
	}
}
