package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimic-data/mimic-engine/pkg/models"
)

func TestCreateTableDDL(t *testing.T) {
	schema := models.NewSchema(
		models.FieldSpec{Name: "id", Type: models.FieldText},
		models.FieldSpec{Name: "age", Type: models.FieldInteger},
		models.FieldSpec{Name: "price", Type: models.FieldReal},
		models.FieldSpec{Name: "is_active", Type: models.FieldBoolean},
		models.FieldSpec{Name: "created_at", Type: models.FieldTimestamp},
		models.FieldSpec{Name: "tags", Type: models.FieldList},
	)

	ddl, err := CreateTableDDL("customers", schema)
	require.NoError(t, err)
	assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "customers"`)
	assert.Contains(t, ddl, `"id" TEXT`)
	assert.Contains(t, ddl, `"age" BIGINT`)
	assert.Contains(t, ddl, `"price" DOUBLE PRECISION`)
	assert.Contains(t, ddl, `"is_active" BOOLEAN`)
	assert.Contains(t, ddl, `"created_at" TIMESTAMPTZ`)
	assert.Contains(t, ddl, `"tags" JSONB`)
}

func TestCreateTableDDLUnknownType(t *testing.T) {
	schema := models.NewSchema(models.FieldSpec{Name: "x", Type: models.FieldType("blob")})
	_, err := CreateTableDDL("t", schema)
	assert.Error(t, err)
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, `"users"`, QuoteIdentifier("users"))
	assert.Equal(t, `"we""ird"`, QuoteIdentifier(`we"ird`))
}
