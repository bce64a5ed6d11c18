package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

func TestParseSequenceForm(t *testing.T) {
	f, err := Parse([]byte(`
name: customers
fields:
  - name: id
    type: text
  - name: age
    type: integer
`))
	require.NoError(t, err)
	assert.Equal(t, "customers", f.Name)
	require.Len(t, f.Fields.Fields, 2)
	assert.Equal(t, models.FieldText, f.Fields.Fields[0].Type)
	assert.Equal(t, models.FieldInteger, f.Fields.Fields[1].Type)
}

func TestParseMappingFormPreservesOrder(t *testing.T) {
	f, err := Parse([]byte(`
name: events
fields:
  zulu: text
  alpha: integer
  mike: boolean
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, f.Fields.FieldNames())
}

func TestParseRejectsBadSchemas(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown type", "fields:\n  id: varchar\n"},
		{"duplicate field", "fields:\n  - name: id\n    type: text\n  - name: id\n    type: text\n"},
		{"no fields", "name: empty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: users\nfields:\n  email: text\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "users", f.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseJSONArrayForm(t *testing.T) {
	spec, err := ParseJSON([]byte(`[{"name":"id","type":"text"},{"name":"price","type":"real"}]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "price"}, spec.FieldNames())
}

func TestParseJSONObjectFormPreservesOrder(t *testing.T) {
	spec, err := ParseJSON([]byte(`{"zulu":"text","alpha":"integer","mike":"boolean"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, spec.FieldNames())
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"id":"varchar"}`))
	assert.Error(t, err)

	_, err = ParseJSON([]byte(`{}`))
	assert.ErrorIs(t, err, apperrors.ErrInvalidSchema)

	_, err = ParseJSON([]byte(`"id"`))
	assert.Error(t, err)
}
