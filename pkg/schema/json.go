package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mimic-data/mimic-engine/pkg/models"
)

// ParseJSON decodes a schema from a JSON payload. Two shapes are accepted:
// an array of {"name": ..., "type": ...} entries, or the object shorthand
// {"field": "type", ...}. The object form is decoded token by token because
// encoding/json map decoding would lose the declared field order.
func ParseJSON(data []byte) (models.SchemaSpec, error) {
	var spec models.SchemaSpec

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return spec, Validate(spec)
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &spec.Fields); err != nil {
			return spec, fmt.Errorf("decode schema array: %w", err)
		}
		return spec, Validate(spec)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return spec, fmt.Errorf("decode schema object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return spec, fmt.Errorf("schema must be a JSON object or array")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return spec, fmt.Errorf("decode schema key: %w", err)
		}
		name := keyTok.(string)

		var typeTag string
		if err := dec.Decode(&typeTag); err != nil {
			return spec, fmt.Errorf("decode type of field %q: %w", name, err)
		}
		spec.Fields = append(spec.Fields, models.FieldSpec{
			Name: name,
			Type: models.FieldType(typeTag),
		})
	}
	return spec, Validate(spec)
}
