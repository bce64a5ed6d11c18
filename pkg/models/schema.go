// Package models contains domain types for mimic-engine.
package models

// FieldType is the closed set of semantic type tags a schema field can carry.
// The tag is decided at schema construction time; generation dispatches on it
// without any runtime type introspection.
type FieldType string

const (
	FieldText      FieldType = "text"
	FieldInteger   FieldType = "integer"
	FieldReal      FieldType = "real"
	FieldBoolean   FieldType = "boolean"
	FieldTimestamp FieldType = "timestamp"
	FieldList      FieldType = "list"
	FieldMap       FieldType = "map"
)

// Valid reports whether t is one of the supported type tags.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldInteger, FieldReal, FieldBoolean, FieldTimestamp, FieldList, FieldMap:
		return true
	}
	return false
}

// FieldSpec is a single named, typed field in a schema.
type FieldSpec struct {
	Name string    `json:"name" yaml:"name"`
	Type FieldType `json:"type" yaml:"type"`
}

// SchemaSpec is an ordered list of field specs. Field names are unique within
// a schema. Order is preserved for deterministic column ordering in exports;
// it carries no generation semantics.
type SchemaSpec struct {
	Fields []FieldSpec `json:"fields" yaml:"fields"`
}

// NewSchema builds a schema from field specs in the given order.
func NewSchema(fields ...FieldSpec) SchemaSpec {
	return SchemaSpec{Fields: fields}
}

// FieldNames returns the field names in schema order.
func (s SchemaSpec) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of fields in the schema.
func (s SchemaSpec) Len() int {
	return len(s.Fields)
}

// Record is one generated row: a mapping from field name to a value whose
// runtime type matches the field's declared tag. A record has no identity
// beyond its field values unless the schema includes an explicit id field.
type Record map[string]any
