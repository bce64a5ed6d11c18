// Package schema loads schema definitions from YAML files and JSON request
// payloads, preserving field order in both.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

// File is a schema definition file. Fields may be written either as a
// sequence of {name, type} entries or as a mapping of name to type; mapping
// order is preserved as declared in the file.
type File struct {
	Name   string            `yaml:"name"`
	Fields models.SchemaSpec `yaml:"-"`
}

type rawFile struct {
	Name   string    `yaml:"name"`
	Fields yaml.Node `yaml:"fields"`
}

// LoadFile reads and validates one schema definition file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a schema definition from YAML bytes.
func Parse(data []byte) (*File, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse schema file: %w", err)
	}

	spec, err := decodeFields(&raw.Fields)
	if err != nil {
		return nil, err
	}
	if err := Validate(spec); err != nil {
		return nil, err
	}
	return &File{Name: raw.Name, Fields: spec}, nil
}

func decodeFields(node *yaml.Node) (models.SchemaSpec, error) {
	var spec models.SchemaSpec
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&spec.Fields); err != nil {
			return spec, fmt.Errorf("decode fields: %w", err)
		}
	case yaml.MappingNode:
		// Mapping content alternates key and value nodes; walking it in
		// order is what keeps the declared field order.
		for i := 0; i+1 < len(node.Content); i += 2 {
			spec.Fields = append(spec.Fields, models.FieldSpec{
				Name: node.Content[i].Value,
				Type: models.FieldType(node.Content[i+1].Value),
			})
		}
	case 0:
		// Absent fields key; caught by Validate below.
	default:
		return spec, fmt.Errorf("fields must be a sequence or mapping")
	}
	return spec, nil
}

// Validate checks a schema for emptiness, duplicate names and unknown type
// tags.
func Validate(spec models.SchemaSpec) error {
	if spec.Len() == 0 {
		return apperrors.ErrInvalidSchema
	}
	seen := make(map[string]bool, spec.Len())
	for _, f := range spec.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema field with empty name")
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate schema field %q", f.Name)
		}
		seen[f.Name] = true
		if !f.Type.Valid() {
			return fmt.Errorf("field %q has unknown type %q", f.Name, f.Type)
		}
	}
	return nil
}
