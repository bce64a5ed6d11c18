package services

import "github.com/mimic-data/mimic-engine/pkg/models"

// RelationshipStore is an in-memory registry mapping entity-type names to
// their generated rows, plus declared parent/child key relationships that
// enable joins. It is an explicit context object owned by one generation
// pipeline at a time; it has no synchronization and is reset between
// scenarios. Joins are computed on demand by linear scan and never cached:
// collections are bounded by generation counts, not an online workload.
type RelationshipStore struct {
	entities  map[string][]models.Record
	relations map[relationKey]relationFields
}

type relationKey struct {
	parentType string
	childType  string
}

type relationFields struct {
	parentField string
	childField  string
}

// NewRelationshipStore builds an empty store.
func NewRelationshipStore() *RelationshipStore {
	s := &RelationshipStore{}
	s.Reset()
	return s
}

// Store registers rows under an entity type. Last write wins.
func (s *RelationshipStore) Store(entityType string, rows []models.Record) {
	s.entities[entityType] = rows
}

// Rows returns the rows for an entity type, and whether any were stored.
func (s *RelationshipStore) Rows(entityType string) ([]models.Record, bool) {
	rows, ok := s.entities[entityType]
	return rows, ok
}

// DeclareRelationship registers the key pair joining parent rows to child
// rows.
func (s *RelationshipStore) DeclareRelationship(parentType, childType, parentField, childField string) {
	s.relations[relationKey{parentType, childType}] = relationFields{parentField, childField}
}

// Related returns the child rows whose declared child key equals parentID.
// An undeclared relationship or absent child collection yields an empty
// slice.
func (s *RelationshipStore) Related(parentType, childType string, parentID any) []models.Record {
	fields, ok := s.relations[relationKey{parentType, childType}]
	if !ok {
		return []models.Record{}
	}
	children, ok := s.entities[childType]
	if !ok {
		return []models.Record{}
	}
	matched := []models.Record{}
	for _, row := range children {
		if row[fields.childField] == parentID {
			matched = append(matched, row)
		}
	}
	return matched
}

// Reset clears both the entity map and the declared relationships.
func (s *RelationshipStore) Reset() {
	s.entities = make(map[string][]models.Record)
	s.relations = make(map[relationKey]relationFields)
}
