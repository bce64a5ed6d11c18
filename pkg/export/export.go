// Package export writes generated records to CSV, JSON and SQL insert
// scripts, and seeds them directly into Postgres.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

// Format identifies an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatSQL  Format = "sql"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatSQL:
		return FormatSQL, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, s)
}

// columnValue flattens a record value into something every encoder can
// render. Nested lists and maps come out as their fmt representation, which
// is good enough for tabular targets.
func columnValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", t), "0"), ".")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// orderedColumns resolves the column order for a batch of records. The
// schema wins when present; otherwise columns come from the first record in
// sorted order so output stays stable.
func orderedColumns(schema models.SchemaSpec, records []models.Record) []string {
	if schema.Len() > 0 {
		return schema.FieldNames()
	}
	if len(records) == 0 {
		return nil
	}
	names := make([]string, 0, len(records[0]))
	for name := range records[0] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
