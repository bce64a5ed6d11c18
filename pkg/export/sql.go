package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mimic-data/mimic-engine/pkg/models"
)

// WriteSQL renders records as a Postgres insert script for the given table.
// One multi-row INSERT per call keeps the script fast to replay.
func WriteSQL(w io.Writer, table string, schema models.SchemaSpec, records []models.Record) error {
	columns := orderedColumns(schema, records)
	if len(columns) == 0 || len(records) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(quoteIdent(table))
	b.WriteString(" (")
	for i, col := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteIdent(col))
	}
	b.WriteString(") VALUES\n")

	for i, record := range records {
		b.WriteString("  (")
		for j, col := range columns {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(sqlLiteral(record[col]))
		}
		if i == len(records)-1 {
			b.WriteString(");\n")
		} else {
			b.WriteString("),\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func sqlLiteral(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return fmt.Sprintf("%d", t)
	case int64:
		return fmt.Sprintf("%d", t)
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", t), "0"), ".")
	case time.Time:
		return "'" + t.UTC().Format(time.RFC3339) + "'"
	default:
		return "'" + strings.ReplaceAll(fmt.Sprintf("%v", t), "'", "''") + "'"
	}
}
