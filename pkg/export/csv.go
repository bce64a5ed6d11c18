package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mimic-data/mimic-engine/pkg/models"
)

// WriteCSV renders records as CSV with a header row. Column order follows
// the schema when one is given.
func WriteCSV(w io.Writer, schema models.SchemaSpec, records []models.Record) error {
	columns := orderedColumns(schema, records)
	if len(columns) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(columns))
	for _, record := range records {
		for i, col := range columns {
			row[i] = columnValue(record[col])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
