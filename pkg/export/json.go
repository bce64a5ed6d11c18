package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mimic-data/mimic-engine/pkg/models"
)

// WriteJSON renders records as an indented JSON array.
func WriteJSON(w io.Writer, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
