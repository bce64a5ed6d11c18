package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mimic-data/mimic-engine/pkg/database"
	"github.com/mimic-data/mimic-engine/pkg/models"
)

// Seeder inserts generated records into Postgres.
type Seeder struct {
	db        *database.DB
	logger    *zap.Logger
	batchSize int
}

// NewSeeder creates a Seeder with a default batch size of 500 rows.
func NewSeeder(db *database.DB, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, logger: logger, batchSize: 500}
}

// Seed creates the target table when needed and inserts all records in
// batches. Returns the number of rows inserted.
func (s *Seeder) Seed(ctx context.Context, table string, schema models.SchemaSpec, records []models.Record) (int, error) {
	if err := s.db.EnsureTable(ctx, table, schema); err != nil {
		return 0, err
	}

	columns := schema.FieldNames()
	stmt := insertStatement(table, columns)

	inserted := 0
	for start := 0; start < len(records); start += s.batchSize {
		end := min(start+s.batchSize, len(records))

		batch := &pgx.Batch{}
		for _, record := range records[start:end] {
			args := make([]any, len(columns))
			for i, col := range columns {
				args[i] = record[col]
			}
			batch.Queue(stmt, args...)
		}

		results := s.db.SendBatch(ctx, batch)
		if err := results.Close(); err != nil {
			return inserted, fmt.Errorf("failed to insert batch into %s: %w", table, err)
		}
		inserted += end - start

		s.logger.Debug("seeded batch",
			zap.String("table", table),
			zap.Int("rows", end-start),
			zap.Int("total", inserted))
	}

	s.logger.Info("seeding complete",
		zap.String("table", table),
		zap.Int("rows", inserted))
	return inserted, nil
}

func insertStatement(table string, columns []string) string {
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = database.QuoteIdentifier(col)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		database.QuoteIdentifier(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "))
}
