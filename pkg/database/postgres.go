// Package database manages the Postgres connection pool used when seeding
// generated data into a live database.
package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mimic-data/mimic-engine/pkg/models"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	*pgxpool.Pool
}

// Config holds database connection configuration.
type Config struct {
	URL             string
	MaxConnections  int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// NewConnection creates a new database connection pool and verifies it with
// a ping.
func NewConnection(ctx context.Context, cfg *Config) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConnections
	if poolConfig.MaxConns == 0 {
		poolConfig.MaxConns = 10
	}

	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	if poolConfig.MaxConnLifetime == 0 {
		poolConfig.MaxConnLifetime = time.Hour
	}

	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	if poolConfig.MaxConnIdleTime == 0 {
		poolConfig.MaxConnIdleTime = time.Minute * 30
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}

// EnsureTable creates the target table for a schema when it does not exist
// yet. Every column is nullable since generated data may carry deliberate
// gaps.
func (db *DB) EnsureTable(ctx context.Context, table string, schema models.SchemaSpec) error {
	ddl, err := CreateTableDDL(table, schema)
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// CreateTableDDL builds the CREATE TABLE statement for a schema.
func CreateTableDDL(table string, schema models.SchemaSpec) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", QuoteIdentifier(table))
	for i, f := range schema.Fields {
		colType, err := columnType(f.Type)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "    %s %s", QuoteIdentifier(f.Name), colType)
		if i < schema.Len()-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String(), nil
}

func columnType(t models.FieldType) (string, error) {
	switch t {
	case models.FieldText:
		return "TEXT", nil
	case models.FieldInteger:
		return "BIGINT", nil
	case models.FieldReal:
		return "DOUBLE PRECISION", nil
	case models.FieldBoolean:
		return "BOOLEAN", nil
	case models.FieldTimestamp:
		return "TIMESTAMPTZ", nil
	case models.FieldList, models.FieldMap:
		return "JSONB", nil
	}
	return "", fmt.Errorf("no column type for field type %q", t)
}

// QuoteIdentifier quotes a Postgres identifier.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
