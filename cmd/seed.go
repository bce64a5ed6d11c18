package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mimic-data/mimic-engine/pkg/database"
	"github.com/mimic-data/mimic-engine/pkg/export"
	"github.com/mimic-data/mimic-engine/pkg/logging"
	"github.com/mimic-data/mimic-engine/pkg/schema"
	"github.com/mimic-data/mimic-engine/pkg/services"
)

type seedFlags struct {
	schemaPath string
	count      int
	table      string
	seed       int64
}

var sdFlags seedFlags

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate records and insert them into Postgres",
	Long: `Generates records from a YAML schema file and inserts them into the
configured Postgres database. The target table is created when missing.
Connection settings come from config.yaml or the PG* environment variables.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVarP(&sdFlags.schemaPath, "schema", "s", "", "Path to YAML schema file (required)")
	seedCmd.Flags().IntVarP(&sdFlags.count, "count", "n", 0, "Number of records (default from config)")
	seedCmd.Flags().StringVar(&sdFlags.table, "table", "", "Target table (default schema name)")
	seedCmd.Flags().Int64Var(&sdFlags.seed, "seed", 0, "Random seed (0 = from config, or time-based)")
	_ = seedCmd.MarkFlagRequired("schema")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	file, err := schema.LoadFile(sdFlags.schemaPath)
	if err != nil {
		return err
	}

	table := sdFlags.table
	if table == "" {
		table = file.Name
	}
	if table == "" {
		return fmt.Errorf("seeding needs a table name: set --table or name the schema")
	}

	count := sdFlags.count
	if count == 0 {
		count = cfg.Generator.DefaultCount
	}
	if count < 0 {
		return fmt.Errorf("count must be positive")
	}

	seed := chooseSeed(sdFlags.seed, cfg.Seed)
	gen := services.NewGenerator(services.NewRand(seed))
	records := gen.GenerateMany(file.Fields, count)

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	logger.Info("connecting to database",
		zap.String("url", logging.SanitizeConnectionString(cfg.Database.URL())))
	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.URL(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	inserted, err := export.NewSeeder(db, logger).Seed(ctx, table, file.Fields, records)
	if err != nil {
		return err
	}

	logger.Info("seed complete",
		zap.String("table", table),
		zap.Int("rows", inserted),
		zap.Int64("seed", seed))
	return nil
}
