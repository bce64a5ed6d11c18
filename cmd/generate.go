package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mimic-data/mimic-engine/pkg/export"
	"github.com/mimic-data/mimic-engine/pkg/schema"
	"github.com/mimic-data/mimic-engine/pkg/services"
)

type generateFlags struct {
	schemaPath string
	count      int
	format     string
	out        string
	table      string
	seed       int64
}

var genFlags generateFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate records from a schema file",
	Long: `Generates synthetic records from a YAML schema file. Field values are
inferred from each field's type and name, so a text field called "email"
produces addresses and an integer field called "age" produces ages.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genFlags.schemaPath, "schema", "s", "", "Path to YAML schema file (required)")
	generateCmd.Flags().IntVarP(&genFlags.count, "count", "n", 0, "Number of records (default from config)")
	generateCmd.Flags().StringVarP(&genFlags.format, "format", "f", "json", "Output format: csv, json or sql")
	generateCmd.Flags().StringVarP(&genFlags.out, "out", "o", "", "Output file (default stdout)")
	generateCmd.Flags().StringVar(&genFlags.table, "table", "", "Table name for sql output (default schema name)")
	generateCmd.Flags().Int64Var(&genFlags.seed, "seed", 0, "Random seed (0 = from config, or time-based)")
	_ = generateCmd.MarkFlagRequired("schema")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	file, err := schema.LoadFile(genFlags.schemaPath)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(genFlags.format)
	if err != nil {
		return err
	}

	count := genFlags.count
	if count == 0 {
		count = cfg.Generator.DefaultCount
	}
	if count < 0 {
		return fmt.Errorf("count must be positive")
	}

	seed := chooseSeed(genFlags.seed, cfg.Seed)
	gen := services.NewGenerator(services.NewRand(seed))
	records := gen.GenerateMany(file.Fields, count)

	w, closer, err := openOutput(genFlags.out)
	if err != nil {
		return err
	}
	defer closer()

	switch format {
	case export.FormatCSV:
		err = export.WriteCSV(w, file.Fields, records)
	case export.FormatJSON:
		err = export.WriteJSON(w, records)
	case export.FormatSQL:
		table := genFlags.table
		if table == "" {
			table = file.Name
		}
		if table == "" {
			return fmt.Errorf("sql output needs a table name: set --table or name the schema")
		}
		err = export.WriteSQL(w, table, file.Fields, records)
	}
	if err != nil {
		return err
	}

	logger.Info("generation complete",
		zap.Int("records", count),
		zap.String("format", string(format)),
		zap.Int64("seed", seed))
	return nil
}

// chooseSeed picks the flag seed, then the configured seed, then the clock.
func chooseSeed(requested, configured int64) int64 {
	if requested != 0 {
		return requested
	}
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}

// openOutput returns the writer for --out, defaulting to stdout. The closer
// is a no-op for stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
