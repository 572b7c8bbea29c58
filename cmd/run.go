package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"data-reconciler/core/config"
	"data-reconciler/core/database"
	"data-reconciler/core/logger"
	"data-reconciler/core/recon"
	"data-reconciler/core/storage"
	"data-reconciler/feature/ingest"
	"data-reconciler/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the run command
	outputPath   string
	outputFormat string
	uploadReport bool
)

// runCmd performs a full reconciliation of the two configured sources.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Reconcile the two configured sources and render the diff report",
	Long: `Reconcile the configured side A (authoritative) and side B (derived)
sources: normalize both tables, diff entities and attributes, suppress known
exceptions, and render the report.

Examples:
  # Reconcile with the configured output
  data-reconciler run

  # Render to CSV at a custom path
  data-reconciler run --output diff.csv --format csv

  # Render and upload the report to object storage
  data-reconciler run --upload`,
	RunE: runReconciliation,
}

func init() {
	runCmd.Flags().StringVar(&outputPath, "output", "", "Override the configured report path")
	runCmd.Flags().StringVar(&outputFormat, "format", "", "Override the configured report format (excel or csv)")
	runCmd.Flags().BoolVar(&uploadReport, "upload", false, "Upload the rendered report to object storage")

	RootCmd.AddCommand(runCmd)
}

func runReconciliation(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting reconciliation",
		zap.String("side_a", cfg.Recon.SideAName),
		zap.String("side_b", cfg.Recon.SideBName),
	)

	deps, err := buildDeps(cfg, l)
	if err != nil {
		return err
	}

	sideA := readSide(ctx, l, "side_a", cfg.SideA, deps)
	sideB := readSide(ctx, l, "side_b", cfg.SideB, deps)

	rules := ingest.LoadExceptionRules(cfg.Exceptions)
	l.Info("Exception rules loaded", zap.Int("rules", len(rules)))

	result, err := recon.Run(l, sideA, sideB, recon.RunOptions{
		Report: cfg.Recon.ReportOptions(),
		Rules:  rules,
	})
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	rl := logger.WithRunID(l, result.RunID)
	return renderReport(ctx, rl, cfg, deps, result)
}

// buildDeps connects the external collaborators the configured source kinds
// actually need. Unused collaborators stay nil.
func buildDeps(cfg *config.Config, l *zap.Logger) (ingest.Deps, error) {
	deps := ingest.Deps{Bucket: cfg.Storage.Bucket}

	if needsDatabase(cfg) {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			// Recoverable: the db-backed side is treated as empty.
			l.Warn("database unavailable, db sources will be empty", zap.Error(err))
		} else {
			deps.DB = db
		}
	}

	if needsStorage(cfg) {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return deps, fmt.Errorf("failed to connect to storage: %w", err)
		}
		deps.Storage = client
	}

	return deps, nil
}

func needsDatabase(cfg *config.Config) bool {
	return cfg.SideA.Kind == config.SourceKindDatabase || cfg.SideB.Kind == config.SourceKindDatabase
}

func needsStorage(cfg *config.Config) bool {
	return cfg.SideA.Kind == config.SourceKindStorageZip ||
		cfg.SideB.Kind == config.SourceKindStorageZip ||
		uploadReport || cfg.Report.Upload
}

// readSide reads one configured source, absorbing unavailability: a missing
// input becomes an empty source and the run continues.
func readSide(ctx context.Context, l *zap.Logger, name string, src config.SourceConfig, deps ingest.Deps) []recon.Source {
	if !src.IsValidKind() {
		l.Warn("source kind not supported, treating source as empty",
			zap.String("source", name), zap.String("kind", src.Kind))
		return nil
	}

	tbl, err := ingest.ReadSource(ctx, src, deps)
	if err != nil {
		if recon.IsRecoverable(err) {
			l.Warn("source unavailable, treating as empty",
				zap.String("source", name), zap.Error(err))
			return nil
		}
		l.Error("failed to read source", zap.String("source", name), zap.Error(err))
		return nil
	}

	l.Info("source loaded",
		zap.String("source", name),
		zap.Int("rows", tbl.NumRows()),
		zap.Int("columns", tbl.NumColumns()),
	)

	return []recon.Source{{
		Name:    name,
		Table:   tbl,
		Options: ingest.NormalizeOptions(name, src),
	}}
}

// renderReport writes the assembled report and optionally uploads it. A
// failure here is fatal: no partial output survives.
func renderReport(ctx context.Context, l *zap.Logger, cfg *config.Config, deps ingest.Deps, result *recon.RunResult) error {
	path := cfg.Report.Path
	if outputPath != "" {
		path = outputPath
	}
	format := cfg.Report.Format
	if outputFormat != "" {
		format = outputFormat
	}

	switch format {
	case "csv":
		if err := report.WriteCSVFile(path, result.Report); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	default:
		err := report.WriteExcelFile(path, result.Report, report.ExcelOptions{
			SideAName: cfg.Recon.SideAName,
			SideBName: cfg.Recon.SideBName,
		})
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	}

	l.Info("report rendered",
		zap.String("path", path),
		zap.Int("rows", result.Report.NumRows()),
		zap.Int("suppressed", result.Suppressed),
		zap.Strings("skipped_sources", result.SkippedSources),
	)

	if uploadReport || cfg.Report.Upload {
		object := cfg.Report.Object
		if object == "" {
			object = "reports/" + filepath.Base(path)
		}
		if err := report.Upload(ctx, deps.Storage, cfg.Storage.Bucket, object, path); err != nil {
			return fmt.Errorf("failed to upload report: %w", err)
		}
		l.Info("report uploaded", zap.String("object", object))
	}

	return nil
}
