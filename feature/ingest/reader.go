package ingest

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"data-reconciler/core/config"
	"data-reconciler/core/recon"
	"data-reconciler/core/storage"
	"data-reconciler/core/table"
)

// Deps bundles the external collaborators a source reader may need. Only the
// fields a given source kind uses have to be set.
type Deps struct {
	// DB is the connection for db sources.
	DB *gorm.DB

	// Storage and Bucket locate objects for storage-zip sources.
	Storage storage.Client
	Bucket  string
}

// ReadSource dispatches to the reader selected by the source configuration
// and returns the wide table.
func ReadSource(ctx context.Context, cfg config.SourceConfig, deps Deps) (*table.Table, error) {
	switch cfg.Kind {
	case config.SourceKindCSV:
		return ReadCSVFile(cfg.Path, 0)
	case config.SourceKindZipCSV:
		return ReadZipCSV(cfg.Path, cfg.Entry)
	case config.SourceKindExcel:
		return ReadExcelFile(cfg.Path, cfg.Sheet)
	case config.SourceKindDatabase:
		return ReadDatabaseTable(ctx, deps.DB, cfg.Table)
	case config.SourceKindStorageZip:
		return ReadStorageZipCSV(ctx, deps.Storage, deps.Bucket, cfg.Object, cfg.Entry)
	default:
		return nil, &recon.ConfigurationError{
			Rule:   fmt.Sprintf("source kind %q", cfg.Kind),
			Reason: "unsupported kind",
		}
	}
}

// NormalizeOptions maps a source configuration to the engine's
// column-to-role options. Rename maps and filter rules are not expressible
// as flat configuration; callers using them pass options programmatically.
func NormalizeOptions(name string, cfg config.SourceConfig) recon.NormalizeOptions {
	return recon.NormalizeOptions{
		Source:         name,
		IdentityColumn: cfg.IdentityColumn,
		Dimension: recon.DimensionSource{
			Column:   cfg.DimensionColumn,
			Constant: cfg.DimensionConstant,
		},
	}
}
