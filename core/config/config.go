package config

import (
	"reflect"
	"strings"

	"data-reconciler/core/database"
	"data-reconciler/core/logger"
	"data-reconciler/core/recon"
	"data-reconciler/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Recon holds the engine-level settings (side display names).
	Recon recon.Config `mapstructure:"recon"`
	// SideA describes the authoritative source table.
	SideA SourceConfig `mapstructure:"side_a"`
	// SideB describes the derived/external source table.
	SideB SourceConfig `mapstructure:"side_b"`
	// Exceptions describes the suppression table location.
	Exceptions ExceptionsConfig `mapstructure:"exceptions"`
	// Report describes the rendered output.
	Report ReportConfig `mapstructure:"report"`
}

// Source kinds accepted by SourceConfig.Kind.
const (
	SourceKindCSV        = "csv"
	SourceKindZipCSV     = "zip"
	SourceKindExcel      = "excel"
	SourceKindDatabase   = "db"
	SourceKindStorageZip = "storage-zip"
)

// SourceConfig describes one wide-table input and its column-to-role
// mapping. The core never infers roles; everything here is explicit.
type SourceConfig struct {
	// Kind selects the reader: csv, zip, excel, db, storage-zip.
	Kind string `mapstructure:"kind" default:"csv"`
	// Path is the local file path (csv, zip, excel).
	Path string `mapstructure:"path" default:""`
	// Entry is the CSV entry name inside a ZIP archive. Empty picks the
	// first .csv entry.
	Entry string `mapstructure:"entry" default:""`
	// Sheet is the worksheet name for excel sources. Empty picks the first.
	Sheet string `mapstructure:"sheet" default:""`
	// Object is the object name for storage-zip sources.
	Object string `mapstructure:"object" default:""`
	// Table is the table name for db sources.
	Table string `mapstructure:"table" default:""`
	// IdentityColumn is the column holding the entity identity.
	IdentityColumn string `mapstructure:"identity_column" default:""`
	// DimensionColumn is the column holding the dimension, if any.
	DimensionColumn string `mapstructure:"dimension_column" default:""`
	// DimensionConstant is the fixed dimension when no column carries it.
	DimensionConstant string `mapstructure:"dimension_constant" default:""`
}

// IsValidKind checks if the configured source kind is supported.
func (c SourceConfig) IsValidKind() bool {
	switch c.Kind {
	case SourceKindCSV, SourceKindZipCSV, SourceKindExcel, SourceKindDatabase, SourceKindStorageZip:
		return true
	default:
		return false
	}
}

// ExceptionsConfig describes where the suppression table lives. A missing or
// malformed table is treated as "no exceptions", never an error.
type ExceptionsConfig struct {
	// Kind selects the reader: csv or excel.
	Kind string `mapstructure:"kind" default:"csv"`
	// Path is the local file path. Empty disables exception loading.
	Path string `mapstructure:"path" default:""`
	// Sheet is the worksheet name for excel tables. Empty picks the first.
	Sheet string `mapstructure:"sheet" default:""`
}

// ReportConfig describes the rendered diff report.
type ReportConfig struct {
	// Path is the local output file.
	Path string `mapstructure:"path" default:"reconciliation_report.xlsx"`
	// Format selects the renderer: excel or csv.
	Format string `mapstructure:"format" default:"excel"`
	// Upload pushes the rendered report to object storage when true.
	Upload bool `mapstructure:"upload" default:"false"`
	// Object is the destination object name for uploads. Empty derives it
	// from Path.
	Object string `mapstructure:"object" default:""`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists; ignore the error in production where the
	// file is absent.
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SIDE_A_PATH -> side_a.path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
