// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to properly configure MySQL connections
// based on the application's configuration. A database is one possible home
// of a derived source table; the connection is optional and a run proceeds
// without it when all sources come from files or object storage.
//
// # Schema Inspection
//
// GetTableColumns retrieves the columns of a configured source table so the
// sources preview can verify the table and its identity column exist before
// a reconciliation run.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	cols, err := database.GetTableColumns(db, "gl_accounts")
package database
