// Package config provides configuration management for the reconciler.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: MySQL connection details for database-backed sources
//   - Recon: Engine settings (side display names)
//   - SideA / SideB: source definitions and column-to-role mappings
//   - Exceptions: location of the suppression table
//   - Report: rendered output path, format and upload target
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.SideA.Path)
package config
