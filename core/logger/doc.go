// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production).
//
// # Run Correlation
//
// Every reconciliation run carries a unique run ID. The WithRunID helper
// attaches it to the log entry, ensuring that all logs belonging to one run
// can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Run started")
//
//	l := logger.WithRunID(log, result.RunID)
//	l.Error("Render failed", zap.Error(err))
package logger
