package recon

import (
	"errors"
	"fmt"
)

// SchemaError reports an input table that is missing required columns or is
// too narrow to normalize. Recoverable: the caller skips the source and
// continues with the rest of the run.
type SchemaError struct {
	// Source names the offending input.
	Source string

	// Reason describes what was missing.
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error in source %q: %s", e.Source, e.Reason)
}

// SourceUnavailableError reports a missing or unreadable input at the
// boundary. Recoverable: the source is treated as empty.
type SourceUnavailableError struct {
	// Source names the unavailable input.
	Source string

	// Err is the underlying cause, if any.
	Err error
}

func (e *SourceUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source %q unavailable: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("source %q unavailable", e.Source)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a malformed rename or filter rule, e.g. one
// referencing a nonexistent column. Recoverable: the rule is skipped with a
// warning and processing continues.
type ConfigurationError struct {
	// Rule describes the offending rule.
	Rule string

	// Reason describes why it was skipped.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in rule %q: %s", e.Rule, e.Reason)
}

// IsRecoverable reports whether the error belongs to the recoverable part of
// the taxonomy. Anything else mid-pipeline is fatal and aborts the run.
func IsRecoverable(err error) bool {
	var schemaErr *SchemaError
	var sourceErr *SourceUnavailableError
	var configErr *ConfigurationError
	return errors.As(err, &schemaErr) ||
		errors.As(err, &sourceErr) ||
		errors.As(err, &configErr)
}
