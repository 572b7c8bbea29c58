// Package ingest contains the boundary readers that turn external inputs
// into wide tables for the reconciliation engine: plain CSV files,
// CSV-in-ZIP archives (local or fetched from object storage), Excel
// workbooks, and database tables. It also loads the exception/suppression
// table into a rule set.
//
// Readers report missing or unreadable inputs as
// recon.SourceUnavailableError so the caller can treat the source as empty
// instead of aborting the run. The exception loader goes further: any
// problem at all yields an empty rule set, never an error.
package ingest
