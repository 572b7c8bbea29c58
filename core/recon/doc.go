// Package recon is the normalization + reconciliation engine: it turns
// arbitrary wide tables into a canonical long-form representation, builds
// stable identity keys, groups records into entities, diffs two entity
// populations at the entity and attribute level, and applies exception-based
// suppression to the result.
//
// # Pipeline
//
// Data flows strictly one way:
//
//	wide table → Normalize → Group → Diff (two populations)
//	           → Filter (exception rules) → Assemble → external renderer
//
// Reading workbooks or archives and rendering the colored report are
// boundary concerns (see feature/ingest and feature/report); the engine is a
// pure, single-threaded batch computation with no I/O of its own. Each run
// is a pure function over its inputs, so independent dimension-pairs may be
// reconciled in parallel by the caller if desired.
//
// # Keys
//
// Every stage keys off two derived strings: the group key
// ("dimension | identity") and the full key
// ("dimension | identity | attribute | value"). Parts are trimmed before
// joining, so values differing only in surrounding whitespace produce
// identical keys. This is the single most important correctness property of
// the engine.
//
// # Error handling
//
// SchemaError, SourceUnavailableError and ConfigurationError are
// recoverable and absorbed locally (skip and continue); anything else is
// fatal to the run. A completed run always yields a report, possibly with
// zero rows.
//
// # Usage
//
//	result, err := recon.Run(logger,
//	    []recon.Source{{Name: "alfa-accounts", Table: tblA, Options: optsA}},
//	    []recon.Source{{Name: "gamma-extract", Table: tblB, Options: optsB}},
//	    recon.RunOptions{
//	        Report: recon.ReportOptions{SideAName: "Alfa", SideBName: "Gamma"},
//	        Rules:  rules,
//	    })
package recon
