package recon

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"data-reconciler/core/table"
)

// Source is one wide-table input assigned to a side of a reconciliation
// run, together with its normalization mapping.
type Source struct {
	// Name identifies the source in logs and errors.
	Name string

	// Table is the wide table produced by a boundary reader. A nil or empty
	// table is treated as an empty source, not an error.
	Table *table.Table

	// Options is the caller-supplied column-to-role mapping.
	Options NormalizeOptions
}

// RunOptions configures one reconciliation run.
type RunOptions struct {
	// Report names the two sides in the assembled output.
	Report ReportOptions

	// Rules is the exception rule set. Nil means no exceptions.
	Rules RuleSet
}

// RunResult is the outcome of a completed run. A completed run always
// carries a report, possibly with zero rows.
type RunResult struct {
	// RunID is a unique identifier for the run, carried in log fields.
	RunID string

	// Items are the surviving discrepancies after exception filtering.
	Items []DiffItem

	// Report is the assembled report table.
	Report *table.Table

	// SkippedSources names inputs dropped for recoverable schema problems.
	SkippedSources []string

	// Suppressed counts discrepancies removed by exception rules.
	Suppressed int
}

// Run executes the full pipeline for two source sets: normalize each side,
// group, diff, filter through the exception rules, and assemble the report.
//
// Per-source and per-rule problems are absorbed and logged so one malformed
// input never aborts reconciliation of the rest; only unexpected failures
// surface as an error, in which case no partial result is returned.
func Run(logger *zap.Logger, sideA, sideB []Source, opts RunOptions) (*RunResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := &RunResult{RunID: uuid.NewString()}
	l := logger.With(zap.String("run_id", result.RunID))

	recordsA := normalizeSide(l, SideA, sideA, result)
	recordsB := normalizeSide(l, SideB, sideB, result)

	popA := Group(recordsA)
	popB := Group(recordsB)

	logSkippedDimensions(l, popA, popB, opts.Report)

	items := Diff(popA, popB)
	filtered := Filter(items, opts.Rules)
	result.Suppressed = len(items) - len(filtered)
	result.Items = filtered
	result.Report = Assemble(filtered, opts.Report)

	l.Info("reconciliation complete",
		zap.Int("records_a", len(recordsA)),
		zap.Int("records_b", len(recordsB)),
		zap.Int("discrepancies", len(items)),
		zap.Int("suppressed", result.Suppressed),
		zap.Int("reported", len(filtered)),
	)

	return result, nil
}

// normalizeSide melts every source of one side, absorbing schema errors by
// skipping the source and logging rule warnings.
func normalizeSide(l *zap.Logger, side Side, sources []Source, result *RunResult) []Record {
	records := []Record{}

	for _, src := range sources {
		sl := l.With(zap.String("side", side.String()), zap.String("source", src.Name))

		opts := src.Options
		if opts.Source == "" {
			opts.Source = src.Name
		}

		if src.Table.IsEmpty() {
			sl.Warn("source is empty, treating as no records")
			continue
		}

		normalized, err := Normalize(src.Table, opts)
		if err != nil {
			sl.Warn("skipping source", zap.Error(err))
			result.SkippedSources = append(result.SkippedSources, src.Name)
			continue
		}
		for _, warn := range normalized.Warnings {
			sl.Warn("normalization rule skipped", zap.Error(warn))
		}

		sl.Debug("source normalized", zap.Int("records", len(normalized.Records)))
		records = append(records, normalized.Records...)
	}

	return records
}

// logSkippedDimensions surfaces dimensions present on only one side, which
// the differ deliberately ignores, so the signal is not lost silently.
func logSkippedDimensions(l *zap.Logger, popA, popB *Population, opts ReportOptions) {
	for dimension := range popA.Identities {
		if !popB.HasDimension(dimension) {
			l.Debug("dimension not tracked on both sides, skipped",
				zap.String("dimension", dimension),
				zap.String("only_in", opts.SideName(SideA)))
		}
	}
	for dimension := range popB.Identities {
		if !popA.HasDimension(dimension) {
			l.Debug("dimension not tracked on both sides, skipped",
				zap.String("dimension", dimension),
				zap.String("only_in", opts.SideName(SideB)))
		}
	}
}
