package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"data-reconciler/core/recon"
	"data-reconciler/core/table"
)

// ReadCSV parses CSV content into a wide table. The first row is the header.
// A zero delimiter auto-detects among ',', ';' and '\t' on the header line.
func ReadCSV(r io.Reader, delimiter rune) (*table.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv content: %w", err)
	}
	if len(data) == 0 {
		return table.New(nil, nil), nil
	}

	if delimiter == 0 {
		delimiter = detectDelimiter(data)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // tolerate ragged rows; table.Cell pads

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(rows) == 0 {
		return table.New(nil, nil), nil
	}

	return table.New(rows[0], rows[1:]), nil
}

// ReadCSVFile reads a CSV file from the local filesystem. A missing file is
// reported as a recoverable SourceUnavailableError.
func ReadCSVFile(path string, delimiter rune) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &recon.SourceUnavailableError{Source: path, Err: err}
	}
	defer f.Close()

	return ReadCSV(f, delimiter)
}

// detectDelimiter picks the separator that splits the header line into the
// most fields.
func detectDelimiter(data []byte) rune {
	header := string(data)
	if idx := strings.IndexByte(header, '\n'); idx >= 0 {
		header = header[:idx]
	}

	best := ','
	bestCount := strings.Count(header, ",")
	for _, candidate := range []rune{';', '\t'} {
		if count := strings.Count(header, string(candidate)); count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}
