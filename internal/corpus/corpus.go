// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads the paper corpus into memory and decodes per-record
// category tags. The corpus is read once at startup and treated as
// read-only for the rest of the process.
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/researchmind/pkg/types"
)

// Column names expected in the corpus source.
const (
	colTitles    = "titles"
	colSummaries = "summaries"
	colTerms     = "terms"
)

// Load reads the corpus described by cfg. Format defaults to CSV.
func Load(cfg types.CorpusConfig) ([]types.PaperRecord, error) {
	switch cfg.Format {
	case types.CorpusSQLite:
		return LoadSQLite(cfg.Path, cfg.Table)
	case types.CorpusCSV, "":
		return LoadCSV(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported corpus format %q: use csv or sqlite", cfg.Format)
	}
}

// LoadCSV reads paper records from a CSV file with titles, summaries and
// terms columns. A missing file yields an empty corpus, not an error.
func LoadCSV(path string) ([]types.PaperRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}
	return records, nil
}

// ReadCSV reads paper records from CSV data. The first row is a header;
// rows are kept in source order. Cells beyond the three known columns are
// ignored, and a row missing a cell falls back to an empty value ("[]"
// for terms so the tag decoder sees a well-formed empty list).
func ReadCSV(r io.Reader) ([]types.PaperRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	cell := func(row []string, name, fallback string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return fallback
		}
		return strings.TrimSpace(row[idx])
	}

	var records []types.PaperRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+2, err)
		}
		records = append(records, types.PaperRecord{
			Title:    cell(row, colTitles, ""),
			Summary:  cell(row, colSummaries, ""),
			RawTerms: cell(row, colTerms, "[]"),
		})
	}
	return records, nil
}
