// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/researchmind/pkg/types"
)

const defaultTable = "papers"

// LoadSQLite reads paper records from a SQLite database table with
// titles, summaries and terms columns. Row order follows rowid, matching
// insertion order. A missing database file yields an empty corpus.
func LoadSQLite(path, table string) ([]types.PaperRecord, error) {
	if table == "" {
		table = defaultTable
	}
	if !validTableName(table) {
		return nil, fmt.Errorf("invalid corpus table name %q", table)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus database %s: %w", path, err)
	}
	defer db.Close()

	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %q ORDER BY rowid", colTitles, colSummaries, colTerms, table)
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying corpus table %s: %w", table, err)
	}
	defer rows.Close()

	var records []types.PaperRecord
	for rows.Next() {
		var title, summary, terms sql.NullString
		if err := rows.Scan(&title, &summary, &terms); err != nil {
			return nil, fmt.Errorf("scanning corpus row: %w", err)
		}
		rec := types.PaperRecord{
			Title:    title.String,
			Summary:  summary.String,
			RawTerms: terms.String,
		}
		if rec.RawTerms == "" {
			rec.RawTerms = "[]"
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// validTableName accepts plain identifiers only; the table name is
// interpolated into the query and must not carry SQL.
func validTableName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
