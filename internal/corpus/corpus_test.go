// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/researchmind/pkg/types"
)

const sampleCSV = `titles,summaries,terms
Deep Learning Survey,A survey of deep learning methods.,"['cs.LG', 'stat.ML']"
Cooking Tips,Recipes and kitchen technique.,['misc']
`

func TestReadCSV(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Deep Learning Survey", records[0].Title)
	assert.Equal(t, "A survey of deep learning methods.", records[0].Summary)
	assert.Equal(t, []string{"cs.LG", "stat.ML"}, ParseTerms(records[0].RawTerms))
	assert.Equal(t, "Cooking Tips", records[1].Title)
}

func TestReadCSVExtraAndMissingColumns(t *testing.T) {
	data := "titles,extra,summaries\nPaper A,ignored,Summary A\nPaper B,ignored\n"
	records, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	// No terms column: the raw value falls back to an empty list.
	assert.Equal(t, "[]", records[0].RawTerms)
	assert.Empty(t, ParseTerms(records[0].RawTerms))

	// Short row: missing summary cell becomes empty.
	assert.Equal(t, "Paper B", records[1].Title)
	assert.Equal(t, "", records[1].Summary)
}

func TestReadCSVEmptyInput(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadCSVMissingFile(t *testing.T) {
	records, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadCSVFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	records, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadDispatch(t *testing.T) {
	_, err := Load(types.CorpusConfig{Path: "x", Format: "parquet"})
	assert.Error(t, err)

	records, err := Load(types.CorpusConfig{Path: filepath.Join(t.TempDir(), "nope.csv")})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE papers (titles TEXT, summaries TEXT, terms TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO papers VALUES (?, ?, ?), (?, ?, ?)`,
		"Deep Learning Survey", "A survey of deep learning methods.", "['cs.LG']",
		"Cooking Tips", "Recipes.", "['misc']",
	)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	records, err := LoadSQLite(path, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Deep Learning Survey", records[0].Title)
	assert.Equal(t, []string{"cs.LG"}, ParseTerms(records[0].RawTerms))
}

func TestLoadSQLiteMissingFile(t *testing.T) {
	records, err := LoadSQLite(filepath.Join(t.TempDir(), "nope.db"), "papers")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadSQLiteRejectsBadTableName(t *testing.T) {
	_, err := LoadSQLite("corpus.db", "papers; DROP TABLE papers")
	assert.Error(t, err)
}
