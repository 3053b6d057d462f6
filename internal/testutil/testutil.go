// Package testutil provides shared test helpers for creating dictionary
// database and config file fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// TestEntry is a row seeded into test dictionaries.
type TestEntry struct {
	Head         string
	Definition   string
	PartOfSpeech string
	Etymology    string
}

// DefaultEntries mirrors a tiny slice of a real Latin dictionary: amare
// and a few of its inflected relatives, plus some nouns and adjectives.
func DefaultEntries() []TestEntry {
	return []TestEntry{
		{Head: "amare", Definition: "to love", PartOfSpeech: "verb", Etymology: "from Proto-Indo-European *am-"},
		{Head: "amo", Definition: "I love", PartOfSpeech: "verb", Etymology: "first person singular present of amare"},
		{Head: "puer", Definition: "boy", PartOfSpeech: "noun", Etymology: "from Proto-Indo-European *ph2wer"},
		{Head: "puella", Definition: "girl", PartOfSpeech: "noun", Etymology: "diminutive of puer"},
		{Head: "bonus", Definition: "good", PartOfSpeech: "adjective", Etymology: "from Old Latin duenos"},
	}
}

// CreateTestDictionary creates a SQLite dictionary file under dir with the
// Entries schema the server expects, seeded with entries. Returns the
// file path.
func CreateTestDictionary(t *testing.T, dir string, entries []TestEntry) string {
	t.Helper()

	path := filepath.Join(dir, "dictionary.sqlite")
	db, err := sqlx.Open("sqlite3", path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	_, err = db.Exec(`
		CREATE TABLE Entries (
			id INTEGER PRIMARY KEY,
			head TEXT NOT NULL,
			definition TEXT,
			part_of_speech TEXT,
			etymology TEXT
		)`)
	require.NoError(t, err)
	_, err = db.Exec("CREATE INDEX idx_entries_head ON Entries(head)")
	require.NoError(t, err)

	for _, entry := range entries {
		_, err = db.Exec(
			"INSERT INTO Entries (head, definition, part_of_speech, etymology) VALUES (?, ?, ?, ?)",
			entry.Head, entry.Definition, entry.PartOfSpeech, entry.Etymology)
		require.NoError(t, err)
	}

	return path
}

// SetupTestConfig creates a seeded dictionary database and a config file
// pointing at it. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dbPath := CreateTestDictionary(t, tmpDir, DefaultEntries())
	configContent := fmt.Sprintf(`dictionary:
  path: %s
lemmatizer:
  base_url: http://localhost:8000
  model: la_core_web_lg
  timeout_seconds: 5
`, dbPath)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
