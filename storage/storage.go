package storage

import (
	"path/filepath"
	"strings"

	"github.com/revelaction/polarity/lexicon"
)

// LexiconReader defines read operations for lexicon storage
type LexiconReader interface {
	lexicon.Reader
}

// LexiconWriter defines write operations for lexicon storage
type LexiconWriter interface {
	// WriteSource persists a lexicon source to the path
	WriteSource(path string, src lexicon.Source) error
}

// LexiconRepository combines read and write operations
type LexiconRepository interface {
	LexiconReader
	LexiconWriter
}

// DocReader defines read operations for the documents (chapters) to score.
type DocReader interface {
	// ReadDocument returns the full UTF-8 text at path.
	ReadDocument(path string) (string, error)
}

// IsDatabase reports whether a lexicon path designates a SQLite database
// instead of a YAML file.
func IsDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}

	return false
}
