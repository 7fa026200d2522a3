package zombiezen

import (
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// lexiconPoolSize is small: a lexicon database is read or written once per
// run, by one goroutine.
const lexiconPoolSize = 2

// NewPool opens the lexicon database at dbPath, creating it if needed, in
// WAL mode.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		Flags:    sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenWAL | sqlite.OpenURI,
		PoolSize: lexiconPoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon database %s: %w", dbPath, err)
	}

	return pool, nil
}
