package zombiezen

import (
	"context"
	"fmt"
	"os"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/polarity/lexicon"
	"github.com/revelaction/polarity/storage"
)

// LexiconStore reads and writes lexicon sources in SQLite databases, one
// source per database file. Each label is a row; position keeps the order
// of the expressions.
type LexiconStore struct {
	open func(path string) (*sqlitex.Pool, error)
}

var _ storage.LexiconRepository = (*LexiconStore)(nil)

// NewLexiconStore returns a store that opens databases with open. Pass
// NewPool, or a caching opener so that a database is opened only once.
func NewLexiconStore(open func(path string) (*sqlitex.Pool, error)) *LexiconStore {
	return &LexiconStore{open: open}
}

func (ls *LexiconStore) ReadSource(path string) (lexicon.Source, error) {
	// Opening a pool creates the file, a missing database is an error
	if _, err := os.Stat(path); err != nil {
		return lexicon.Source{}, err
	}

	pool, err := ls.open(path)
	if err != nil {
		return lexicon.Source{}, err
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return lexicon.Source{}, err
	}
	defer pool.Put(conn)

	src := lexicon.Source{Name: path}
	// position -> index in src.Entries
	seen := map[int64]int{}

	err = sqlitex.Execute(conn, "SELECT position, expression, label FROM lexicon ORDER BY position, rowid", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			pos := stmt.ColumnInt64(0)
			idx, ok := seen[pos]
			if !ok {
				src.Entries = append(src.Entries, lexicon.Entry{Expression: stmt.ColumnText(1)})
				idx = len(src.Entries) - 1
				seen[pos] = idx
			}

			src.Entries[idx].Labels = append(src.Entries[idx].Labels, stmt.ColumnText(2))
			return nil
		},
	})
	if err != nil {
		return lexicon.Source{}, fmt.Errorf("failed to read lexicon table: %w", err)
	}

	return src, nil
}

// WriteSource replaces the lexicon of the database at path with src.
func (ls *LexiconStore) WriteSource(path string, src lexicon.Source) (err error) {
	pool, err := ls.open(path)
	if err != nil {
		return err
	}

	if err := CreateSchemas(pool, "lexicon.sql"); err != nil {
		return fmt.Errorf("failed to create lexicon table: %w", err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	if err = sqlitex.Execute(conn, "DELETE FROM lexicon", nil); err != nil {
		return fmt.Errorf("failed to clear lexicon: %w", err)
	}

	for pos, e := range src.Entries {
		for _, label := range e.Labels {
			err = sqlitex.Execute(conn, "INSERT INTO lexicon (position, expression, label) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{pos, e.Expression, label},
			})
			if err != nil {
				return fmt.Errorf("failed to insert expression %q: %w", e.Expression, err)
			}
		}
	}

	return nil
}
