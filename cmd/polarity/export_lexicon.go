package main

import (
	"fmt"

	"github.com/revelaction/polarity/storage"
	"github.com/revelaction/polarity/storage/filesystem"
	"github.com/revelaction/polarity/storage/sqlite/zombiezen"
)

func exportLexiconCommand(opts TransferOptions, ui UI) error {
	if !storage.IsDatabase(opts.From) {
		return fmt.Errorf("source must be a SQLite database (.db, .sqlite): %s", opts.From)
	}

	pool := &Pool{}
	defer pool.Close()

	src, err := zombiezen.NewLexiconStore(pool.Open).ReadSource(opts.From)
	if err != nil {
		return err
	}

	if err := filesystem.NewLexiconStore().WriteSource(opts.To, src); err != nil {
		return err
	}

	_, err = fmt.Fprintf(ui.Out, "✔ exported %d expressions into %s\n", len(src.Entries), opts.To)
	return err
}

// exportMergedLexiconCommand writes the merge of the lexicon paths, one
// entry per expression, to a YAML file or a SQLite database.
func exportMergedLexiconCommand(opts LexiconOptions, to string, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	repo := NewLexiconRepository(pool)

	lex, err := loadLexicon(repo, opts.LexiconPaths, ui)
	if err != nil {
		return err
	}

	if err := repo.WriteSource(to, lex.Source(to)); err != nil {
		return err
	}

	_, err = fmt.Fprintf(ui.Out, "✔ exported %d merged expressions into %s\n", lex.Len(), to)
	return err
}
