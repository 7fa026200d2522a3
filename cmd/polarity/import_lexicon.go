package main

import (
	"fmt"

	"github.com/revelaction/polarity/storage"
	"github.com/revelaction/polarity/storage/filesystem"
	"github.com/revelaction/polarity/storage/sqlite/zombiezen"
)

func importLexiconCommand(opts TransferOptions, ui UI) error {
	if !storage.IsDatabase(opts.To) {
		return fmt.Errorf("destination must be a SQLite database (.db, .sqlite): %s", opts.To)
	}

	src, err := filesystem.NewLexiconStore().ReadSource(opts.From)
	if err != nil {
		return err
	}

	pool := &Pool{}
	defer pool.Close()

	if err := zombiezen.NewLexiconStore(pool.Open).WriteSource(opts.To, src); err != nil {
		return err
	}

	_, err = fmt.Fprintf(ui.Out, "✔ imported %d expressions into %s\n", len(src.Entries), opts.To)
	return err
}
