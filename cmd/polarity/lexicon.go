package main

import (
	"fmt"
	"strings"
)

// Lexicon command lists the merged expressions with their labels.
func lexiconCommand(opts LexiconOptions, prefix string, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	lex, err := loadLexicon(NewLexiconRepository(pool), opts.LexiconPaths, ui)
	if err != nil {
		return err
	}

	keys := lex.Keys()
	if prefix != "" {
		keys = lex.WithPrefix(prefix)
	}

	for _, k := range keys {
		labels, _ := lex.Lookup(k)
		if _, err := fmt.Fprintf(ui.Out, "%s: %s\n", k, strings.Join(labels, ", ")); err != nil {
			return err
		}
	}

	if prefix == "" {
		fmt.Fprintf(ui.Err, "%d expressions, longest has %d words\n", lex.Len(), lex.MaxKeyLength())
	}

	return nil
}
