package main

import (
	"context"

	"github.com/revelaction/polarity/nlp"
	"github.com/revelaction/polarity/render"
	"github.com/revelaction/polarity/repl"
)

// Query command
func queryCommand(ctx context.Context, opts LexiconOptions, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	lex, err := loadLexicon(NewLexiconRepository(pool), opts.LexiconPaths, ui)
	if err != nil {
		return err
	}

	analyzer, err := nlp.NewProse()
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor

	// now present the REPL
	h := repl.NewHandler(lex, analyzer, opts.Entities, r, ui.Out)
	return h.Run(ctx)
}
