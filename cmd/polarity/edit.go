package main

import (
	"github.com/revelaction/polarity/edit"
)

// Edit command
func editCommand(path string, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	h := edit.NewHandler(path, NewLexiconRepository(pool), ui.Out)
	return h.Run()
}
