package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/polarity/entity"
	"github.com/revelaction/polarity/lexicon"
	"github.com/revelaction/polarity/nlp"
	"github.com/revelaction/polarity/storage/filesystem"
)

// Entities command prints, per sentence, the recognized names and the
// entities they are attributed to.
func entitiesCommand(ctx context.Context, opts ScoreOptions, ui UI) error {
	text, err := filesystem.NewDocStore().ReadDocument(opts.Config.DocumentPath)
	if err != nil {
		return &lexicon.LoadError{Path: opts.Config.DocumentPath, Err: err}
	}

	analyzer, err := nlp.NewProse()
	if err != nil {
		return err
	}

	analyses, err := analyzer.Analyze(ctx, text)
	if err != nil {
		return err
	}

	filter := entity.NewFilter(opts.Config.Entities)
	sentences := nlp.Sentences(analyses)

	for _, s := range sentences {
		if len(s.Entities) == 0 {
			continue
		}

		fmt.Fprintf(ui.Out, "%5d ✍  %s → %s\n", s.Id, strings.Join(s.Entities, ", "), strings.Join(filter.Entities(s), ", "))
	}

	res := filter.Split(sentences)
	for _, name := range opts.Config.Entities.Names() {
		fmt.Fprintf(ui.Out, "%s: %d sentences\n", name, len(res.Subsets[name]))
	}

	if len(res.Unattributed) > 0 {
		fmt.Fprintf(ui.Out, "unattributed: %s\n", strings.Join(res.Unattributed, ", "))
	}

	return nil
}
