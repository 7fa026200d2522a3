package main

import (
	"context"
	"fmt"

	"github.com/revelaction/polarity/render"
)

// Tag command prints every tagged sentence of each entity with its score.
func tagCommand(ctx context.Context, opts ScoreOptions, ui UI) error {
	report, err := runPipeline(ctx, opts, ui)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor

	for _, er := range report.Entities {
		fmt.Fprintf(ui.Out, "🏷  %s\n", er.Name)
		for i, s := range er.Sentences {
			if err := r.Sentence(s.Tokens, fmt.Sprintf("%5d %+3d ✍  ", s.Id, er.Stats.SentenceScores[i])); err != nil {
				return err
			}
		}
	}

	return nil
}
