package main

import (
	"context"
	"errors"

	"github.com/revelaction/polarity/lexicon"
	"github.com/revelaction/polarity/nlp"
	"github.com/revelaction/polarity/pipeline"
	"github.com/revelaction/polarity/render"
	"github.com/revelaction/polarity/storage/filesystem"
)

// Score command
func scoreCommand(ctx context.Context, opts ScoreOptions, ui UI) error {
	report, err := runPipeline(ctx, opts, ui)
	if err != nil {
		return err
	}

	return newReportRenderer(opts, ui).Render(report)
}

func newReportRenderer(opts ScoreOptions, ui UI) render.ReportRenderer {
	switch opts.Format {
	case render.FormatJSON:
		return render.NewJSONRenderer(ui.Out)
	case render.FormatScores:
		return render.NewScoresRenderer(ui.Out)
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	r.Sentences = opts.Sentences
	return r
}

// runPipeline loads the lexicon and the document, then scores the document.
func runPipeline(ctx context.Context, opts ScoreOptions, ui UI) (pipeline.Report, error) {
	cfg := opts.Config

	logger, err := newLogger(cfg.LogLevel, ui.Err)
	if err != nil {
		return pipeline.Report{}, err
	}

	pool := &Pool{}
	defer pool.Close()

	lex, err := loadLexicon(NewLexiconRepository(pool), cfg.LexiconPaths, ui)
	if err != nil {
		return pipeline.Report{}, err
	}
	logger.Debug("lexicon loaded", "expressions", lex.Len(), "max_key_length", lex.MaxKeyLength())

	analyzer, err := nlp.NewProse()
	if err != nil {
		return pipeline.Report{}, err
	}

	report, err := pipeline.RunFile(ctx, cfg.DocumentPath, filesystem.NewDocStore(), lex, cfg.Entities, analyzer, logger)
	if err != nil {
		var le *lexicon.LoadError
		if errors.As(err, &le) {
			logger.Error("load failed", "path", le.Path)
		}
		return pipeline.Report{}, err
	}

	return report, nil
}
