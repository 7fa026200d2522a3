// Package pipeline scores one document per tracked entity: analyze the
// text, split the sentences by entity, tag them against the lexicon and sum
// the polarity labels.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/revelaction/polarity/entity"
	"github.com/revelaction/polarity/lexicon"
	"github.com/revelaction/polarity/nlp"
	"github.com/revelaction/polarity/score"
	sent "github.com/revelaction/polarity/sentence"
	"github.com/revelaction/polarity/storage"
	"github.com/revelaction/polarity/tagger"
)

// ErrEmptyInput is the warning for a document without sentences. It is not
// fatal: every entity gets a score of 0.
var ErrEmptyInput = errors.New("document has no sentences")

// EntityReport is the scoring of one tracked entity.
type EntityReport struct {
	Name string

	// Sentences are the tagged sentences attributed to the entity, in
	// document order.
	Sentences []sent.Sentence

	Stats score.Stats
}

// Score is the sum of the sentence scores of the entity.
func (er EntityReport) Score() int {
	return er.Stats.Score
}

type Report struct {
	// Doc is the analyzed document, before tagging.
	Doc sent.Doc

	// NumSentences in the document
	NumSentences int

	// Entities follows the order of the entity table.
	Entities []EntityReport

	// Unattributed recognized names, see entity.Result
	Unattributed []string

	Warnings []error
}

// Entity returns the report of the named entity.
func (r Report) Entity(name string) (EntityReport, bool) {
	for _, er := range r.Entities {
		if er.Name == name {
			return er, true
		}
	}

	return EntityReport{}, false
}

type Pipeline struct {
	table    entity.Table
	analyzer nlp.Analyzer
	tagger   *tagger.Tagger
	filter   *entity.Filter
	logger   *log.Logger
}

// New wires a pipeline. The lexicon and the table are only read. A nil
// logger discards the diagnostics.
func New(lex *lexicon.Lexicon, table entity.Table, analyzer nlp.Analyzer, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Pipeline{
		table:    table,
		analyzer: analyzer,
		tagger:   tagger.New(lex),
		filter:   entity.NewFilter(table),
		logger:   logger,
	}
}

// Run scores text for every entity of the table.
func (p *Pipeline) Run(ctx context.Context, text string) (Report, error) {
	analyses, err := p.analyzer.Analyze(ctx, text)
	if err != nil {
		return Report{}, fmt.Errorf("failed to analyze document: %w", err)
	}

	sentences := nlp.Sentences(analyses)
	return p.Score(sentences), nil
}

// Score runs the filter, tagger and aggregator over already analyzed
// sentences.
func (p *Pipeline) Score(sentences []sent.Sentence) Report {
	report := Report{
		Doc:          sent.Doc{Sentences: sentences},
		NumSentences: len(sentences),
	}

	if len(sentences) == 0 {
		p.logger.Warn("empty input", "err", ErrEmptyInput)
		report.Warnings = append(report.Warnings, ErrEmptyInput)
	}

	for _, s := range sentences {
		p.logger.Debug("sentence", "id", s.Id, "text", s.Text)
		p.logger.Debug("tokenized", "id", s.Id, "words", s.Words())
		p.logger.Debug("pos tagged", "id", s.Id, "tokens", s.Tokens)
		p.logger.Debug("entities", "id", s.Id, "names", s.Entities)
	}

	res := p.filter.Split(sentences)
	report.Unattributed = res.Unattributed
	if len(res.Unattributed) > 0 {
		p.logger.Debug("names without entity", "names", res.Unattributed)
	}

	for _, name := range p.table.Names() {
		subset := res.Subsets[name]
		p.logger.Debug("entity sentences", "entity", name, "count", len(subset))

		tagged := p.tagger.Tag(subset)

		hdl := score.NewHandler()
		hdl.Aggregate(tagged)
		stats := hdl.Get()

		for i, s := range tagged {
			p.logger.Debug("tagged", "entity", name, "id", s.Id, "score", stats.SentenceScores[i], "tokens", s.Tokens)
		}

		p.logger.Info("entity score", "entity", name, "sentences", stats.NumSentences, "score", stats.Score)

		report.Entities = append(report.Entities, EntityReport{
			Name:      name,
			Sentences: tagged,
			Stats:     stats,
		})
	}

	return report
}

// RunFile loads the lexicon and the document up front, then scores the
// document. Load failures are returned as *lexicon.LoadError before any
// tagging starts.
func RunFile(ctx context.Context, docPath string, docs storage.DocReader, lex *lexicon.Lexicon, table entity.Table, analyzer nlp.Analyzer, logger *log.Logger) (Report, error) {
	text, err := docs.ReadDocument(docPath)
	if err != nil {
		return Report{}, &lexicon.LoadError{Path: docPath, Err: err}
	}

	report, err := New(lex, table, analyzer, logger).Run(ctx, text)
	if err != nil {
		return Report{}, err
	}

	report.Doc.Title = docPath
	return report, nil
}
