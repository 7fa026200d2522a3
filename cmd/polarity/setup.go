package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gosuri/uiprogress"

	"github.com/revelaction/polarity/lexicon"
	"github.com/revelaction/polarity/storage"
	"github.com/revelaction/polarity/storage/filesystem"
	"github.com/revelaction/polarity/storage/sqlite/zombiezen"
)

// lexiconRepository sends each path to the YAML or the SQLite store.
type lexiconRepository struct {
	file *filesystem.LexiconStore
	db   *zombiezen.LexiconStore
}

var _ storage.LexiconRepository = (*lexiconRepository)(nil)

func NewLexiconRepository(p *Pool) storage.LexiconRepository {
	return &lexiconRepository{
		file: filesystem.NewLexiconStore(),
		db:   zombiezen.NewLexiconStore(p.Open),
	}
}

func (r *lexiconRepository) ReadSource(path string) (lexicon.Source, error) {
	if storage.IsDatabase(path) {
		return r.db.ReadSource(path)
	}

	return r.file.ReadSource(path)
}

func (r *lexiconRepository) WriteSource(path string, src lexicon.Source) error {
	if storage.IsDatabase(path) {
		return r.db.WriteSource(path, src)
	}

	return r.file.WriteSource(path, src)
}

func newLogger(level string, w io.Writer) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "polarity",
	})

	if level == "" {
		return logger, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(lvl)

	return logger, nil
}

// loadLexicon reads and merges the lexicon paths. With more than one path
// a progress bar is written to ui.Err.
func loadLexicon(repo storage.LexiconReader, paths []string, ui UI) (*lexicon.Lexicon, error) {
	if len(paths) < 2 || ui.Err != os.Stderr {
		return lexicon.Load(repo, paths, nil)
	}

	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	progress.Start()
	defer progress.Stop()

	bar := progress.AddBar(len(paths))
	bar.AppendCompleted()
	bar.PrependElapsed()

	// Append lexicon name to the progress bar
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return paths[max(b.Current()-1, 0)]
	})

	return lexicon.Load(repo, paths, func(total int, name string) {
		bar.Incr()
	})
}
