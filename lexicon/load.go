package lexicon

import (
	"fmt"
)

// Reader reads a lexicon source from a path.
type Reader interface {
	ReadSource(path string) (Source, error)
}

// LoadError is returned when a document or lexicon path is missing or its
// content can not be parsed. It is fatal for a run.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads all paths with r and merges them, in order, into a Lexicon.
// The progress callback, if not nil, is called before each path is read.
func Load(r Reader, paths []string, progress func(total int, name string)) (*Lexicon, error) {
	sources := make([]Source, 0, len(paths))

	for _, path := range paths {
		if progress != nil {
			progress(len(paths), path)
		}

		src, err := r.ReadSource(path)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		sources = append(sources, src)
	}

	return New(sources...), nil
}
