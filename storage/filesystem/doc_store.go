package filesystem

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/revelaction/polarity/storage"
)

type DocStore struct{}

var _ storage.DocReader = (*DocStore)(nil)

func NewDocStore() *DocStore {
	return &DocStore{}
}

// ReadDocument reads the whole file at path. The content must be UTF-8.
func (ds *DocStore) ReadDocument(path string) (string, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("IO error: %w", err)
	}

	if !utf8.Valid(f) {
		return "", fmt.Errorf("document %s is not valid UTF-8", path)
	}

	return string(f), nil
}
