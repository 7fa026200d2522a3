package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/polarity/lexicon"
	"github.com/revelaction/polarity/storage"
)

// LexiconStore reads and writes YAML lexicon files. A file is a mapping
// from expression to a label or a list of labels:
//
//	good: positive
//	not good: [negative]
//	well done:
//	  - positive
type LexiconStore struct{}

var _ storage.LexiconRepository = (*LexiconStore)(nil)

func NewLexiconStore() *LexiconStore {
	return &LexiconStore{}
}

func (ls *LexiconStore) ReadSource(path string) (lexicon.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lexicon.Source{}, fmt.Errorf("IO error: %w", err)
	}

	entries, err := ParseLexicon(data)
	if err != nil {
		return lexicon.Source{}, fmt.Errorf("YAML decoding error: %w", err)
	}

	return lexicon.Source{Name: path, Entries: entries}, nil
}

// ParseLexicon decodes a YAML lexicon document. Keys are taken verbatim, so
// words like "yes" or "true" stay words.
func ParseLexicon(data []byte) ([]lexicon.Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	// empty document
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: lexicon must be a mapping of expression to labels", root.Line)
	}

	entries := make([]lexicon.Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: expression must be a scalar", key.Line)
		}

		labels, err := decodeLabels(value)
		if err != nil {
			return nil, fmt.Errorf("line %d: expression %q: %w", value.Line, key.Value, err)
		}

		entries = append(entries, lexicon.Entry{Expression: key.Value, Labels: labels})
	}

	return entries, nil
}

func decodeLabels(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, errors.New("missing label")
		}
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return nil, errors.New("empty label list")
		}
		labels := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, errors.New("labels must be scalars")
			}
			labels = append(labels, item.Value)
		}
		return labels, nil
	}

	return nil, errors.New("labels must be a label or a list of labels")
}

func (ls *LexiconStore) WriteSource(path string, src lexicon.Source) error {
	data, err := FormatLexicon(src.Entries)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// FormatLexicon encodes entries as a YAML lexicon document, one expression
// per line with the labels in flow style. Words that YAML would read as
// another type ("true", "1") are quoted.
func FormatLexicon(entries []lexicon.Entry) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		labels := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, l := range e.Labels {
			labels.Content = append(labels.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: l})
		}

		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Expression},
			labels,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
