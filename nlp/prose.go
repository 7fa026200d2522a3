package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Prose is the Analyzer backed by the punkt sentence segmenter and the prose
// tokenizer, averaged perceptron tagger and entity extracter.
type Prose struct {
	segmenter *sentences.DefaultSentenceTokenizer
}

var _ Analyzer = (*Prose)(nil)

func NewProse() (*Prose, error) {
	segmenter, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load english punkt model: %w", err)
	}

	return &Prose{segmenter: segmenter}, nil
}

// Segment splits text into trimmed, non-empty sentences.
func (p *Prose) Segment(text string) []string {
	var out []string
	for _, s := range p.segmenter.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}

	return out
}

func (p *Prose) Analyze(ctx context.Context, text string) ([]Analysis, error) {
	var analyses []Analysis

	for _, s := range p.Segment(text) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		doc, err := prose.NewDocument(s, prose.WithSegmentation(false))
		if err != nil {
			return nil, fmt.Errorf("failed to analyze sentence %q: %w", s, err)
		}

		tokens := doc.Tokens()
		a := Analysis{Text: s, Tree: chunkTree(tokens)}
		for _, tok := range tokens {
			a.Words = append(a.Words, tok.Text)
			a.Tagged = append(a.Tagged, TaggedWord{Text: tok.Text, Pos: tok.Tag})
		}

		analyses = append(analyses, a)
	}

	return analyses, nil
}

// chunkTree folds the IOB entity labels of the tokens into a binary chunk
// tree: every entity, whatever its type, becomes an NE subtree of the root.
func chunkTree(tokens []prose.Token) *Chunk {
	root := &Chunk{Label: "S"}

	var current *Chunk
	for _, tok := range tokens {
		leaf := &Chunk{Label: tok.Tag, Text: tok.Text}

		switch {
		case strings.HasPrefix(tok.Label, "B-"):
			current = &Chunk{Label: EntityLabel}
			root.Children = append(root.Children, current)
		case strings.HasPrefix(tok.Label, "I-") && current != nil:
			// continue the open entity
		case strings.HasPrefix(tok.Label, "I-"):
			// an I- label without B- starts an entity
			current = &Chunk{Label: EntityLabel}
			root.Children = append(root.Children, current)
		default:
			current = nil
		}

		if current != nil {
			current.Children = append(current.Children, leaf)
			continue
		}

		root.Children = append(root.Children, leaf)
	}

	return root
}
