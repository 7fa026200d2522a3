// Package nlp adapts the external NLP toolkit: sentence segmentation,
// tokenization, part-of-speech tagging and named-entity chunking.
package nlp

import (
	"context"

	sent "github.com/revelaction/polarity/sentence"
)

// TaggedWord is a word with its part-of-speech code.
type TaggedWord struct {
	Text string `json:"text"`
	Pos  string `json:"pos"`
}

// Analysis is the toolkit output for one sentence.
type Analysis struct {
	Text   string
	Words  []string
	Tagged []TaggedWord
	Tree   *Chunk
}

// Analyzer splits a raw text into analyzed sentences, in reading order.
type Analyzer interface {
	Analyze(ctx context.Context, text string) ([]Analysis, error)
}

// POSTagged converts the (word, pos) pairs of an analysis into tokens of the
// form (word, word, [pos]).
func POSTagged(a Analysis) []sent.Token {
	tokens := make([]sent.Token, 0, len(a.Tagged))
	for i, tw := range a.Tagged {
		tokens = append(tokens, sent.Token{
			Text:  tw.Text,
			Lemma: tw.Text,
			Tags:  []string{tw.Pos},
			Index: i,
			Span:  1,
		})
	}

	return tokens
}

// Sentences builds the document sentences of the analyses: POS-tagged tokens
// and the recognized entity names of each sentence.
func Sentences(analyses []Analysis) []sent.Sentence {
	sentences := make([]sent.Sentence, 0, len(analyses))
	for i, a := range analyses {
		sentences = append(sentences, sent.Sentence{
			Id:       i,
			Text:     a.Text,
			Tokens:   POSTagged(a),
			Entities: EntityNames(a.Tree),
		})
	}

	return sentences
}
