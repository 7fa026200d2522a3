package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPOSTagged(t *testing.T) {
	a := Analysis{
		Text:   "Ron smiled",
		Words:  []string{"Ron", "smiled"},
		Tagged: []TaggedWord{{Text: "Ron", Pos: "NNP"}, {Text: "smiled", Pos: "VBD"}},
	}

	tokens := POSTagged(a)

	require.Len(t, tokens, 2)
	assert.Equal(t, "smiled", tokens[1].Text)
	assert.Equal(t, "smiled", tokens[1].Lemma)
	assert.Equal(t, []string{"VBD"}, tokens[1].Tags)
	assert.Equal(t, 1, tokens[1].Index)
	assert.Equal(t, 1, tokens[1].Span)
}

func TestSentences(t *testing.T) {
	analyses := []Analysis{
		{
			Text:   "Ron smiled.",
			Tagged: []TaggedWord{{"Ron", "NNP"}, {"smiled", "VBD"}, {".", "."}},
			Tree: &Chunk{Label: "S", Children: []*Chunk{
				{Label: EntityLabel, Children: []*Chunk{leaf("Ron", "NNP")}},
				leaf("smiled", "VBD"),
				leaf(".", "."),
			}},
		},
		{Text: "It rained.", Tagged: []TaggedWord{{"It", "PRP"}, {"rained", "VBD"}, {".", "."}}},
	}

	sentences := Sentences(analyses)

	require.Len(t, sentences, 2)
	assert.Equal(t, 0, sentences[0].Id)
	assert.Equal(t, []string{"Ron"}, sentences[0].Entities)
	assert.Equal(t, []string{"Ron", "smiled", "."}, sentences[0].Words())
	assert.Equal(t, 1, sentences[1].Id)
	assert.Empty(t, sentences[1].Entities)
	assert.Empty(t, Sentences(nil))
}

func TestProseSegment(t *testing.T) {
	p, err := NewProse()
	require.NoError(t, err)

	got := p.Segment("Harry looked up. Ron was grinning.\n\n")
	assert.Equal(t, []string{"Harry looked up.", "Ron was grinning."}, got)
	assert.Empty(t, p.Segment("   \n"))
}

func TestProseAnalyzeCancelled(t *testing.T) {
	p, err := NewProse()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Analyze(ctx, "Harry looked up.")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProseAnalyze(t *testing.T) {
	p, err := NewProse()
	require.NoError(t, err)

	analyses, err := p.Analyze(context.Background(), "Harry looked up. Ron was grinning.")
	require.NoError(t, err)
	require.Len(t, analyses, 2)

	for _, a := range analyses {
		assert.Len(t, a.Tagged, len(a.Words))
		assert.Equal(t, a.Words, a.Tree.Words())
	}
	assert.Equal(t, "Harry", analyses[0].Words[0])
}
