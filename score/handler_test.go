package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sent "github.com/revelaction/polarity/sentence"
)

func TestHandlerAggregate(t *testing.T) {
	h := NewHandler()
	h.Aggregate([]sent.Sentence{
		tagged([]string{"positive", "JJ"}, []string{"NN"}),
		tagged([]string{"negative"}, []string{"negative"}),
	})
	h.Aggregate([]sent.Sentence{tagged([]string{"positive"})})

	stats := h.Get()
	assert.Equal(t, 3, stats.NumSentences)
	assert.Equal(t, 5, stats.NumTokens)
	assert.Equal(t, 2, stats.NumPositive)
	assert.Equal(t, 2, stats.NumNegative)
	assert.Equal(t, []int{1, -2, 1}, stats.SentenceScores)
	assert.Equal(t, 0, stats.Score)
}

func TestHandlerEmpty(t *testing.T) {
	h := NewHandler()
	h.Aggregate(nil)

	stats := h.Get()
	assert.Equal(t, 0, stats.NumSentences)
	assert.Equal(t, 0, stats.Score)
}
