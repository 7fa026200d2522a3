package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/polarity/lexicon"
	"github.com/revelaction/polarity/score"
	sent "github.com/revelaction/polarity/sentence"
)

func newLexicon(entries map[string][]string) *lexicon.Lexicon {
	src := lexicon.Source{}
	for expr, labels := range entries {
		src.Entries = append(src.Entries, lexicon.Entry{Expression: expr, Labels: labels})
	}
	return lexicon.New(src)
}

// posSentence builds a sentence of POS tagged tokens from word/tag pairs.
func posSentence(pairs ...string) sent.Sentence {
	s := sent.Sentence{}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Tokens = append(s.Tokens, sent.Token{
			Text:  pairs[i],
			Lemma: pairs[i],
			Tags:  []string{pairs[i+1]},
			Index: i / 2,
			Span:  1,
		})
	}
	return s
}

func TestLongestMatchWins(t *testing.T) {
	lex := newLexicon(map[string][]string{
		"good":     {"positive"},
		"not good": {"negative"},
	})

	got := New(lex).TagSentence(posSentence("not", "RB", "good", "JJ"))

	require.Len(t, got.Tokens, 1)
	assert.Equal(t, "not good", got.Tokens[0].Text)
	assert.Equal(t, "not good", got.Tokens[0].Lemma)
	assert.Equal(t, []string{"negative"}, got.Tokens[0].Tags)
	assert.Equal(t, 0, got.Tokens[0].Index)
	assert.Equal(t, 2, got.Tokens[0].Span)
	assert.Equal(t, -1, score.Sentence(got))
}

func TestSingleTokenKeepsTags(t *testing.T) {
	lex := newLexicon(map[string][]string{"good": {"positive"}})

	got := New(lex).TagSentence(posSentence("a", "DT", "Good", "JJ", "day", "NN"))

	require.Len(t, got.Tokens, 3)
	assert.Equal(t, "a", got.Tokens[0].Text)
	assert.Equal(t, []string{"DT"}, got.Tokens[0].Tags)
	assert.Equal(t, "good", got.Tokens[1].Text)
	assert.Equal(t, []string{"positive", "JJ"}, got.Tokens[1].Tags)
	assert.Equal(t, []string{"NN"}, got.Tokens[2].Tags)
}

func TestMultiTokenDropsTags(t *testing.T) {
	lex := newLexicon(map[string][]string{"well done": {"positive"}})

	got := New(lex).TagSentence(posSentence("Well", "RB", "done", "VBN"))

	require.Len(t, got.Tokens, 1)
	assert.Equal(t, []string{"positive"}, got.Tokens[0].Tags)
}

func TestLeftToRight(t *testing.T) {
	// "b c" would be longer at position 1 but "a b" consumes b first
	lex := newLexicon(map[string][]string{
		"a b":   {"positive"},
		"b c d": {"negative"},
	})

	got := New(lex).TagSentence(posSentence("a", "X", "b", "X", "c", "X", "d", "X"))

	assert.Equal(t, []string{"a b", "c", "d"}, got.Words())
}

func TestCoverage(t *testing.T) {
	lex := newLexicon(map[string][]string{
		"not":          {"negative"},
		"not very":     {"negative"},
		"very good":    {"positive"},
		"good":         {"positive"},
		"a very good":  {"positive"},
		"day of days":  {"positive"},
		"of":           {"neutral"},
		"not very bad": {"positive"},
	})

	tests := [][]string{
		{"not", "RB", "very", "RB", "good", "JJ"},
		{"a", "DT", "very", "RB", "good", "JJ", "day", "NN", "of", "IN", "days", "NNS"},
		{"not", "RB", "very", "RB", "bad", "JJ", "not", "RB"},
		{"nothing", "NN", "here", "RB"},
	}

	tg := New(lex)
	for _, pairs := range tests {
		in := posSentence(pairs...)
		got := tg.TagSentence(in)

		assert.LessOrEqual(t, len(got.Tokens), len(in.Tokens))

		next := 0
		for _, tk := range got.Tokens {
			assert.Equal(t, next, tk.Index, "tokens must be contiguous")
			next += tk.Width()
		}
		assert.Equal(t, len(in.Tokens), next, "tokens must cover the sentence")
	}
}

func TestEmptyLexicon(t *testing.T) {
	lex := lexicon.New()
	tg := New(lex)

	short := posSentence("not", "RB", "good", "JJ")
	got := tg.TagSentence(short)

	assert.Equal(t, short.Tokens, got.Tokens)
	assert.Equal(t, 0, score.Sentence(got))
	assert.Equal(t, 0, lex.MaxKeyLength(), "the window of one call is not stored")

	long := posSentence("it", "PRP", "was", "VBD", "not", "RB", "very", "RB", "good", "JJ", "at", "IN", "all", "DT")
	got = tg.TagSentence(long)

	assert.Equal(t, long.Tokens, got.Tokens)
	assert.Equal(t, 0, lex.MaxKeyLength())
}

func TestEmptySentence(t *testing.T) {
	lex := newLexicon(map[string][]string{"good": {"positive"}})

	got := New(lex).TagSentence(sent.Sentence{})
	assert.Empty(t, got.Tokens)
}

func TestDoesNotMutateInput(t *testing.T) {
	lex := newLexicon(map[string][]string{"good": {"positive"}})
	in := posSentence("good", "JJ")

	New(lex).TagSentence(in)

	assert.Equal(t, []string{"JJ"}, in.Tokens[0].Tags)
	labels, _ := lex.Lookup("good")
	assert.Equal(t, []string{"positive"}, labels)
}

func TestTagKeepsOrder(t *testing.T) {
	lex := newLexicon(map[string][]string{"good": {"positive"}})

	s1 := posSentence("good", "JJ")
	s1.Id = 4
	s2 := posSentence("bad", "JJ")
	s2.Id = 9

	got := New(lex).Tag([]sent.Sentence{s1, s2})

	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].Id)
	assert.Equal(t, 9, got[1].Id)
}
