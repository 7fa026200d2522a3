package tagger

import (
	"strings"

	"github.com/revelaction/polarity/lexicon"
	sent "github.com/revelaction/polarity/sentence"
)

// Tagger fuses the contiguous tokens of a sentence that match a lexicon
// expression into a single token carrying the expression labels.
//
// The result is only one of all possible taggings. It is determined by two
// priority rules:
//
//   - longest matches have higher priority
//   - search is made from left to right
//
// A token consumed by a match is never examined again.
type Tagger struct {
	lexicon *lexicon.Lexicon
}

func New(lex *lexicon.Lexicon) *Tagger {
	return &Tagger{lexicon: lex}
}

// Tag tags each sentence. The returned slice has the input order.
func (t *Tagger) Tag(sentences []sent.Sentence) []sent.Sentence {
	tagged := make([]sent.Sentence, 0, len(sentences))
	for _, s := range sentences {
		tagged = append(tagged, t.TagSentence(s))
	}

	return tagged
}

// TagSentence returns a new sentence where lexicon matches are fused. The
// input sentence is not modified.
func (t *Tagger) TagSentence(s sent.Sentence) sent.Sentence {
	out := s
	out.Tokens = t.tagTokens(s.Tokens)
	return out
}

func (t *Tagger) tagTokens(tokens []sent.Token) []sent.Token {
	n := len(tokens)
	tagged := make([]sent.Token, 0, n)

	// An empty lexicon would give a zero window. Use the sentence length for
	// this call only; no lookup can succeed anyway.
	window := t.lexicon.MaxKeyLength()
	if window == 0 {
		window = n
	}

	i := 0
	for i < n {
		fused, ok := t.longestMatch(tokens, i, min(i+window, n))
		if !ok {
			tagged = append(tagged, tokens[i])
			i++
			continue
		}

		tagged = append(tagged, fused)
		i += fused.Span
	}

	return tagged
}

// longestMatch tries the windows [i, j) for j from end down to i+1 and
// returns the fused token of the first expression found.
func (t *Tagger) longestMatch(tokens []sent.Token, i, end int) (sent.Token, bool) {
	for j := end; j > i; j-- {
		form := joinLower(tokens[i:j], func(tk sent.Token) string { return tk.Text })

		labels, ok := t.lexicon.Lookup(form)
		if !ok {
			continue
		}

		// a single token keeps its previous tags after the labels
		if j-i == 1 {
			labels = append(labels, tokens[i].Tags...)
		}

		return sent.Token{
			Text:  form,
			Lemma: joinLower(tokens[i:j], func(tk sent.Token) string { return tk.Lemma }),
			Tags:  labels,
			Index: tokens[i].Index,
			Span:  j - i,
		}, true
	}

	return sent.Token{}, false
}

func joinLower(tokens []sent.Token, field func(sent.Token) string) string {
	parts := make([]string, len(tokens))
	for k, tk := range tokens {
		parts[k] = field(tk)
	}

	return strings.ToLower(strings.Join(parts, " "))
}
