package score

import (
	"github.com/samber/lo"

	sent "github.com/revelaction/polarity/sentence"
)

const (
	Positive = "positive"
	Negative = "negative"
)

// ValueOf is the contribution of a polarity label to a score.
func ValueOf(label string) int {
	switch label {
	case Positive:
		return 1
	case Negative:
		return -1
	}

	return 0
}

// Token returns the sum of the values of the token tags.
func Token(t sent.Token) int {
	return lo.SumBy(t.Tags, ValueOf)
}

// Sentence returns the sum of the token scores of s.
func Sentence(s sent.Sentence) int {
	return lo.SumBy(s.Tokens, Token)
}

// Document returns the sum of the sentence scores.
func Document(sentences []sent.Sentence) int {
	return lo.SumBy(sentences, Sentence)
}
