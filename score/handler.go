package score

import (
	sent "github.com/revelaction/polarity/sentence"
)

type Handler struct {
	stats Stats
}

// Stats summarizes the scoring of a set of tagged sentences.
type Stats struct {
	NumSentences int
	NumTokens    int

	// Number of positive and negative labels found
	NumPositive int
	NumNegative int

	// SentenceScores has one score per sentence, in input order.
	SentenceScores []int

	Score int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	return &Handler{}
}

// Aggregate adds the sentences to the statistics. It can be called more than
// once; the results accumulate.
func (h *Handler) Aggregate(sentences []sent.Sentence) {
	h.stats.NumSentences += len(sentences)

	for _, s := range sentences {
		h.stats.NumTokens += len(s.Tokens)

		for _, t := range s.Tokens {
			for _, tag := range t.Tags {
				switch ValueOf(tag) {
				case 1:
					h.stats.NumPositive++
				case -1:
					h.stats.NumNegative++
				}
			}
		}

		sc := Sentence(s)
		h.stats.SentenceScores = append(h.stats.SentenceScores, sc)
		h.stats.Score += sc
	}
}
