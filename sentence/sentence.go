package sentence

import "strings"

// Doc is an analyzed unit of text, usually one chapter.
type Doc struct {
	// Title is the path the document was read from, if any.
	Title string `json:"title,omitempty"`

	Sentences []Sentence `json:"sentences"`
}

// Sentence is an ordered sequence of tokens. The order is the reading order
// and is preserved by every transformation.
type Sentence struct {
	// Id is the index of the sentence inside of the doc.
	Id int `json:"id"`

	// The unmodified sentence text, as returned by the segmenter.
	Text string `json:"text,omitempty"`

	Tokens []Token `json:"tokens"`

	// Entities contains the surface text of the named-entity chunks
	// recognized in the sentence, in reading order.
	Entities []string `json:"entities,omitempty"`
}

// Token represents a word (or a fused expression) of the sentence.
//
// A POS-tagged token has one tag, the part-of-speech code. A token fused by
// the tagger carries the lexicon labels of the matched expression.
type Token struct {
	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	Tags []string `json:"tags"`

	// The index of the first source token in the sentence, starting at 0.
	Index int `json:"index"`

	// Span is the number of source tokens covered by the token.
	Span int `json:"span,omitempty"`
}

// Width returns the number of source tokens covered by t. Tokens that never
// went through the tagger cover exactly one.
func (t Token) Width() int {
	if t.Span == 0 {
		return 1
	}

	return t.Span
}

// Words returns the surface forms of the sentence tokens.
func (s Sentence) Words() []string {
	words := make([]string, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		words = append(words, t.Text)
	}

	return words
}

// String joins the token texts with a single space.
func (s Sentence) String() string {
	return strings.Join(s.Words(), " ")
}
