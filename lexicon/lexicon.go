package lexicon

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Entry is one expression of a lexicon source with its polarity labels.
type Entry struct {
	Expression string   `yaml:"expression" json:"expression"`
	Labels     []string `yaml:"labels" json:"labels"`
}

// Source is a parsed lexicon file. Entries keep the file order.
type Source struct {
	// Name is the path (or database) the entries were read from.
	Name string

	Entries []Entry
}

// Lexicon is a merged mapping from a normalized multi word expression to its
// polarity labels. A Lexicon is immutable after New returns and is safe for
// concurrent readers.
type Lexicon struct {
	entries map[string][]string

	// maxKeyLength is the number of words of the longest expression
	maxKeyLength int
}

// New merges the sources, in order, into one Lexicon.
//
// Labels of an expression present in more than one source are appended to
// the labels already merged. Zero sources give an empty Lexicon.
func New(sources ...Source) *Lexicon {
	l := &Lexicon{entries: map[string][]string{}}

	for _, src := range sources {
		for _, e := range src.Entries {
			l.add(e.Expression, e.Labels)
		}
	}

	return l
}

func (l *Lexicon) add(expression string, labels []string) {
	key := Normalize(expression)
	if key == "" {
		return
	}

	if existing, ok := l.entries[key]; ok {
		l.entries[key] = append(existing, labels...)
		return
	}

	l.entries[key] = append([]string{}, labels...)
	l.maxKeyLength = max(l.maxKeyLength, WordCount(key))
}

// Normalize lower-cases the expression and joins its words with a single
// space.
func Normalize(expression string) string {
	return strings.Join(strings.Fields(strings.ToLower(expression)), " ")
}

// WordCount returns the number of whitespace separated words of s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Lookup returns a copy of the labels of a normalized key.
func (l *Lexicon) Lookup(key string) ([]string, bool) {
	labels, ok := l.entries[key]
	if !ok {
		return nil, false
	}

	return append([]string{}, labels...), true
}

// MaxKeyLength is the word count of the longest expression, 0 if the lexicon
// is empty.
func (l *Lexicon) MaxKeyLength() int {
	return l.maxKeyLength
}

func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Keys returns all expressions, sorted.
func (l *Lexicon) Keys() []string {
	keys := lo.Keys(l.entries)
	sort.Strings(keys)
	return keys
}

// WithPrefix returns the sorted expressions starting with prefix. Used by
// the interactive completers.
func (l *Lexicon) WithPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	return lo.Filter(l.Keys(), func(k string, _ int) bool {
		return strings.HasPrefix(k, prefix)
	})
}

// Source flattens the lexicon into one Source, expressions sorted. Labels
// merged from several sources are kept as they are, duplicates included.
func (l *Lexicon) Source(name string) Source {
	src := Source{Name: name}
	for _, k := range l.Keys() {
		src.Entries = append(src.Entries, Entry{Expression: k, Labels: append([]string{}, l.entries[k]...)})
	}

	return src
}
