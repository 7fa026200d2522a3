package entity

import (
	"strings"

	"github.com/samber/lo"

	sent "github.com/revelaction/polarity/sentence"
)

// Entity is a tracked name (f.ex. a character) and the surface forms the
// entity recognizer may report for it.
type Entity struct {

	// the canonical name
	Name string `yaml:"name" json:"name"`

	Aliases []string `yaml:"aliases" json:"aliases"`
}

// Table is the ordered collection of tracked entities.
type Table []Entity

// Names returns a list of all canonical names in the table
func (t Table) Names() []string {
	var names []string
	for _, e := range t {
		names = append(names, e.Name)
	}
	return names
}

// DefaultTable is the alias table of the three main characters of the
// Harry Potter chapters.
func DefaultTable() Table {
	return Table{
		{Name: "Harry", Aliases: []string{"harry", "harry potter", "potter"}},
		{Name: "Ron", Aliases: []string{"ron", "ronald", "weasley", "ron weasley", "ronald weasley"}},
		{Name: "Hermione", Aliases: []string{"hermione", "granger", "hermione granger", "hermione jean granger"}},
	}
}

// Filter assigns sentences to entities through their recognized names.
type Filter struct {
	table Table

	// alias (lower case) -> canonical names
	index map[string][]string
}

// Result of splitting a document by entity.
type Result struct {

	// Subsets contains, per canonical name, the sentences with at least one
	// recognized name that is an alias of the entity. Document order.
	Subsets map[string][]sent.Sentence

	// Unattributed are the recognized names that match no alias, lower
	// case, unique, in order of appearance.
	Unattributed []string
}

func NewFilter(table Table) *Filter {
	index := map[string][]string{}
	for _, e := range table {
		for _, alias := range e.Aliases {
			key := strings.ToLower(strings.TrimSpace(alias))
			if !lo.Contains(index[key], e.Name) {
				index[key] = append(index[key], e.Name)
			}
		}
	}

	return &Filter{table: table, index: index}
}

// Entities returns the canonical names recognized in one sentence, each at
// most once, in table order.
func (f *Filter) Entities(s sent.Sentence) []string {
	found := map[string]bool{}
	for _, name := range s.Entities {
		for _, canonical := range f.index[strings.ToLower(name)] {
			found[canonical] = true
		}
	}

	return lo.Filter(f.table.Names(), func(name string, _ int) bool {
		return found[name]
	})
}

// Split partitions the sentences by entity. A sentence may belong to zero,
// one or more entities, but at most once to each.
func (f *Filter) Split(sentences []sent.Sentence) Result {
	res := Result{Subsets: make(map[string][]sent.Sentence, len(f.table))}
	for _, name := range f.table.Names() {
		res.Subsets[name] = []sent.Sentence{}
	}

	for _, s := range sentences {
		for _, name := range f.Entities(s) {
			res.Subsets[name] = append(res.Subsets[name], s)
		}

		for _, name := range s.Entities {
			key := strings.ToLower(name)
			if _, ok := f.index[key]; !ok && !lo.Contains(res.Unattributed, key) {
				res.Unattributed = append(res.Unattributed, key)
			}
		}
	}

	return res
}
