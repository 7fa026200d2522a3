package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/polarity/sentence"
)

func sentence(id int, names ...string) sent.Sentence {
	return sent.Sentence{Id: id, Entities: names}
}

func ids(sentences []sent.Sentence) []int {
	out := []int{}
	for _, s := range sentences {
		out = append(out, s.Id)
	}
	return out
}

func TestSplitAliasOnce(t *testing.T) {
	f := NewFilter(DefaultTable())

	res := f.Split([]sent.Sentence{
		sentence(0, "Weasley", "Weasley", "Ron Weasley"),
	})

	assert.Equal(t, []int{0}, ids(res.Subsets["Ron"]))
	assert.Empty(t, res.Subsets["Harry"])
	assert.Empty(t, res.Subsets["Hermione"])
}

func TestSplitMultipleEntitiesStableOrder(t *testing.T) {
	f := NewFilter(DefaultTable())

	res := f.Split([]sent.Sentence{
		sentence(0, "Harry"),
		sentence(1, "HERMIONE", "Potter"),
		sentence(2),
		sentence(3, "Granger"),
		sentence(4, "Dumbledore"),
		sentence(5, "harry potter", "ron"),
	})

	assert.Equal(t, []int{0, 1, 5}, ids(res.Subsets["Harry"]))
	assert.Equal(t, []int{5}, ids(res.Subsets["Ron"]))
	assert.Equal(t, []int{1, 3}, ids(res.Subsets["Hermione"]))
	assert.Equal(t, []string{"dumbledore"}, res.Unattributed)
}

func TestSplitEmpty(t *testing.T) {
	res := NewFilter(DefaultTable()).Split(nil)

	require.Len(t, res.Subsets, 3)
	for _, name := range DefaultTable().Names() {
		assert.NotNil(t, res.Subsets[name])
		assert.Empty(t, res.Subsets[name])
	}
	assert.Empty(t, res.Unattributed)
}

func TestEntitiesTableOrder(t *testing.T) {
	f := NewFilter(DefaultTable())

	got := f.Entities(sentence(0, "Granger", "Ron", "Harry", "Ron"))
	assert.Equal(t, []string{"Harry", "Ron", "Hermione"}, got)
}

func TestSharedAlias(t *testing.T) {
	table := Table{
		{Name: "Fred", Aliases: []string{"fred", "weasley"}},
		{Name: "George", Aliases: []string{"George", " Weasley "}},
	}

	res := NewFilter(table).Split([]sent.Sentence{sentence(7, "weasley")})

	assert.Equal(t, []int{7}, ids(res.Subsets["Fred"]))
	assert.Equal(t, []int{7}, ids(res.Subsets["George"]))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"Harry", "Ron", "Hermione"}, DefaultTable().Names())
	assert.Empty(t, Table{}.Names())
}
