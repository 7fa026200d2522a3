package zombiezen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/polarity/lexicon"
)

func testOpener(t *testing.T) func(string) (*sqlitex.Pool, error) {
	pools := map[string]*sqlitex.Pool{}
	t.Cleanup(func() {
		for _, p := range pools {
			p.Close()
		}
	})

	return func(path string) (*sqlitex.Pool, error) {
		if p, ok := pools[path]; ok {
			return p, nil
		}
		p, err := NewPool(path)
		if err != nil {
			return nil, err
		}
		pools[path] = p
		return p, nil
	}
}

func TestLexiconStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")
	store := NewLexiconStore(testOpener(t))

	src := lexicon.Source{Entries: []lexicon.Entry{
		{Expression: "not good", Labels: []string{"negative"}},
		{Expression: "good", Labels: []string{"positive", "JJ"}},
		{Expression: "well done", Labels: []string{"positive"}},
	}}

	require.NoError(t, store.WriteSource(path, src))

	got, err := store.ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, path, got.Name)
	assert.Equal(t, src.Entries, got.Entries)
}

func TestLexiconStoreReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")
	store := NewLexiconStore(testOpener(t))

	first := lexicon.Source{Entries: []lexicon.Entry{{Expression: "bad", Labels: []string{"negative"}}}}
	second := lexicon.Source{Entries: []lexicon.Entry{{Expression: "fine", Labels: []string{"positive"}}}}

	require.NoError(t, store.WriteSource(path, first))
	require.NoError(t, store.WriteSource(path, second))

	got, err := store.ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, second.Entries, got.Entries)
}

func TestLexiconStoreMissing(t *testing.T) {
	store := NewLexiconStore(testOpener(t))

	_, err := store.ReadSource(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}
