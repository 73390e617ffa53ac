package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestFile(t *testing.T) *FileStore {
	t.Helper()
	store, err := OpenFile(filepath.Join(t.TempDir(), "scores.txt"))
	require.NoError(t, err)
	return store
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := openTestFile(t)

	entries, err := store.Leaderboard(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := openTestFile(t)
	require.NoError(t, store.SaveScore("alice", 12))
	require.NoError(t, store.SaveScore("bob", 30))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "alice: 12\nbob: 30\n", string(data))

	entries, err := store.Leaderboard(0)
	require.NoError(t, err)
	assert.Equal(t, []ScoreEntry{{Name: "bob", Score: 30}, {Name: "alice", Score: 12}}, entries)
}

func TestFileStoreSanitizesNames(t *testing.T) {
	store := openTestFile(t)
	require.NoError(t, store.SaveScore("", 1))
	require.NoError(t, store.SaveScore("  eve\nmallory: 999\n ", 2))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "Anonymous: 1\nevemallory: 999: 2\n", string(data))

	entries, err := store.Leaderboard(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ScoreEntry{Name: "evemallory: 999", Score: 2}, entries[0])
	assert.Equal(t, ScoreEntry{Name: AnonymousName, Score: 1}, entries[1])
}

func TestFileStoreSkipsMalformedLines(t *testing.T) {
	store := openTestFile(t)
	content := "" +
		"alice: 5\n" +
		"no separator here\n" +
		"bob: lots\n" +
		"carol: -3\n" +
		"\n" +
		"dave:7\n" +
		"erin: 9\r\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o644))

	entries, err := store.Leaderboard(0)
	require.NoError(t, err)
	assert.Equal(t, []ScoreEntry{{Name: "erin", Score: 9}, {Name: "alice", Score: 5}}, entries)
}

func TestFileStoreStableTiesAndLimit(t *testing.T) {
	store := openTestFile(t)
	for _, e := range []ScoreEntry{
		{Name: "first", Score: 10},
		{Name: "low", Score: 1},
		{Name: "second", Score: 10},
		{Name: "third", Score: 10},
	} {
		require.NoError(t, store.SaveScore(e.Name, e.Score))
	}

	entries, err := store.Leaderboard(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Name)
	assert.Equal(t, "second", entries[1].Name)
	assert.Equal(t, "third", entries[2].Name)

	st, err := Summarize(store)
	require.NoError(t, err)
	assert.Equal(t, 4, st.Games)
	assert.Equal(t, 10, st.Best)
	assert.InDelta(t, 7.75, st.Average, 0.001)
}

func TestFileStoreConcurrentSaves(t *testing.T) {
	store := openTestFile(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, store.SaveScore("p", n))
		}(i)
	}
	wg.Wait()

	entries, err := store.Leaderboard(0)
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}
