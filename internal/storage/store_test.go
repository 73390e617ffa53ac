package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	fs, err := Open(BackendFile, filepath.Join(dir, "scores.txt"))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, fs)
	require.NoError(t, fs.Close())

	db, err := Open(BackendSQLite, filepath.Join(dir, "scores.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, db)
	require.NoError(t, db.Close())

	_, err = Open("redis", filepath.Join(dir, "x"))
	assert.Error(t, err)
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := OpenFile("~/.snake/scores.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".snake", "scores.txt"), store.Path())
	assert.DirExists(t, filepath.Join(home, ".snake"))
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open(BackendFile, "")
	assert.Error(t, err)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"alice", "alice"},
		{"  bob  ", "bob"},
		{"", AnonymousName},
		{" \r\n\t", AnonymousName},
		{"a\nb", "ab"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, SanitizeName(tc.in), "SanitizeName(%q)", tc.in)
	}
}
