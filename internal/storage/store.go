// Package storage persists finished games and serves the leaderboard.
// Two backends share one contract: an append-only text file and SQLite
// through the pure-Go modernc.org/sqlite driver.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AnonymousName is recorded when a player leaves the name empty.
const AnonymousName = "Anonymous"

// ScoreStore records scores and returns them best first.
type ScoreStore interface {
	// SaveScore appends one finished game.
	SaveScore(name string, score int) error
	// Leaderboard returns up to limit entries by score descending.
	// limit <= 0 returns everything.
	Leaderboard(limit int) ([]ScoreEntry, error)
	Close() error
}

// ScoreEntry represents a single leaderboard record.
type ScoreEntry struct {
	Name      string
	Score     int
	CreatedAt time.Time // zero for the file backend
}

// Backends accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open creates or opens a store of the given backend at path.
// A leading ~ is expanded and parent directories are created.
func Open(backend, path string) (ScoreStore, error) {
	switch backend {
	case BackendFile, "":
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// Best returns the top score in s, or 0 when it is empty.
func Best(s ScoreStore) (int, error) {
	top, err := s.Leaderboard(1)
	if err != nil {
		return 0, err
	}
	if len(top) == 0 {
		return 0, nil
	}
	return top[0].Score, nil
}

// SanitizeName trims the name and strips line breaks so one game stays one line.
func SanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" {
		return AnonymousName
	}
	return name
}

// preparePath expands ~ to the home directory and creates parent directories.
func preparePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("storage: empty path")
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
