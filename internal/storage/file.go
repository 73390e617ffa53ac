package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// scoreSep separates name and score on each line.
const scoreSep = ": "

// FileStore keeps scores as "name: score" lines in a text file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// OpenFile returns a store backed by the text file at path.
// The file itself is created on the first save.
func OpenFile(path string) (*FileStore, error) {
	p, err := preparePath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: p}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// SaveScore appends one line to the file.
func (s *FileStore) SaveScore(name string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open %s: %w", s.path, err)
	}
	if _, err := fmt.Fprintf(f, "%s%s%d\n", SanitizeName(name), scoreSep, score); err != nil {
		f.Close()
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Leaderboard reads the whole file and returns the best entries.
// Lines that do not parse are skipped. Ties keep file order.
func (s *FileStore) Leaderboard(limit int) ([]ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open %s: %w", s.path, err)
	}
	defer f.Close()

	var entries []ScoreEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if e, ok := parseLine(sc.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Close is a no-op; the file is opened per call.
func (s *FileStore) Close() error {
	return nil
}

// parseLine splits at the last separator so names may contain ": ".
func parseLine(line string) (ScoreEntry, bool) {
	line = strings.TrimRight(line, "\r")
	i := strings.LastIndex(line, scoreSep)
	if i < 0 {
		return ScoreEntry{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(line[i+len(scoreSep):]))
	if err != nil || score < 0 {
		return ScoreEntry{}, false
	}
	return ScoreEntry{Name: line[:i], Score: score}, true
}

var _ ScoreStore = (*FileStore)(nil)
