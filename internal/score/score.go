package score

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	Filename = "score.txt"
	FileType = "text/plain"

	prefix = "Score: "
)

func Text(score uint) string {
	return fmt.Sprintf("%s%d", prefix, score)
}

// Parse reads a score back from its text form.
func Parse(text string) (uint, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, prefix) {
		return 0, fmt.Errorf("malformed score %q", text)
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(text, prefix), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("malformed score %q: %w", text, err)
	}
	return uint(n), nil
}

// Store persists the final score of a game as a plain text file.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{Dir: dir}
}

func (s *Store) Path() string {
	return filepath.Join(s.Dir, Filename)
}

func (s *Store) Save(score uint) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create score dir: %w", err)
	}

	path := s.Path()
	if err := os.WriteFile(path, []byte(Text(score)), 0644); err != nil {
		return "", fmt.Errorf("failed to write score: %w", err)
	}
	return path, nil
}

func (s *Store) Load() (uint, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return 0, err
	}
	return Parse(string(data))
}
