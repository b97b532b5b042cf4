package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadLines reads r line by line. A trailing "\r" is trimmed from every line
// and trailing blank lines are dropped; blank lines in the middle are kept.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: reading input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// InputPath returns the conventional input location for day inside dir.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("input%d.txt", day))
}

// ExamplePath returns the conventional example-input location for day inside dir.
func ExamplePath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("example%d.txt", day))
}
