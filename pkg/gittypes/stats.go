package gittypes

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// FileStats counts the changes made to a single file.
type FileStats struct {
	Insertions int `json:"insertions" yaml:"insertions"`
	Deletions  int `json:"deletions" yaml:"deletions"`
	// Lines is Insertions + Deletions.
	Lines int `json:"lines" yaml:"lines"`
}

// TotalStats aggregates [FileStats] over every changed file.
type TotalStats struct {
	Insertions int `json:"insertions" yaml:"insertions"`
	Deletions  int `json:"deletions" yaml:"deletions"`
	Lines      int `json:"lines" yaml:"lines"`
	// Files is the number of changed files.
	Files int `json:"files" yaml:"files"`
}

// Stats reports the changes of a diff, in total and per file path.
type Stats struct {
	Total TotalStats           `json:"total" yaml:"total"`
	Files map[string]FileStats `json:"files" yaml:"files"`
}

// NewStats returns empty [Stats].
func NewStats() Stats {
	return Stats{Files: map[string]FileStats{}}
}

// Add records ins insertions and del deletions for path. Repeated paths are
// accumulated.
func (s *Stats) Add(path string, ins, del int) {
	if s.Files == nil {
		s.Files = map[string]FileStats{}
	}
	fs, ok := s.Files[path]
	if !ok {
		s.Total.Files++
	}
	fs.Insertions += ins
	fs.Deletions += del
	fs.Lines = fs.Insertions + fs.Deletions
	s.Files[path] = fs

	s.Total.Insertions += ins
	s.Total.Deletions += del
	s.Total.Lines = s.Total.Insertions + s.Total.Deletions
}

// ParseNumstat decodes the output of `git diff --numstat`. Binary files,
// reported as "-", count as zero changed lines.
func ParseNumstat(text string) (Stats, error) {
	stats := NewStats()
	sc := bufio.NewScanner(strings.NewReader(text))
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 || fields[2] == "" {
			return Stats{}, fmt.Errorf("%w: line %d: %q", ErrInvalidNumstat, n, line)
		}
		ins, err := parseNumstatCount(fields[0])
		if err != nil {
			return Stats{}, fmt.Errorf("%w: line %d: insertions: %w", ErrInvalidNumstat, n, err)
		}
		del, err := parseNumstatCount(fields[1])
		if err != nil {
			return Stats{}, fmt.Errorf("%w: line %d: deletions: %w", ErrInvalidNumstat, n, err)
		}
		stats.Add(fields[2], ins, del)
	}
	if err := sc.Err(); err != nil {
		return Stats{}, fmt.Errorf("reading numstat: %w", err)
	}
	return stats, nil
}

func parseNumstatCount(s string) (int, error) {
	if s == "-" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}
