// Package pacman searches the distribution repositories through pacman and the
// AUR through yay. Both tools print the same two-line-per-package format.
package pacman

import (
	"strings"

	"github.com/Timmy6942025/pd/internal/runner"
	"github.com/Timmy6942025/pd/internal/search"
)

// Searcher runs one pacman-compatible tool.
type Searcher struct {
	runner  runner.Runner
	program string
	args    []string
}

// NewSystem searches the signed distribution repositories: pacman -Ss <term>.
func NewSystem(r runner.Runner) *Searcher {
	return &Searcher{runner: r, program: "pacman", args: []string{"-Ss"}}
}

// NewUser searches the AUR only: yay -Ss --aur <term>.
func NewUser(r runner.Runner) *Searcher {
	return &Searcher{runner: r, program: "yay", args: []string{"-Ss", "--aur"}}
}

func (s *Searcher) Search(term string) ([]search.Record, error) {
	args := make([]string, 0, len(s.args)+1)
	args = append(args, s.args...)
	args = append(args, term)

	out, err := s.runner.Run(s.program, args...)
	if err != nil {
		return nil, err
	}
	return ParseSearch(out), nil
}

// ParseSearch reads pacman -Ss style output. Non-empty lines are paired as
// header and description; a header looks like "repo/name version [flags]".
// Pairs whose header lacks the repo prefix or the version are skipped.
func ParseSearch(out string) []search.Record {
	lines := make([]string, 0)
	for _, line := range search.SplitLines(out) {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	rows := make([]search.Record, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		name, ok := headerName(lines[i])
		if !ok {
			continue
		}
		rows = append(rows, search.NewRecord(name, lines[i+1]))
	}
	return rows
}

func headerName(head string) (string, bool) {
	_, rest, ok := strings.Cut(head, "/")
	if !ok {
		return "", false
	}
	name, _, ok := strings.Cut(rest, " ")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
