// Package flatpak searches the configured Flatpak remotes.
package flatpak

import (
	"github.com/Timmy6942025/pd/internal/runner"
	"github.com/Timmy6942025/pd/internal/search"
)

// Searcher runs flatpak search <term>.
type Searcher struct {
	runner runner.Runner
}

func New(r runner.Runner) *Searcher {
	return &Searcher{runner: r}
}

func (s *Searcher) Search(term string) ([]search.Record, error) {
	out, err := s.runner.Run("flatpak", "search", term)
	if err != nil {
		return nil, err
	}
	return ParseSearch(out, term), nil
}
