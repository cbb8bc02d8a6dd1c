package search

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

// Searcher queries one package source.
type Searcher interface {
	Search(term string) ([]Record, error)
}

// Aggregator queries the three sources concurrently. A nil Searcher is a
// disabled source and contributes no records.
type Aggregator struct {
	System    Searcher
	User      Searcher
	Sandboxed Searcher
	Logger    *log.Logger
}

type slot struct {
	name     string
	searcher Searcher
}

// Aggregate never fails: a source that errors or panics leaves its slot empty
// and the other sources still contribute.
func (a *Aggregator) Aggregate(term string) Results {
	slots := []slot{
		{name: "system", searcher: a.System},
		{name: "user", searcher: a.User},
		{name: "sandboxed", searcher: a.Sandboxed},
	}

	ordered := make([][]Record, len(slots))
	var wg conc.WaitGroup
	for idx, s := range slots {
		if s.searcher == nil {
			a.logger().Debug("source disabled", "source", s.name)
			continue
		}
		wg.Go(func() {
			ordered[idx] = a.collect(s, term)
		})
	}
	wg.Wait()

	return Results{
		System:    ordered[0],
		User:      ordered[1],
		Sandboxed: ordered[2],
	}
}

func (a *Aggregator) collect(s slot, term string) []Record {
	started := time.Now()
	var (
		records []Record
		err     error
		pc      panics.Catcher
	)
	pc.Try(func() {
		records, err = s.searcher.Search(term)
	})

	logger := a.logger().With("source", s.name, "duration", time.Since(started))
	if r := pc.Recovered(); r != nil {
		logger.Debug("search panicked", "panic", r.Value)
		return nil
	}
	if err != nil {
		logger.Debug("search failed", "err", err)
		return nil
	}
	logger.Debug("search finished", "records", len(records))
	return records
}

func (a *Aggregator) logger() *log.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return log.Default()
}
