package flatpak

import (
	"strings"

	"github.com/Timmy6942025/pd/internal/search"
)

// ParseSearch reads the tab-separated output of flatpak search. The first line
// is the column header and is dropped. Each row needs at least the name and a
// second column; the optional third column is the description.
//
// flatpak matches on more than the application name, so rows whose name does
// not contain term (case-insensitive) are filtered out here.
func ParseSearch(out, term string) []search.Record {
	query := strings.ToLower(term)
	rows := make([]search.Record, 0)
	for i, line := range search.SplitLines(out) {
		if i == 0 || line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 2 {
			continue
		}
		name := parts[0]
		if name == "" || !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		desc := ""
		if len(parts) == 3 {
			desc = parts[2]
		}
		rows = append(rows, search.NewRecord(name, desc))
	}
	return rows
}
