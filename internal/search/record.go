// Package search holds the record model shared by the package sources and the
// aggregator that fans a search term out to them.
package search

import "strings"

// NoDescription is used when a source prints no usable description.
const NoDescription = "No description."

// Record is one package reported by a source.
type Record struct {
	Name        string
	Description string
}

// NewRecord builds a Record, trimming desc and falling back to NoDescription
// when it is blank.
func NewRecord(name, desc string) Record {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		desc = NoDescription
	}
	return Record{Name: name, Description: desc}
}

// Results groups records by source. Slot order is fixed: system, user, sandboxed.
type Results struct {
	System    []Record
	User      []Record
	Sandboxed []Record
}

// SplitLines splits tool output into lines, tolerating CRLF and a missing or
// repeated trailing newline.
func SplitLines(out string) []string {
	raw := strings.ReplaceAll(out, "\r\n", "\n")
	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}
