package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw    string
		want   log.Level
		wantOK bool
	}{
		{raw: "", want: log.WarnLevel, wantOK: false},
		{raw: "debug", want: log.DebugLevel, wantOK: true},
		{raw: " TRACE ", want: log.DebugLevel, wantOK: true},
		{raw: "info", want: log.InfoLevel, wantOK: true},
		{raw: "Warning", want: log.WarnLevel, wantOK: true},
		{raw: "error", want: log.ErrorLevel, wantOK: true},
		{raw: "off", want: Disabled, wantOK: true},
		{raw: "loud", want: log.WarnLevel, wantOK: false},
	}

	for _, tc := range tests {
		got, ok := ParseLevel(tc.raw)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Debug("search finished", "source", "system")
	if buf.Len() != 0 {
		t.Fatalf("debug message logged at warn level: %q", buf.String())
	}

	logger.Warn("config ignored")
	if !strings.Contains(buf.String(), "config ignored") {
		t.Fatalf("warn message missing: %q", buf.String())
	}
}

func TestNewDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "off")
	logger.Error("boom")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
}
