package pager

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPageWritesDocumentAndArgs(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "paged")
	argsFile := filepath.Join(dir, "args")
	writeMockExecutable(t, dir, "less", `#!/bin/sh
printf '%s\n' "$@" > "`+argsFile+`"
cat > "`+outFile+`"
`)

	p := &Pager{Command: filepath.Join(dir, "less"), Args: DefaultArgs, Stdout: io.Discard, Stderr: io.Discard}
	doc := "System: 1 package\n\n\x1b[1;34mfoo\x1b[0m\n  A foo.\n\n"
	if err := p.Page(doc); err != nil {
		t.Fatalf("Page returned error: %v", err)
	}

	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read paged output: %v", err)
	}
	if string(got) != doc {
		t.Fatalf("pager received %q, want %q", got, doc)
	}

	args, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read pager args: %v", err)
	}
	if strings.TrimSpace(string(args)) != "-R\n+Gg\n-~" {
		t.Fatalf("pager args = %q, want -R +Gg -~", args)
	}
}

func TestPageIgnoresNonZeroExit(t *testing.T) {
	dir := t.TempDir()
	writeMockExecutable(t, dir, "less", `#!/bin/sh
cat > /dev/null
exit 3
`)

	p := &Pager{Command: filepath.Join(dir, "less"), Stdout: io.Discard, Stderr: io.Discard}
	if err := p.Page("hello\n"); err != nil {
		t.Fatalf("Page returned error for non-zero exit: %v", err)
	}
}

func TestPageLaunchFailure(t *testing.T) {
	p := &Pager{Command: filepath.Join(t.TempDir(), "no-such-pager")}
	err := p.Page("hello\n")
	if err == nil {
		t.Fatal("expected launch error")
	}
	var pagerErr *Error
	if !errors.As(err, &pagerErr) {
		t.Fatalf("error = %T (%v), want *Error", err, err)
	}
	if pagerErr.Op != "launch" {
		t.Fatalf("Op = %q, want launch", pagerErr.Op)
	}
}

func TestPageWriteFailureStillWaits(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "exited")
	// Exits without reading, so a large write hits a closed pipe.
	writeMockExecutable(t, dir, "less", `#!/bin/sh
exec 0<&-
touch "`+marker+`"
exit 0
`)

	p := &Pager{Command: filepath.Join(dir, "less"), Stdout: io.Discard, Stderr: io.Discard}
	err := p.Page(strings.Repeat("x", 4<<20))
	if err == nil {
		t.Fatal("expected write error")
	}
	var pagerErr *Error
	if !errors.As(err, &pagerErr) || pagerErr.Op != "write" {
		t.Fatalf("error = %v, want write *Error", err)
	}
	if _, statErr := os.Stat(marker); statErr != nil {
		t.Fatalf("pager was not waited for: %v", statErr)
	}
}

func writeMockExecutable(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write mock executable %s: %v", name, err)
	}
}
