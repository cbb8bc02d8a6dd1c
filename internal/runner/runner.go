package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Runner executes an external search tool and returns its decoded stdout.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// LaunchError reports that the program could not be started.
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IOError reports that the program started but its output could not be collected.
type IOError struct {
	Program string
	Err     error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s output: %v", e.Program, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ExecRunner runs programs on the local host. Stdin is the null device and
// stderr goes to Stderr, or to the terminal when Stderr is nil.
type ExecRunner struct {
	Stderr io.Writer
}

// Run does not inspect the exit status: search tools print partial results
// and exit non-zero on some conditions, and that output is still used.
func (r ExecRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", &IOError{Program: name, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return "", &LaunchError{Program: name, Err: err}
	}

	out, readErr := io.ReadAll(stdout)
	waitErr := cmd.Wait()
	if readErr != nil {
		return "", &IOError{Program: name, Err: readErr}
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return "", &IOError{Program: name, Err: waitErr}
	}

	return Decode(out), nil
}

// Decode converts tool output to text. Each maximal invalid subsequence
// becomes one U+FFFD, so "\xff\xfe" yields two and a truncated "\xe2\x82"
// yields one.
func Decode(out []byte) string {
	if utf8.Valid(out) {
		return string(out)
	}
	var b strings.Builder
	b.Grow(len(out) + 8)
	for len(out) > 0 {
		r, size := utf8.DecodeRune(out)
		if r == utf8.RuneError && size <= 1 {
			size = invalidLen(out)
			b.WriteRune(utf8.RuneError)
		} else {
			b.Write(out[:size])
		}
		out = out[size:]
	}
	return b.String()
}

// invalidLen returns how many bytes of p, which starts an invalid sequence,
// form the longest prefix of some valid encoding.
func invalidLen(p []byte) int {
	var n int
	switch b := p[0]; {
	case b >= 0xC2 && b <= 0xDF:
		n = 2
	case b >= 0xE0 && b <= 0xEF:
		n = 3
	case b >= 0xF0 && b <= 0xF4:
		n = 4
	default:
		return 1
	}

	lo, hi := byte(0x80), byte(0xBF)
	switch p[0] {
	case 0xE0:
		lo = 0xA0
	case 0xED:
		hi = 0x9F
	case 0xF0:
		lo = 0x90
	case 0xF4:
		hi = 0x8F
	}
	i := 1
	for ; i < n && i < len(p); i++ {
		if p[i] < lo || p[i] > hi {
			break
		}
		lo, hi = 0x80, 0xBF
	}
	return i
}
