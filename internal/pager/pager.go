// Package pager streams a rendered document into an interactive pager process.
package pager

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// DefaultCommand and DefaultArgs start less with ANSI passthrough (-R), the
// whole stream loaded and the view back at the top (+Gg), and no '~' filler
// after end of file (-~).
const DefaultCommand = "less"

var DefaultArgs = []string{"-R", "+Gg", "-~"}

// Error reports a pager failure. Op is "launch", "write" or "wait".
type Error struct {
	Op      string
	Command string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pager %s %s: %v", e.Command, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Pager runs Command with Args. Stdout and Stderr default to the terminal.
type Pager struct {
	Command string
	Args    []string
	Stdout  io.Writer
	Stderr  io.Writer
}

// Page writes doc to the pager's stdin, closes it and waits for the pager to
// exit. Once the pager has started it is always waited for, and its stdin is
// always closed first so it sees EOF. A non-zero exit after a complete write is
// not an error.
func (p *Pager) Page(doc string) error {
	cmd := exec.Command(p.Command, p.Args...)
	cmd.Env = os.Environ()
	cmd.Stdout = p.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = p.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &Error{Op: "launch", Command: p.Command, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return &Error{Op: "launch", Command: p.Command, Err: err}
	}

	_, writeErr := io.WriteString(stdin, doc)
	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	if writeErr != nil {
		return &Error{Op: "write", Command: p.Command, Err: writeErr}
	}
	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		return &Error{Op: "write", Command: p.Command, Err: closeErr}
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return &Error{Op: "wait", Command: p.Command, Err: waitErr}
	}
	return nil
}
