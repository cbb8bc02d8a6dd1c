package main

import "strconv"

// exitError ends pd with code. Its message, if any, is printed as is, without
// the "pd: " prefix other errors get.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit " + strconv.Itoa(e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// ExitCode is the process status to exit with.
func (e *exitError) ExitCode() int { return e.code }
