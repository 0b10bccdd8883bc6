package main

// Exit codes for the cofounder CLI.
const (
	ExitOK          = 0 // Clean shutdown, including interrupt.
	ExitFailure     = 1 // Configuration error or unexpected fault.
	ExitNoPortFound = 2 // Every candidate port was unavailable; no server started.
)

// exitCodeError carries a specific exit code up to main.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }
