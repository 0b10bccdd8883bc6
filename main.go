package main

import (
	"errors"
	"fmt"
	"os"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and maps its error to an exit code.
func run(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", r)
			code = ExitFailure
		}
	}()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	var ece *exitCodeError
	if errors.As(err, &ece) {
		if ece.msg != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), ece.msg)
		}
		return ece.code
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Unexpected error: %v\n", err)
	return ExitFailure
}
