package main

import (
	"TriDiff/internal/source"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// runError marks failures that happen after the arguments were accepted.
type runError struct{ err error }

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// run executes the command and maps the outcome to an exit code:
// 0 success, 1 length mismatch or I/O failure, 2 bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var lm *source.LengthMismatchError
	if errors.As(err, &lm) {
		_, _ = fmt.Fprintln(stdout, lm.Error())
		return 1
	}

	var re *runError
	if errors.As(err, &re) {
		log.Error().Err(re.err).Msg("ddd failed")
		return 1
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n%s", err, cmd.UsageString())
	return 2
}
