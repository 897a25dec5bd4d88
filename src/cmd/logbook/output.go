// FILE: logbook/src/cmd/logbook/output.go
package main

import (
	"fmt"
	"io"
	"os"
)

// processOutput carries messages from main itself, not from commands.
// Quiet mode silences it.
type processOutput struct {
	quiet  bool
	stdout io.Writer
	stderr io.Writer
}

var output = &processOutput{stdout: os.Stdout, stderr: os.Stderr}

func (o *processOutput) printf(w io.Writer, format string, args ...any) {
	if !o.quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// FatalError reports on stderr, flushes the logger and exits with code
func FatalError(code int, format string, args ...any) {
	output.printf(output.stderr, format, args...)
	shutdownLogger()
	os.Exit(code)
}
