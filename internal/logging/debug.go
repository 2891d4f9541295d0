package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var (
	verbose atomic.Bool

	// output is where debug lines go. Stdout belongs to the prompts.
	output io.Writer = os.Stderr
)

// SetVerbose forces debug output on regardless of TODO_DEBUG
func SetVerbose(v bool) {
	verbose.Store(v)
}

// SetOutput redirects debug output and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG or SetVerbose
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("TODO_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, "[debug] "+format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(output, append([]interface{}{"[debug]"}, args...)...)
	}
}
