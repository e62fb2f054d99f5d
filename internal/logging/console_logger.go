// Package logging provides concrete implementations of the dretl.Logger interface.
package logging

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleLogger writes progress messages to stdout and diagnostics to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
	mu      sync.Mutex
}

// NewConsoleLoggerWithWriters creates a ConsoleLogger writing Info to out
// and Verbose, Warn and Error to errOut.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLoggerWithWriters(verbose bool, out, errOut io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		out:     out,
		errOut:  errOut,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.errOut, "[VERBOSE] ", format, args)
}

// Info logs progress messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(l.out, "", format, args)
}

// Warn logs data-quality warnings.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write(l.errOut, "[WARN] ", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errOut, "[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(w io.Writer, prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(w, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(w, prefix+format+"\n")
	}
}
