package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for dretl.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether dretl runs in interactive or non-interactive mode.
//
// Returns ModeNonInteractive if:
//   - DRETL_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if envNonInteractive() {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

// IsStyledOutput reports whether styled text should be written to w.
// Only terminals get styling; buffers, pipes and files get plain text.
func IsStyledOutput(w io.Writer) bool {
	if envNonInteractive() {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func envNonInteractive() bool {
	return os.Getenv("DRETL_NON_INTERACTIVE") == "1" ||
		os.Getenv("CI") != "" ||
		os.Getenv("NO_COLOR") != ""
}
