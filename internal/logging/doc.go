// Package logging provides concrete implementations of the dretl.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Progress lines on stdout, diagnostics on stderr
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
