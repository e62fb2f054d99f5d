// Package loader reads the messages and categories CSV inputs and merges
// them into a single table.
//
// The loader package is responsible for:
//   - Reading each input through a filesystem.FileSystemProvider
//   - Parsing it into a typed dretl.Table (header row first)
//   - Applying the missing-key and duplicate-key policies to each input
//   - Outer-joining the two inputs on the key column
//
// Each input is fingerprinted with SHA-256 and reported in verbose mode.
package loader
