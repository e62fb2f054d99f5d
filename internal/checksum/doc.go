// Package checksum fingerprints pipeline input files.
//
// Two checksums are computed per input:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after removing a byte order mark and
//     unifying line endings, so the same dataset exported on different
//     platforms gets the same fingerprint
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(fileContent)
//	normalized := calculator.CalculateNormalized(fileContent)
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
