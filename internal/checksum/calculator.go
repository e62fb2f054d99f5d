package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Calculator is an interface for computing input file checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to encoding noise that does
	// not change the parsed records.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
// Normalization for delimited text:
//  1. Drop a leading UTF-8 byte order mark
//  2. Convert CRLF and lone CR line endings to LF
//  3. Drop trailing line endings
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256(c.normalize(content))
	return hex.EncodeToString(hash[:])
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func (c SHA256) normalize(content []byte) []byte {
	content = bytes.TrimPrefix(content, utf8BOM)

	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		ch := content[i]
		if ch == '\r' {
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			ch = '\n'
		}
		out = append(out, ch)
	}

	return bytes.TrimRight(out, "\n")
}

var _ Calculator = SHA256{}
