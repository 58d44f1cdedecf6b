// Package obs provides a small structured-logging helper: deriving a short,
// stable fingerprint for an opaque external identifier so request-lifecycle
// log lines can be correlated by grepping a short hex string instead of
// repeating (and searching for) the full video_id on every line.
//
// xxhash is a fast, well-distributed non-cryptographic digest, which is all
// a log-correlation fingerprint needs.
package obs

import "github.com/cespare/xxhash/v2"

// Fingerprint returns a short hex digest of v suitable for log correlation.
// It is not a security control and carries no uniqueness guarantee beyond
// what a 32-bit truncation of xxhash provides — collisions are acceptable
// for a debugging aid.
func Fingerprint(v string) string {
	h := xxhash.Sum64String(v)
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[7-i] = hexDigits[(h>>(4*uint(i)))&0xf]
	}
	return string(buf)
}
