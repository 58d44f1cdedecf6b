// Package hashcode implements the 64-bit perceptual video hash codec: parsing
// the wire binary-string form into a dense uint64, and the pure Hamming
// distance / similarity arithmetic the rest of the system builds on.
//
// Every function here is total and side-effect free. There is no shared
// state, so nothing in this package needs locking.
package hashcode

import (
	"errors"
	"math/bits"
)

// Bits is the fixed width of a video hash, in bits.
const Bits = 64

// ErrInvalidHash is returned by Parse when the input is not exactly Bits
// characters of '0'/'1'.
var ErrInvalidHash = errors.New("hashcode: invalid hash")

// Code is a 64-bit perceptual video hash.
type Code = uint64

// Parse converts a 64-character binary string into a Code. The string's
// leftmost character (index 0) is the most significant bit: bit k of the
// string becomes bit (Bits-1-k) of the returned code. Any string that is not
// exactly Bits characters of '0' or '1' fails with ErrInvalidHash.
func Parse(s string) (Code, error) {
	if len(s) != Bits {
		return 0, ErrInvalidHash
	}

	var c Code
	for i := 0; i < Bits; i++ {
		c <<= 1
		switch s[i] {
		case '0':
		case '1':
			c |= 1
		default:
			return 0, ErrInvalidHash
		}
	}
	return c, nil
}

// String renders a Code back into its 64-character MSB-first binary string.
// String(Parse(s)) == s for every s that Parse accepts.
func String(c Code) string {
	buf := make([]byte, Bits)
	for i := 0; i < Bits; i++ {
		if c&(1<<uint(Bits-1-i)) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Hamming returns the number of differing bits between a and b, in [0, Bits].
func Hamming(a, b Code) int {
	return bits.OnesCount64(a ^ b)
}

// Similarity converts a Hamming distance into a percentage in [0.0, 100.0].
// A distance of 0 yields 100.0; a distance of Bits yields 0.0.
func Similarity(distance int) float64 {
	return 100.0 * float64(Bits-distance) / float64(Bits)
}
