package pnr

import (
	"crypto/rand"
	"encoding/binary"
	"regexp"
)

// A PNR is a 10-digit decimal string with a non-zero leading digit,
// so the usable space is 9 * 10^9 identifiers.
const Length = 10

var pattern = regexp.MustCompile(`^[1-9][0-9]{9}$`)

// Generate draws a random PNR. Uniqueness is enforced by the
// reservations table; callers retry on a duplicate-key collision.
func Generate() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is unrecoverable for identifier generation
		panic("pnr: crypto/rand unavailable: " + err.Error())
	}
	n := binary.BigEndian.Uint64(buf[:]) % 9_000_000_000

	digits := make([]byte, Length)
	for i := Length - 1; i >= 1; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	digits[0] = byte('1' + n%9)
	return string(digits)
}

func IsValid(s string) bool {
	return pattern.MatchString(s)
}
