// ===== internal/ula/eui64.go =====
package ula

import (
	"fmt"
)

// flipUL maps each even (individual-address) second nibble to the same
// nibble with the universal/local bit inverted. Odd nibbles are group
// addresses and are rejected before the table is consulted, so a miss
// here is a program defect.
var flipUL = map[byte]byte{
	'0': '2',
	'2': '0',
	'4': '6',
	'6': '4',
	'8': 'a',
	'a': '8',
	'c': 'e',
	'e': 'c',
}

// DeriveEUI64 transforms a canonical 12-hex-digit MAC into the modified
// EUI-64 interface identifier of RFC 4291 appendix A: the universal/local
// bit is flipped and the fixed pair fffe is inserted between the OUI and
// the device half
func DeriveEUI64(mac string) (string, error) {
	if len(mac) != 12 {
		return "", &InternalError{
			Detail: fmt.Sprintf("DeriveEUI64 called with %d hex digits, want 12", len(mac)),
		}
	}

	// Low bit of the second nibble is the group/individual bit.
	if nibbleValue(mac[1])&1 == 1 {
		return "", ErrGroupAddress
	}

	flipped, ok := flipUL[mac[1]]
	if !ok {
		return "", &InternalError{
			Detail: fmt.Sprintf("no universal/local flip for nibble %q", mac[1]),
		}
	}

	return string(mac[0]) + string(flipped) + mac[2:6] + "fffe" + mac[6:12], nil
}

// nibbleValue returns the 4-bit value of a lowercase hex digit,
// or -1 for anything else
func nibbleValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}
