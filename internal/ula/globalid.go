// ===== internal/ula/globalid.go =====
package ula

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// DeriveGlobalID computes the 40-bit global ID of RFC 4193 section 3.2.2:
// SHA-1 over the concatenated timestamp and EUI-64, keeping the low 40
// bits of the digest.
//
// The hash runs over the 16 bytes the hex digits encode, never over the
// hex text itself. Hashing the text produces a different digest and
// silently breaks parity with other implementations.
func DeriveGlobalID(timestamp, eui64 string) (string, error) {
	if len(timestamp) != 16 || len(eui64) != 16 {
		return "", &InternalError{
			Detail: fmt.Sprintf("DeriveGlobalID called with %d+%d hex digits, want 16+16", len(timestamp), len(eui64)),
		}
	}

	raw, err := hex.DecodeString(timestamp + eui64)
	if err != nil {
		return "", &InternalError{
			Detail: fmt.Sprintf("non-hex input reached DeriveGlobalID: %v", err),
		}
	}

	sum := sha1.Sum(raw)
	digest := hex.EncodeToString(sum[:])

	// Rightmost hex digits are least significant, so the low 40 bits
	// are the last 10 digits of the digest.
	return digest[len(digest)-10:], nil
}
