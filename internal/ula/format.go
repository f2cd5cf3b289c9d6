// ===== internal/ula/format.go =====
package ula

import (
	"encoding/hex"
	"fmt"
	"net"
)

// FormatULA renders a 40-bit global ID as a fixed-width /48 prefix:
// the fd locality byte followed by the global ID, grouped into three
// 16-bit hex fields. No leading zeros are suppressed.
func FormatULA(globalID string) (string, error) {
	if len(globalID) != 10 {
		return "", &InternalError{
			Detail: fmt.Sprintf("FormatULA called with %d hex digits, want 10", len(globalID)),
		}
	}

	block := "fd" + globalID
	return fmt.Sprintf("%s:%s:%s::/48", block[0:4], block[4:8], block[8:12]), nil
}

// FormatULACompressed renders the same prefix in canonical RFC 5952
// text form, with leading zeros in each group suppressed
func FormatULACompressed(globalID string) (string, error) {
	if len(globalID) != 10 {
		return "", &InternalError{
			Detail: fmt.Sprintf("FormatULACompressed called with %d hex digits, want 10", len(globalID)),
		}
	}

	raw, err := hex.DecodeString("fd" + globalID)
	if err != nil {
		return "", &InternalError{
			Detail: fmt.Sprintf("non-hex global ID reached FormatULACompressed: %v", err),
		}
	}

	ip := make(net.IP, net.IPv6len)
	copy(ip, raw)
	return ip.String() + "/48", nil
}
