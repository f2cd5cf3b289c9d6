// ===== pkg/utils/network.go =====
package utils

import (
	"net"
	"strings"
)

// CanonicalMAC reduces a MAC address string to 12 lowercase hex digits
// with no delimiters. The input is not validated beyond delimiter removal;
// callers that need validation go through the derivation pipeline.
func CanonicalMAC(mac string) string {
	mac = strings.ToLower(strings.TrimSpace(mac))
	for _, d := range []string{":", "-", "."} {
		mac = strings.ReplaceAll(mac, d, "")
	}
	return mac
}

// IsLocallyAdministered reports whether the MAC has the locally
// administered bit set. Such addresses have no IEEE OUI assignment.
func IsLocallyAdministered(mac net.HardwareAddr) bool {
	if len(mac) == 0 {
		return false
	}
	return (mac[0] & 0x02) != 0
}

// IsGroupAddress reports whether the MAC has the group (multicast) bit set
func IsGroupAddress(mac net.HardwareAddr) bool {
	if len(mac) == 0 {
		return false
	}
	return (mac[0] & 0x01) != 0
}
