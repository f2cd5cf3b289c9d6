// ===== internal/iface/detect.go =====
package iface

import (
	"fmt"
	"net"

	"ulagen/internal/ula"
	"ulagen/pkg/utils"
)

// Detect returns the hardware address of a local network interface as a
// MAC string. With a name it returns that interface's address; with an
// empty name it picks the first interface that is up, not loopback and
// carries a vendor-assigned (universally administered) 48-bit address.
// Locally administered addresses are skipped because they have no IEEE
// OUI entry and would fail the registry check anyway.
func Detect(name string) (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", &ula.AcquisitionError{Source: "network interfaces", Err: err}
	}

	for _, ifc := range ifaces {
		if name != "" {
			if ifc.Name != name {
				continue
			}
			if len(ifc.HardwareAddr) != 6 {
				return "", &ula.AcquisitionError{
					Source: "hardware address",
					Err:    fmt.Errorf("interface %s has no 48-bit hardware address", name),
				}
			}
			return utils.CanonicalMAC(ifc.HardwareAddr.String()), nil
		}

		if ifc.Flags&net.FlagLoopback != 0 || ifc.Flags&net.FlagUp == 0 {
			continue
		}
		if len(ifc.HardwareAddr) != 6 {
			continue
		}
		if utils.IsLocallyAdministered(ifc.HardwareAddr) || utils.IsGroupAddress(ifc.HardwareAddr) {
			continue
		}
		return utils.CanonicalMAC(ifc.HardwareAddr.String()), nil
	}

	if name != "" {
		return "", &ula.AcquisitionError{
			Source: "hardware address",
			Err:    fmt.Errorf("interface %s not found", name),
		}
	}
	return "", &ula.AcquisitionError{
		Source: "hardware address",
		Err:    fmt.Errorf("no usable network interface found"),
	}
}
