// ===== internal/ula/generator.go =====
package ula

import (
	"ulagen/pkg/models"
)

// TimeSource supplies a 64-bit NTP-format timestamp as 16 hex digits.
// Implementations may query the network, read the system clock or echo
// an operator-supplied literal; the generator does not care which.
type TimeSource interface {
	Timestamp() (string, error)
}

// VendorLookup resolves a 6-hex-digit OUI prefix to a vendor name.
// A miss must be reported as an error; the generator treats it as proof
// the MAC was never issued.
type VendorLookup interface {
	Lookup(prefix string) (string, error)
}

// Generator runs the full derivation pipeline: validate the MAC, confirm
// its OUI against the vendor registry, derive the modified EUI-64, hash
// it with the timestamp and format the result. Each call is an isolated
// computation with no state carried between runs.
type Generator struct {
	Time     TimeSource
	Vendors  VendorLookup
	Compress bool
}

// Generate derives a ULA prefix from a raw MAC address string
func (g *Generator) Generate(rawMAC string) (*models.Result, error) {
	mac, err := ValidateHex(rawMAC, 12, "MAC address")
	if err != nil {
		return nil, err
	}

	vendor, err := g.Vendors.Lookup(mac[0:6])
	if err != nil {
		return nil, err
	}

	ts, err := g.Time.Timestamp()
	if err != nil {
		return nil, err
	}
	ts, err = ValidateHex(ts, 16, "NTP timestamp")
	if err != nil {
		return nil, err
	}

	eui64, err := DeriveEUI64(mac)
	if err != nil {
		return nil, err
	}

	globalID, err := DeriveGlobalID(ts, eui64)
	if err != nil {
		return nil, err
	}

	format := FormatULA
	if g.Compress {
		format = FormatULACompressed
	}
	prefix, err := format(globalID)
	if err != nil {
		return nil, err
	}

	return &models.Result{
		MAC:       mac,
		Vendor:    vendor,
		Timestamp: ts,
		EUI64:     eui64,
		GlobalID:  globalID,
		ULA:       prefix,
	}, nil
}
