// ===== pkg/models/models.go =====
package models

import (
	"time"
)

// VendorRecord represents an IEEE OUI registry entry
type VendorRecord struct {
	OUI     string `json:"oui"`
	Company string `json:"companyName"`
}

// Result holds every field derived during a single prefix generation
type Result struct {
	MAC       string `json:"mac"`
	Vendor    string `json:"vendor"`
	Timestamp string `json:"timestamp"`
	EUI64     string `json:"eui64"`
	GlobalID  string `json:"globalId"`
	ULA       string `json:"ula"`
}

// RegistryStatus describes the currently loaded vendor registry
type RegistryStatus struct {
	File    string    `json:"file"`
	Entries int       `json:"entries"`
	Loaded  time.Time `json:"loaded"`
}
