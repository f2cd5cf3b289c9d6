// ===== internal/ula/errors.go =====
package ula

import (
	"errors"
	"fmt"
)

// ErrGroupAddress marks a MAC whose group (multicast) bit is set.
// Only individual station addresses can form an interface identifier.
var ErrGroupAddress = errors.New("MAC is a group (multicast) address, not an individual station address")

// ValidationError reports defective user input for a named field
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Detail)
}

// VendorNotFoundError reports an OUI with no IEEE registry entry.
// An unassigned OUI means the input is not a real, issued MAC address.
type VendorNotFoundError struct {
	OUI string
}

func (e *VendorNotFoundError) Error() string {
	return fmt.Sprintf("OUI %s is not in the vendor registry: not an issued MAC address", e.OUI)
}

// AcquisitionError reports a failure in an upstream collaborator
// (time source, registry fetch, interface detection)
type AcquisitionError struct {
	Source string
	Err    error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("failed to acquire %s: %v", e.Source, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// InternalError reports a defect in this program, never in its input
type InternalError struct {
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error (this is a bug in ulagen): %s", e.Detail)
}
