// ===== internal/ntp/source.go =====
package ntp

import (
	"fmt"
	"time"

	ntpc "github.com/beevik/ntp"

	"ulagen/internal/ula"
)

// ntpEpochOffset is the number of seconds between the NTP epoch
// (1900-01-01) and the Unix epoch (1970-01-01)
const ntpEpochOffset = 2208988800

// EncodeTime converts a wall-clock time to the canonical 16-hex-digit
// NTP 64-bit fixed-point form: 32 bits of seconds since 1900 followed
// by 32 bits of binary fraction
func EncodeTime(t time.Time) string {
	secs := uint32(uint64(t.Unix()) + ntpEpochOffset)
	frac := uint32((uint64(t.Nanosecond()) << 32) / uint64(time.Second))
	return fmt.Sprintf("%08x%08x", secs, frac)
}

// QuerySource obtains the timestamp from an NTP server on the network
type QuerySource struct {
	Server  string
	Timeout time.Duration
}

// Timestamp queries the configured server once and encodes its
// transmit time. No retries; the timeout is the only policy here.
func (s *QuerySource) Timestamp() (string, error) {
	resp, err := ntpc.QueryWithOptions(s.Server, ntpc.QueryOptions{Timeout: s.Timeout})
	if err != nil {
		return "", &ula.AcquisitionError{Source: "NTP server " + s.Server, Err: err}
	}
	if err := resp.Validate(); err != nil {
		return "", &ula.AcquisitionError{Source: "NTP server " + s.Server, Err: err}
	}
	return EncodeTime(resp.Time), nil
}

// ClockSource reads the local system clock
type ClockSource struct{}

// Timestamp encodes the current system time
func (ClockSource) Timestamp() (string, error) {
	return EncodeTime(time.Now()), nil
}

// LiteralSource echoes an operator-supplied timestamp, accepted either
// as 16 plain hex digits or in the dot-delimited seconds.fraction form
// NTP tooling prints
type LiteralSource struct {
	Value string
}

// Timestamp validates and canonicalizes the literal value
func (s *LiteralSource) Timestamp() (string, error) {
	return ula.ValidateHex(s.Value, 16, "NTP timestamp")
}
