// ===== internal/ula/validate_test.go =====
package ula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLen  int
		expected string
	}{
		{"colon MAC", "00:0d:3a:00:00:01", 12, "000d3a000001"},
		{"dash MAC", "00-0D-3A-00-00-01", 12, "000d3a000001"},
		{"dot MAC", "000d.3a00.0001", 12, "000d3a000001"},
		{"bare uppercase", "B827EB123456", 12, "b827eb123456"},
		{"trailing newline", "000d3a000001\n", 12, "000d3a000001"},
		{"dotted NTP timestamp", "dcf4268b.208dd000", 16, "dcf4268b208dd000"},
		{"plain NTP timestamp", "DCF4268B208DD000", 16, "dcf4268b208dd000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateHex(tt.input, tt.wantLen, "value")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateHexRejects(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		detail string
	}{
		{"non-hex characters", "00:0g:3a:00:00:0z", `non-hex characters "gz"`},
		{"duplicates reported once", "zz:zz:zz:zz:zz:zz", `non-hex characters "z"`},
		{"too short", "000d3a0000", "expected 12 hex digits, got 10"},
		{"too long", "000d3a00000102", "expected 12 hex digits, got 14"},
		{"empty", "", "expected 12 hex digits, got 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateHex(tt.input, 12, "MAC address")
			require.Error(t, err)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, "MAC address", validation.Field)
			assert.Equal(t, tt.detail, validation.Detail)
		})
	}
}
