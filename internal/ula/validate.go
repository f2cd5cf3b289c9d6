// ===== internal/ula/validate.go =====
package ula

import (
	"fmt"
	"strings"
)

// delimiters are stripped from raw hex input before validation. The set
// covers MAC notations (colon, dash, dot) and the dot-delimited form NTP
// tooling prints timestamps in, plus stray whitespace from prompts.
const delimiters = ":-. \t\r\n"

// ValidateHex strips delimiters from input, rejects any remaining
// non-hex character, checks the length and returns the canonical
// lowercase form
func ValidateHex(input string, wantLen int, field string) (string, error) {
	var hex strings.Builder
	var bad []rune
	seen := make(map[rune]bool)

	for _, r := range strings.ToLower(input) {
		switch {
		case strings.ContainsRune(delimiters, r):
			// delimiter, drop it
		case (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'):
			hex.WriteRune(r)
		default:
			if !seen[r] {
				seen[r] = true
				bad = append(bad, r)
			}
		}
	}

	if len(bad) > 0 {
		return "", &ValidationError{
			Field:  field,
			Detail: fmt.Sprintf("non-hex characters %q", string(bad)),
		}
	}

	canonical := hex.String()
	if len(canonical) != wantLen {
		return "", &ValidationError{
			Field:  field,
			Detail: fmt.Sprintf("expected %d hex digits, got %d", wantLen, len(canonical)),
		}
	}

	return canonical, nil
}
