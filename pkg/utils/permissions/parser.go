// Package permissions provides utilities for parsing and formatting file permissions
package permissions

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOctalString parses an octal permission string into permission bits.
// Handles formats like "4755", "0644", "0o600". Setuid/setgid/sticky
// digits are accepted.
func ParseOctalString(s string) (uint32, error) {
	if s == "" {
		return 0, fmt.Errorf("empty permission string")
	}

	// Remove common prefixes
	s = strings.TrimPrefix(s, "0o")

	// Parse as octal
	val, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	if val > 0o7777 {
		return 0, fmt.Errorf("permission string %q out of range", s)
	}

	return uint32(val), nil
}

// FormatOctal formats permission bits as a 4-digit octal string, the form
// the report tables use ("4755", "0644").
func FormatOctal(bits uint32) string {
	return fmt.Sprintf("%04o", bits&0o7777)
}
