package donechart

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ResolveColor converts a CSS color name ("green") or a hex literal
// ("#0f0", "#00FF00") to an upper-case RRGGBB string.
func ResolveColor(s string) (string, error) {
	c := strings.TrimSpace(s)
	if c == "" {
		return "", fmt.Errorf("%w: empty color", ErrInvalidOptions)
	}

	if strings.HasPrefix(c, "#") {
		hex := c[1:]
		if !isHex(hex) {
			return "", fmt.Errorf("%w: bad hex color %q", ErrInvalidOptions, s)
		}
		switch len(hex) {
		case 3:
			return strings.ToUpper(string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})), nil
		case 6:
			return strings.ToUpper(hex), nil
		}
		return "", fmt.Errorf("%w: bad hex color %q", ErrInvalidOptions, s)
	}

	rgba, ok := colornames.Map[strings.ToLower(c)]
	if !ok {
		return "", fmt.Errorf("%w: unknown color %q", ErrInvalidOptions, s)
	}
	return fmt.Sprintf("%02X%02X%02X", rgba.R, rgba.G, rgba.B), nil
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
