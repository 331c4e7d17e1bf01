package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatAmount renders a currency amount with thousands separators and no
// decimals, e.g. 48000 -> "48,000".
func FormatAmount(amount float64) string {
	n := int64(math.Round(amount))

	negative := n < 0
	if negative {
		n = -n
	}

	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}

	if negative {
		return "-" + s
	}
	return s
}
