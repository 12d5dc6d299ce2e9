// internal/format/format.go
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency renders a whole-dollar amount with thousands separators, e.g.
// "$1,250,000". Fractional input is rounded to the nearest dollar, matching
// the calculator's display rounding.
func Currency(amount float64) string {
	if math.IsNaN(amount) {
		return "N/A"
	}
	rounded := int64(math.Round(amount))
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := fmt.Sprintf("%d", rounded)
	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("$")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteRune(d)
	}
	return b.String()
}

// Percent renders a percentage with one decimal place. An undefined value
// (NaN) renders as "undefined".
func Percent(value float64) string {
	if math.IsNaN(value) {
		return "undefined"
	}
	return fmt.Sprintf("%.1f%%", value)
}

// PhoneNumber normalizes US phone input to XXX-XXX-XXXX as the user types.
// Non-digits are stripped, a leading country 1 is dropped, and anything
// past ten digits is ignored.
func PhoneNumber(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	if strings.HasPrefix(cleaned, "1") && len(cleaned) > 10 {
		cleaned = cleaned[1:]
	}
	if len(cleaned) > 10 {
		cleaned = cleaned[:10]
	}

	switch {
	case len(cleaned) < 4:
		return cleaned
	case len(cleaned) < 7:
		return cleaned[:3] + "-" + cleaned[3:]
	default:
		return cleaned[:3] + "-" + cleaned[3:6] + "-" + cleaned[6:]
	}
}

// Digits strips everything but digits, for wire payloads that want a bare
// phone number.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
