package validation

import "strings"

// MaxPhoneLength is the longest value FormatPhone produces (010-1234-5678).
const MaxPhoneLength = 13

// FormatPhone strips every non-digit and regroups the digits as 3-4-4.
// Digits past the eleventh are dropped, so the result never exceeds
// MaxPhoneLength and re-formatting a formatted value returns it unchanged.
func FormatPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 7:
		return digits[:3] + "-" + digits[3:]
	}
	if len(digits) > 11 {
		digits = digits[:11]
	}
	return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
}
