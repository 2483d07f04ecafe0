package service

import "strings"

// Phone handling is deliberately US-only, matching the store it serves.
// StripUS removes the literal "+1" country prefix (or a bare leading "1" on
// an 11-digit number) so lookups hit the national form stored on contacts.
// Prefixes are stripped literally, never as a character set, so numbers
// starting "11..." keep their digits.
func StripUS(phone string) string {
	phone = strings.TrimSpace(phone)

	if rest, ok := strings.CutPrefix(phone, "+1"); ok {
		return rest
	}

	if len(phone) == 11 && strings.HasPrefix(phone, "1") {
		return phone[1:]
	}

	return phone
}

// NormalizeUS returns the number with exactly one "+1" prefix. Applying it
// twice yields the same result.
func NormalizeUS(phone string) string {
	return "+1" + StripUS(phone)
}
