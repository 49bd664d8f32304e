// Package phone converts phone numbers between their digits-only, canonical
// display and partially typed forms.
package phone

import "strings"

// Length is the number of digits in a complete US-style number.
const Length = 10

// DigitsOnly strips every character that is not an ASCII digit.
func DigitsOnly(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CanonicalDisplay renders a ten digit number as NNN-NNN-NNNN. Any other digit
// count is returned as the bare digit string.
func CanonicalDisplay(input string) string {
	digits := DigitsOnly(input)
	if len(digits) != Length {
		return digits
	}
	return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
}

// FormatPartial hyphenates a number that is still being typed. It reports
// false when the input holds more than Length digits; callers keep their
// previous value in that case.
func FormatPartial(input string) (string, bool) {
	digits := DigitsOnly(input)
	switch n := len(digits); {
	case n > Length:
		return "", false
	case n > 6:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:], true
	case n > 3:
		return digits[:3] + "-" + digits[3:], true
	default:
		return digits, true
	}
}

// Equal reports whether a and b carry the same digit sequence.
func Equal(a, b string) bool {
	return DigitsOnly(a) == DigitsOnly(b)
}
