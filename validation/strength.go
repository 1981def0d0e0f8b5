package validation

import "unicode/utf8"

// Strength defines a public type used by soilauth APIs.
//
// Strength grades a password by length only. This is a UX signal, not a
// security policy.
type Strength int

const (
	// StrengthNone is reported for empty input.
	StrengthNone Strength = iota
	// StrengthWeak is reported for passwords under 6 characters.
	StrengthWeak
	// StrengthMedium is reported for passwords under 10 characters.
	StrengthMedium
	// StrengthStrong is reported for passwords of 10 characters or more.
	StrengthStrong
)

// String returns the lowercase label for the strength grade.
func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return ""
	}
}

// PasswordStrength grades value: empty, under 6, under 10, or 10 and above.
func PasswordStrength(value string) Strength {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		return StrengthNone
	case n < 6:
		return StrengthWeak
	case n < 10:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
