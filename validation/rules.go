package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// RFC-light on purpose: the engine only screens for obvious typos, it does
// not arbitrate deliverability.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Rule defines a public type used by soilauth APIs.
//
// Rule describes the constraints on a single field. Checks run in a fixed
// precedence order — required, email, min length, custom — and the first
// failing check wins, so a field reports at most one error.
type Rule struct {
	// Required rejects values that are empty after trimming whitespace.
	Required bool

	// Email rejects non-empty values that do not look like an address.
	Email bool

	// MinLength rejects values shorter than this many characters when > 0.
	MinLength int

	// Custom returns an error message, or "" when the value is acceptable.
	// It runs only after all built-in checks pass.
	Custom func(value string) string
}

// Schema defines a public type used by soilauth APIs.
//
// Schema maps field names to their rules. Field names are unique; evaluation
// order carries no meaning.
type Schema map[string]Rule

// ValidateField evaluates one value against one rule and returns the error
// message, or "" when the value is valid. fieldName keys the "required"
// message ("<fieldName>Required"); pass "" to fall back to the generic
// "fieldRequired" message.
func ValidateField(value string, rule Rule, msgs Messages, fieldName string) string {
	if msgs == nil {
		msgs = DefaultMessages
	}

	if rule.Required && strings.TrimSpace(value) == "" {
		if fieldName != "" {
			return msgs.Message(fieldName + "Required")
		}
		return msgs.Message("fieldRequired")
	}
	if rule.Email && value != "" && !emailPattern.MatchString(value) {
		return msgs.Message("invalidEmail")
	}
	// The message stays generic and does not embed the configured minimum.
	if rule.MinLength > 0 && utf8.RuneCountInString(value) < rule.MinLength {
		return msgs.Message("passwordMinLength")
	}
	if rule.Custom != nil {
		return rule.Custom(value)
	}
	return ""
}

// ValidateForm evaluates every field in schema against values and returns the
// error map: field name to message, present only for failed fields. A missing
// value is treated as the empty string; values without a schema entry are
// never validated. An empty result means the form is valid.
func ValidateForm(values map[string]string, schema Schema, msgs Messages) map[string]string {
	errs := make(map[string]string)
	for field, rule := range schema {
		if msg := ValidateField(values[field], rule, msgs, field); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// MatchRule builds a rule whose custom check rejects values different from
// expected, for confirm-password style fields. messageKey is resolved through
// msgs at validation time.
func MatchRule(expected string, msgs Messages, messageKey string) Rule {
	if msgs == nil {
		msgs = DefaultMessages
	}
	return Rule{
		Custom: func(value string) string {
			if value != expected {
				return msgs.Message(messageKey)
			}
			return ""
		},
	}
}
