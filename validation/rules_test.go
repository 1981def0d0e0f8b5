package validation

import (
	"reflect"
	"testing"
)

func TestValidateFieldPrecedence(t *testing.T) {
	rule := Rule{
		Required:  true,
		Email:     true,
		MinLength: 6,
		Custom: func(string) string {
			return "customRejected"
		},
	}

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty hits required first", "", "Email is required"},
		{"whitespace only hits required", "   \t", "Email is required"},
		{"bad shape hits email before min length", "bad", "Please enter a valid email address"},
		{"short address hits min length", "a@b.c", "Password is too short"},
		{"valid built-ins fall through to custom", "user@soilsmart.rw", "customRejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateField(tt.value, rule, nil, "email")
			if got != tt.want {
				t.Fatalf("ValidateField(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateFieldRequiredFallbackKey(t *testing.T) {
	got := ValidateField("", Rule{Required: true}, nil, "")
	if got != "This field is required" {
		t.Fatalf("ValidateField = %q, want generic required message", got)
	}
}

func TestValidateFieldEmptyRule(t *testing.T) {
	if got := ValidateField("anything at all", Rule{}, nil, "notes"); got != "" {
		t.Fatalf("empty rule produced error %q", got)
	}
	if got := ValidateField("", Rule{}, nil, "notes"); got != "" {
		t.Fatalf("empty rule on empty value produced error %q", got)
	}
}

func TestValidateFieldEmailSkipsEmptyValue(t *testing.T) {
	// A non-required empty value must not trip the email check.
	if got := ValidateField("", Rule{Email: true}, nil, "email"); got != "" {
		t.Fatalf("email rule on empty value produced error %q", got)
	}
}

func TestValidateFieldCustomAcceptance(t *testing.T) {
	rule := Rule{Custom: func(v string) string {
		if v == "farm" {
			return ""
		}
		return "mustBeFarm"
	}}

	if got := ValidateField("farm", rule, nil, "kind"); got != "" {
		t.Fatalf("custom accept produced error %q", got)
	}
	if got := ValidateField("city", rule, nil, "kind"); got != "mustBeFarm" {
		t.Fatalf("custom reject = %q, want mustBeFarm", got)
	}
}

func TestValidateFormAllRequired(t *testing.T) {
	schema := Schema{
		"name":     {Required: true},
		"email":    {Required: true, Email: true},
		"password": {Required: true, MinLength: 6},
	}

	errs := ValidateForm(map[string]string{}, schema, nil)
	if len(errs) != len(schema) {
		t.Fatalf("ValidateForm on empty values = %d errors, want %d: %v", len(errs), len(schema), errs)
	}
	for field := range schema {
		if errs[field] == "" {
			t.Fatalf("missing error for required field %q", field)
		}
	}
}

func TestValidateFormEmail(t *testing.T) {
	schema := Schema{"email": {Email: true}}

	if errs := ValidateForm(map[string]string{"email": "a@b.com"}, schema, nil); len(errs) != 0 {
		t.Fatalf("valid email produced errors: %v", errs)
	}

	errs := ValidateForm(map[string]string{"email": "bad"}, schema, nil)
	if errs["email"] == "" {
		t.Fatalf("invalid email produced no error: %v", errs)
	}
}

func TestValidateFormMinLength(t *testing.T) {
	schema := Schema{"pw": {MinLength: 6}}

	if errs := ValidateForm(map[string]string{"pw": "abc"}, schema, nil); errs["pw"] == "" {
		t.Fatalf("short password produced no error: %v", errs)
	}
	if errs := ValidateForm(map[string]string{"pw": "abcdef"}, schema, nil); len(errs) != 0 {
		t.Fatalf("6-char password produced errors: %v", errs)
	}
}

func TestValidateFormIgnoresFieldsOutsideSchema(t *testing.T) {
	schema := Schema{"email": {Required: true, Email: true}}
	values := map[string]string{
		"email":   "a@b.com",
		"stray":   "",
		"another": "bad",
	}

	if errs := ValidateForm(values, schema, nil); len(errs) != 0 {
		t.Fatalf("fields outside schema were validated: %v", errs)
	}
}

func TestValidateFormEmptySchema(t *testing.T) {
	errs := ValidateForm(map[string]string{"email": "bad"}, Schema{}, nil)
	if len(errs) != 0 {
		t.Fatalf("empty schema produced errors: %v", errs)
	}
}

func TestValidateFormIdempotent(t *testing.T) {
	schema := Schema{
		"name":     {Required: true},
		"email":    {Required: true, Email: true},
		"password": {Required: true, MinLength: 6},
	}
	values := map[string]string{"email": "bad", "password": "abc"}

	first := ValidateForm(values, schema, nil)
	second := ValidateForm(values, schema, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated validation diverged: %v vs %v", first, second)
	}
}

func TestValidateFormCustomMessages(t *testing.T) {
	msgs := MessageFunc(func(key string) string {
		return "rw:" + key
	})
	schema := Schema{"email": {Required: true}}

	errs := ValidateForm(nil, schema, msgs)
	if errs["email"] != "rw:emailRequired" {
		t.Fatalf("custom messages bypassed: %v", errs)
	}
}

func TestMatchRule(t *testing.T) {
	rule := MatchRule("s3cret", nil, "passwordsDoNotMatch")

	if got := ValidateField("s3cret", rule, nil, "confirmPassword"); got != "" {
		t.Fatalf("matching value produced error %q", got)
	}
	if got := ValidateField("other", rule, nil, "confirmPassword"); got != "Passwords do not match" {
		t.Fatalf("mismatch = %q, want passwords-do-not-match message", got)
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		value string
		want  Strength
	}{
		{"", StrengthNone},
		{"abc", StrengthWeak},
		{"abcdef", StrengthMedium},
		{"abcdefghi", StrengthMedium},
		{"abcdefghij", StrengthStrong},
	}

	for _, tt := range tests {
		if got := PasswordStrength(tt.value); got != tt.want {
			t.Fatalf("PasswordStrength(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}

	if StrengthWeak.String() != "weak" || StrengthNone.String() != "" {
		t.Fatalf("unexpected strength labels: %q %q", StrengthWeak, StrengthNone)
	}
}
