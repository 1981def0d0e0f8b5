package internal

import "testing"

func TestNewOTP(t *testing.T) {
	for _, digits := range []int{6, 8, 10} {
		code, err := NewOTP(digits)
		if err != nil {
			t.Fatalf("NewOTP(%d) failed: %v", digits, err)
		}
		if len(code) != digits {
			t.Fatalf("NewOTP(%d) = %q, wrong length", digits, code)
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				t.Fatalf("NewOTP(%d) = %q, non-digit %q", digits, code, c)
			}
		}
	}
}

func TestNewOTPRejectsBadLengths(t *testing.T) {
	for _, digits := range []int{-1, 0, 5, 11} {
		if _, err := NewOTP(digits); err == nil {
			t.Errorf("NewOTP(%d) succeeded, want error", digits)
		}
	}
}

func TestHashCodeComparison(t *testing.T) {
	a := HashCode("123456")
	b := HashCode("123456")
	c := HashCode("123457")

	if !CodesEqual(a, b) {
		t.Fatalf("equal codes hash differently")
	}
	if CodesEqual(a, c) {
		t.Fatalf("distinct codes hash identically")
	}
}
