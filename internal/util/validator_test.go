package util

import (
	"strings"
	"testing"
)

func TestValidateUsername_Valid(t *testing.T) {
	testCases := []string{"bob", "alice_92", "UPPER", "exactly_twenty_chars"}

	for _, name := range testCases {
		err := ValidateUsername(name)
		if err != nil {
			t.Errorf("ValidateUsername(%q) error = %v, want nil", name, err)
		}
	}
}

func TestValidateUsername_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"ab",                    // too short
		"has space",
		"dash-not-allowed",
		"way_too_long_username_x", // 21 chars
		"émile",
	}

	for _, name := range testCases {
		err := ValidateUsername(name)
		if err == nil {
			t.Errorf("ValidateUsername(%q) error = nil, want error", name)
		}
	}
}

func TestValidatePassword_Valid(t *testing.T) {
	testCases := []string{"pass", "longer password with spaces", strings.Repeat("x", 72)}

	for _, pw := range testCases {
		err := ValidatePassword(pw)
		if err != nil {
			t.Errorf("ValidatePassword(%q) error = %v, want nil", pw, err)
		}
	}
}

func TestValidatePassword_TooShort(t *testing.T) {
	testCases := []string{"", "a", "abc"}

	for _, pw := range testCases {
		err := ValidatePassword(pw)
		if err == nil {
			t.Errorf("ValidatePassword(%q) error = nil, want error", pw)
		}
	}
}

func TestValidatePassword_TooLong(t *testing.T) {
	err := ValidatePassword(strings.Repeat("x", 73))

	if err == nil {
		t.Error("ValidatePassword() with 73 bytes error = nil, want error")
	}
}

func TestValidateEmail_Valid(t *testing.T) {
	testCases := []string{
		"ada@example.com",
		"first.last@sub.domain.org",
		"  padded@example.com  ", // trimmed
	}

	for _, email := range testCases {
		err := ValidateEmail(email)
		if err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", email, err)
		}
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"no-at-sign",
		"two@@example.com",
		"@example.com",
		"user@",
		"user@nodot",
		"spaces in@example.com",
	}

	for _, email := range testCases {
		err := ValidateEmail(email)
		if err == nil {
			t.Errorf("ValidateEmail(%q) error = nil, want error", email)
		}
	}
}
