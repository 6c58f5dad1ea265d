package auth

import (
	"regexp"
	"strings"
)

// Validation messages shown to the registration form. Exactly one is surfaced
// per attempt; the first failing rule wins.
const (
	MsgRequiredFields  = "Please fill in all required fields and agree to Terms & Conditions."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgInvalidPhone    = "Enter a valid 10-digit phone number."
	MsgPasswordLength  = "Password should be at least 6 characters."
	MsgPasswordNoMatch = "Passwords do not match."
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// ValidationError carries the single user-facing message for a rejected form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate applies the registration rules in order and returns the first
// failure. Rule order matters: required fields, email format, phone, password
// length, password confirmation.
func (r RegisterRequest) Validate() error {
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.Phone == "" ||
		r.Batch == "" || r.Department == "" || r.Password == "" || r.ConfirmPassword == "" || !r.Terms {
		return &ValidationError{Message: MsgRequiredFields}
	}
	if !IsValidEmail(r.Email) {
		return &ValidationError{Message: MsgInvalidEmail}
	}
	if !IsValidPhone(r.Phone) {
		return &ValidationError{Message: MsgInvalidPhone}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Message: MsgPasswordLength}
	}
	if r.Password != r.ConfirmPassword {
		return &ValidationError{Message: MsgPasswordNoMatch}
	}
	return nil
}

// IsValidEmail reports whether the address matches the form's email pattern.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone accepts any formatting, as long as exactly ten digits remain
// after stripping separators.
func IsValidPhone(phone string) bool {
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	return len(digits) == 10
}

// StripPhone normalizes a phone number to its digits.
func StripPhone(phone string) string {
	return strings.TrimSpace(nonDigitPattern.ReplaceAllString(phone, ""))
}
