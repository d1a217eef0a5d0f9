package validator

import (
	"regexp"
	"strings"
)

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex      = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	phoneSeparators = regexp.MustCompile(`[\s\-().]`)
	nameRegex       = regexp.MustCompile(`^[\p{L}\s\-'\.]+$`)
	postalRegex     = regexp.MustCompile(`^[A-Z0-9\s\-]{3,10}$`)
)

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// NormalizePhone strips spaces, dashes, dots and parentheses
func NormalizePhone(phone string) string {
	return phoneSeparators.ReplaceAllString(strings.TrimSpace(phone), "")
}

// IsValidPhone checks if the phone number format is valid (separators allowed)
func IsValidPhone(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return false
	}
	return phoneRegex.MatchString(NormalizePhone(phone))
}

// IsValidName checks if the name contains only letters, spaces, and common punctuation
func IsValidName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return nameRegex.MatchString(name) && len(name) >= 2
}

// IsValidPostalCode checks if the postal code format is valid (basic check)
func IsValidPostalCode(postalCode string) bool {
	if strings.TrimSpace(postalCode) == "" {
		return false
	}
	return postalRegex.MatchString(strings.ToUpper(postalCode))
}

// IsBlank reports whether s is empty after trimming
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
