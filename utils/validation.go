package utils

import (
	"regexp"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// ValidatePhone checks that the phone number is in a plausible E.164-ish form
func ValidatePhone(phone string) (bool, string) {
	if phone == "" {
		return false, "Phone number is required"
	}
	if !phoneRegex.MatchString(phone) {
		return false, "Phone number must be 7-15 digits, optionally prefixed with +"
	}
	return true, ""
}

// ValidatePassword checks password length bounds
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if len(password) > 64 {
		return false, "Password must not exceed 64 characters"
	}
	return true, ""
}
