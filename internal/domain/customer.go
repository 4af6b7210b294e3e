package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

var phoneReplacer = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// NormalizeCustomerName trims surrounding whitespace
func NormalizeCustomerName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateCustomerName requires a non-empty name of bounded length
func ValidateCustomerName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidCustomer)
	}
	if utf8.RuneCountInString(name) > MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName must be at most %d characters", ErrInvalidCustomer, MaxCustomerNameLength)
	}
	return nil
}

// NormalizePhone drops spaces, dashes and parentheses
func NormalizePhone(phone string) string {
	return phoneReplacer.Replace(strings.TrimSpace(phone))
}

// ValidatePhone accepts an optional leading "+" followed by 10-15 digits
func ValidatePhone(phone string) error {
	digits := strings.TrimPrefix(phone, "+")
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return fmt.Errorf("%w: customerPhone must contain %d-%d digits", ErrInvalidCustomer, minPhoneDigits, maxPhoneDigits)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: customerPhone must contain only digits", ErrInvalidCustomer)
		}
	}
	return nil
}

// NormalizeEmail trims the address; a blank address becomes nil
func NormalizeEmail(email *string) (*string, error) {
	if email == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil, nil
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return nil, fmt.Errorf("%w: invalid customerEmail: %v", ErrInvalidCustomer, err)
	}
	return &trimmed, nil
}

// ValidateNotes bounds the length of free-form notes
func ValidateNotes(notes *string) error {
	if notes != nil && utf8.RuneCountInString(*notes) > MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidCustomer, MaxNotesLength)
	}
	return nil
}
