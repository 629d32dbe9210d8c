package services

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/terraincognita07/showerbuddy/internal/models"
)

var (
	ErrWeakPassword    = errors.New("weak password")
	ErrPasswordTooLong = errors.New("password too long")
)

const (
	minPasswordLength = 8
	// bcrypt refuses longer input.
	maxPasswordBytes = 72
)

func ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	if length > models.MaxPasswordLength || len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	if length < minPasswordLength {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if hasUpper && hasLower && hasDigit {
		return nil
	}
	return ErrWeakPassword
}
