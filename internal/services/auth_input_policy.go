package services

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/showerbuddy/internal/models"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrTelephoneInvalid       = errors.New("telephone invalid")
)

// NormalizeAuthEmail lower-cases and trims raw. It returns "" for anything
// that is not a single address fitting the email column.
func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || utf8.RuneCountInString(email) > models.MaxEmailLength {
		return ""
	}
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// NormalizeTelephone accepts an empty value or up to twelve digits with
// optional separators.
func NormalizeTelephone(raw string) (string, error) {
	telephone := strings.TrimSpace(raw)
	if telephone == "" {
		return "", nil
	}
	if utf8.RuneCountInString(telephone) > models.MaxTelephoneLength {
		return "", ErrTelephoneInvalid
	}

	digits := 0
	for index, char := range telephone {
		switch {
		case char >= '0' && char <= '9':
			digits++
		case char == '+' && index == 0:
		case char == '-' || char == ' ' || char == '(' || char == ')' || char == '.':
		default:
			return "", ErrTelephoneInvalid
		}
	}
	if digits == 0 {
		return "", ErrTelephoneInvalid
	}
	return telephone, nil
}
