package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	upperAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet = "abcdefghijkmnopqrstuvwxyz"
	digitAlphabet = "23456789"

	// PasswordAlphabet leaves out characters that are easy to misread
	// (I, l, O, 0, 1).
	PasswordAlphabet = upperAlphabet + lowerAlphabet + digitAlphabet

	MinTemporaryPasswordLength = 8
)

var errEmptyAlphabet = errors.New("alphabet must not be empty")

// TemporaryPassword returns a random password of at least
// MinTemporaryPasswordLength characters containing an upper-case letter,
// a lower-case letter and a digit.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}

	password := make([]byte, 0, length)
	for _, alphabet := range []string{upperAlphabet, lowerAlphabet, digitAlphabet} {
		char, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}
	for len(password) < length {
		char, err := randomChar(PasswordAlphabet)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

func randomChar(alphabet string) (byte, error) {
	if alphabet == "" {
		return 0, errEmptyAlphabet
	}
	index, err := randomIndex(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[index], nil
}

func randomIndex(limit int) (int, error) {
	position, err := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	if err != nil {
		return 0, err
	}
	return int(position.Int64()), nil
}

// shuffle is a Fisher-Yates shuffle so the guaranteed characters do not
// always lead the password.
func shuffle(value []byte) error {
	for last := len(value) - 1; last > 0; last-- {
		swap, err := randomIndex(last + 1)
		if err != nil {
			return err
		}
		value[last], value[swap] = value[swap], value[last]
	}
	return nil
}
