package client

import (
	"errors"
	"strings"
	"unicode"
)

const passwordSpecials = "@$!%*?&"

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("password must be at least 8 characters and contain an uppercase letter, a digit and one of " + passwordSpecials)
	ErrMissingFields    = errors.New("name, email, password and country are required")
)

type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Country         string
}

func (f SignupForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || f.Password == "" || strings.TrimSpace(f.Country) == "" {
		return ErrMissingFields
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !IsStrongPassword(f.Password) {
		return ErrWeakPassword
	}
	return nil
}

// IsStrongPassword requires 8 or more ASCII letters, digits and
// specials from @$!%*?&, with at least one uppercase letter, one digit
// and one special.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var upper, digit, special bool
	for _, r := range password {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		case unicode.IsLower(r):
		default:
			return false
		}
	}
	return upper && digit && special
}
