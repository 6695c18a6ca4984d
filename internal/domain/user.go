// Package domain provides definitions of all entities.
package domain

import "errors"

// Password length bounds accepted by the provider, both inclusive.
const (
	PasswordMinLength = 6
	PasswordMaxLength = 255
)

var (
	// ErrPasswordLength indicates that the password length is out of the accepted bounds.
	ErrPasswordLength = errors.New("password length must be between 6 and 255 characters")
	// ErrEmailRequired indicates that the user email is missing.
	ErrEmailRequired = errors.New("email is required")
)

// Credentials holds the provider credentials of one user.
//
// Credentials are used per request and never persisted or logged.
type Credentials struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// Validate checks the credentials before any provider call.
func (c Credentials) Validate() error {
	if c.Email == "" {
		return ErrEmailRequired
	}

	n := len([]rune(c.Password))
	if n < PasswordMinLength || n > PasswordMaxLength {
		return ErrPasswordLength
	}

	return nil
}
