package auth

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest admin password sitectl will hash.
const MinPasswordLength = 12

// DefaultCost is the bcrypt cost for new admin hashes.
const DefaultCost = 12

var (
	ErrEmptyPassword    = errors.New("empty password")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordMismatch = errors.New("password does not match")
	ErrInvalidCost      = fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
)

// CheckPasswordPolicy reports whether password is acceptable for an admin
// account.
func CheckPasswordPolicy(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// HashPassword applies the admin password policy and returns a bcrypt hash
// at cost. A zero cost means DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if err := CheckPasswordPolicy(password); err != nil {
		return "", err
	}
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", ErrInvalidCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// ComparePassword checks password against a stored hash. A wrong password
// yields ErrPasswordMismatch; a malformed hash yields the bcrypt error.
func ComparePassword(hash, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if hash == "" {
		return errors.New("missing password hash")
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// HashCost returns the cost a stored hash was generated with.
func HashCost(hash string) (int, error) {
	return bcrypt.Cost([]byte(hash))
}
