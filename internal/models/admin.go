package models

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password prefix that is hashed. bcrypt
// rejects inputs over 72 bytes, so longer passwords are cut before hashing
// and before comparison.
const MaxPasswordBytes = 70

// Admin is the single shared admin account. It is never persisted.
type Admin struct {
	Username     string
	passwordHash []byte
}

// NewAdmin hashes the configured password for later comparison.
func NewAdmin(username, password string) (*Admin, error) {
	a := &Admin{Username: username}
	if err := a.SetPassword(password); err != nil {
		return nil, err
	}
	return a, nil
}

// SetPassword hashes a password and sets it on the admin
func (a *Admin) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.passwordHash = hashed
	return nil
}

// CheckPassword compares a password with the admin's hashed password
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(a.passwordHash, truncatePassword(password)) == nil
}

// CheckCredentials reports whether username and password both match.
func (a *Admin) CheckCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	// bcrypt runs even when the username is wrong
	passOK := a.CheckPassword(password)
	return userOK && passOK
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
