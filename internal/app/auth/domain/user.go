package domain

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the only role the console knows about.
const RoleAdmin = "admin"

const minPasswordLen = 8

// User is a console account.
type User struct {
	id           string
	email        string
	passwordHash string
	name         string
	role         string
}

// NewUser hashes password and creates a user.
func NewUser(id, email, password, name, role string) (*User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{id: id, email: NormalizeEmail(email), passwordHash: hash, name: name, role: role}, nil
}

// ReconstructUser rebuilds a user from storage.
func ReconstructUser(id, email, passwordHash, name, role string) *User {
	return &User{id: id, email: email, passwordHash: passwordHash, name: name, role: role}
}

func (u *User) ID() string           { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Name() string         { return u.name }
func (u *User) Role() string         { return u.role }

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// ResetPassword replaces the stored hash.
func (u *User) ResetPassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.passwordHash = hash
	return nil
}

// HashPassword bcrypt-hashes a password.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// NormalizeEmail lowercases and trims an address for lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
