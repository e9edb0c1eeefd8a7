package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrNoCredential       = errors.New("a shared password or password hash is required")
)

// SharedPasswordAuthenticator unlocks access with one static password that
// every user shares. There is no per-user identity.
type SharedPasswordAuthenticator struct {
	hash []byte
}

var _ Authenticator = (*SharedPasswordAuthenticator)(nil)

// NewSharedPasswordAuthenticator builds the gate from either a bcrypt hash
// (preferred) or a plaintext password that is hashed on startup.
func NewSharedPasswordAuthenticator(password, passwordHash string) (*SharedPasswordAuthenticator, error) {
	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("invalid password hash: %w", err)
		}
		return &SharedPasswordAuthenticator{hash: []byte(passwordHash)}, nil
	}
	if password == "" {
		return nil, ErrNoCredential
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &SharedPasswordAuthenticator{hash: hash}, nil
}

// Authenticate compares credential with the shared password.
func (a *SharedPasswordAuthenticator) Authenticate(ctx context.Context, credential string) error {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
